package get_occupancy

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("get_occupancy: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_occupancy: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupancy: internal error")
)
