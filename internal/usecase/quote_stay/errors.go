package quote_stay

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("quote_stay: room not found")

	// ErrRoomInactive возвращается, когда номер выведен из продажи
	ErrRoomInactive = errors.New("quote_stay: room is not for sale")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_stay: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_stay: internal error")
)
