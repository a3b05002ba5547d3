package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrRoomNumberTaken возвращается, когда номер комнаты уже заведён
	ErrRoomNumberTaken = errors.New("rooms: room number already exists")

	// ErrAccessDenied возвращается, когда действие выполняет не персонал
	ErrAccessDenied = errors.New("rooms: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms: internal error")
)
