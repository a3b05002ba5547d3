package create_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrRoomNotAvailable возвращается, когда номер занят на период или выведен из продажи
	ErrRoomNotAvailable = errors.New("create_reservation: room is not available for the requested stay")

	// ErrClientNotFound возвращается, когда клиент не зарегистрирован
	ErrClientNotFound = errors.New("create_reservation: client not found")

	// ErrClientBlocked возвращается, когда клиенту запрещено бронировать
	ErrClientBlocked = errors.New("create_reservation: client is blocked")

	// ErrCheckInInPast возвращается при заезде раньше сегодняшнего дня
	ErrCheckInInPast = errors.New("create_reservation: check-in date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
