package check_out

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("check_out: reservation not found")

	// ErrInvalidStatus возвращается, когда гость не заселён
	ErrInvalidStatus = errors.New("check_out: guest is not checked in")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_out: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_out: internal error")
)
