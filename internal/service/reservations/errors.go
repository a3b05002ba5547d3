package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("reservations: access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservations: reservation cannot be cancelled")

	// ErrCannotCheckIn возвращается, когда заселение невозможно в текущем статусе
	ErrCannotCheckIn = errors.New("reservations: reservation cannot be checked in")

	// ErrChargesNotAccepted возвращается, когда к бронированию нельзя добавить начисление
	ErrChargesNotAccepted = errors.New("reservations: reservation does not accept charges")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
