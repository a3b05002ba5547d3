package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrRoomAlreadyBooked возвращается, когда ограничение БД отклонило пересекающееся бронирование
	ErrRoomAlreadyBooked = errors.New("reservation.repository: room already booked for the period")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("reservation.repository: invalid reservation status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
