package clientservice

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не зарегистрирован
	ErrClientNotFound = errors.New("clientservice client: client not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// ClientService недоступен, бронирование создаётся без данных гостя
	ErrServiceDegraded = errors.New("clientservice unavailable: graceful degradation applied")
)
