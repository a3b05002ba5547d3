package events

import "errors"

var (
	// ErrPublish не удалось доставить событие в RabbitMQ
	ErrPublish = errors.New("events.publisher: publish failed")

	// ErrMarshal не удалось сериализовать событие
	ErrMarshal = errors.New("events.publisher: marshal failed")
)
