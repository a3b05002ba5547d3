package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultDialTimeout ограничивает подключение к брокеру вместе с AMQP handshake
const DefaultDialTimeout = 3 * time.Second

const heartbeat = 10 * time.Second

// Publisher публикует события в очередь RabbitMQ через default exchange.
// Соединение открывается на каждую публикацию: выезды редкие, а брокер может перезапускаться.
type Publisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	logger      Logger
}

// NewPublisher создает публикатора событий. Пустой url отключает публикацию.
// dialTimeout <= 0 - DefaultDialTimeout
func NewPublisher(url, queue string, dialTimeout time.Duration, logger Logger) *Publisher {
	if dialTimeout <= 0 {
		dialTimeout = DefaultDialTimeout
	}
	return &Publisher{url: url, queue: queue, dialTimeout: dialTimeout, logger: logger}
}

// PublishStayCheckedOut отправляет событие о выезде гостя
func (p *Publisher) PublishStayCheckedOut(ctx context.Context, event StayCheckedOutEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: PublishStayCheckedOut - reservation %d: %v", ErrMarshal, event.ReservationID, err)
	}
	return p.publish(ctx, body)
}

// publish не ждёт дольше дедлайна ctx: QueueDeclare и Channel контекст не принимают,
// поэтому отправка идёт в отдельной горутине
func (p *Publisher) publish(ctx context.Context, body []byte) error {
	if p == nil || p.url == "" {
		return nil
	}

	timeout := p.dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: %v", ErrPublish, context.DeadlineExceeded)
	}

	done := make(chan error, 1)
	go func() { done <- p.send(ctx, body, timeout) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: queue %s: %v", ErrPublish, p.queue, ctx.Err())
	}
}

func (p *Publisher) send(ctx context.Context, body []byte, dialTimeout time.Duration) error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Dial:      amqp.DefaultDial(dialTimeout),
		Heartbeat: heartbeat,
		Locale:    "en_US",
	})
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrPublish, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrPublish, err)
	}
	defer func() { _ = ch.Close() }()

	// durable, чтобы сообщения переживали перезапуск брокера
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: declare queue %s: %v", ErrPublish, p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: queue %s: %v", ErrPublish, p.queue, err)
	}

	if p.logger != nil {
		p.logger.Info("Publisher: event published to %s (%d bytes)", p.queue, len(body))
	}
	return nil
}
