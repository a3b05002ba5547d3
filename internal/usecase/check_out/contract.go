package check_out

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/infra/events"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	CheckOut(ctx context.Context, id int64, totalAmount float64, checkedOutAt time.Time) error
}

// ChargeRepository интерфейс репозитория начислений
type ChargeRepository interface {
	Create(ctx context.Context, charge *domain.Charge) (*domain.Charge, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Charge, error)
}

// EventPublisher публикация событий о выезде
type EventPublisher interface {
	PublishStayCheckedOut(ctx context.Context, event events.StayCheckedOutEvent) error
}

// OccupancyCache сброс закэшированной загрузки номера
type OccupancyCache interface {
	InvalidateRoom(ctx context.Context, roomID int64) error
}

// MetricsRecorder выручка по выездам
type MetricsRecorder interface {
	ObserveCheckOut(totalAmount float64)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
