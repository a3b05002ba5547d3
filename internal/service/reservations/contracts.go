package reservations

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64) error
}

// ChargeRepository интерфейс репозитория начислений
type ChargeRepository interface {
	Create(ctx context.Context, charge *domain.Charge) (*domain.Charge, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.Charge, error)
}

// OccupancyCache сброс закэшированной загрузки номера
type OccupancyCache interface {
	InvalidateRoom(ctx context.Context, roomID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
