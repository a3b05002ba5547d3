package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/integrations/clientservice"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByRoomsInPeriod(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*clientservice.ClientProfile, error)
}

// OccupancyCache сброс закэшированной загрузки номера
type OccupancyCache interface {
	InvalidateRoom(ctx context.Context, roomID int64) error
}

// MetricsRecorder счётчик созданных бронирований
type MetricsRecorder interface {
	IncReservationCreated(status string)
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
