package get_occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	occupancyCache "github.com/m04kA/SMC-StayService/internal/infra/cache/occupancy"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByRoomsInPeriod(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// OccupancyCache кэш рассчитанной загрузки
type OccupancyCache interface {
	Get(ctx context.Context, roomID int64, window domain.OccupancyWindow) (*occupancyCache.Entry, bool, error)
	Set(ctx context.Context, roomID int64, window domain.OccupancyWindow, entry occupancyCache.Entry) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder публикует последнюю рассчитанную загрузку номера
type MetricsRecorder interface {
	ObserveOccupancy(roomID int64, rate float64)
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
