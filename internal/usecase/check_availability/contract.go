package check_availability

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Room, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByRoomsInPeriod(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// MetricsRecorder счётчик запросов доступности
type MetricsRecorder interface {
	IncAvailabilityQuery(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
