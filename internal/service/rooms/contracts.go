package rooms

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	UpdateRate(ctx context.Context, id int64, rate float64) error
	SetActive(ctx context.Context, id int64, active bool) error
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
