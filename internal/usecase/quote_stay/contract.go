package quote_stay

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
