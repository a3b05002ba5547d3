package create_room

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/rooms/models"
)

type RoomService interface {
	Create(ctx context.Context, req *models.CreateRoomRequest, actor models.Actor) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
