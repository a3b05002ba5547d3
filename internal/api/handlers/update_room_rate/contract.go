package update_room_rate

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/rooms/models"
)

type RoomService interface {
	UpdateRate(ctx context.Context, id int64, req *models.UpdateRateRequest, actor models.Actor) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
