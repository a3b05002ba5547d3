package check_in

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

type ReservationService interface {
	CheckIn(ctx context.Context, id int64, actor models.Actor) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
