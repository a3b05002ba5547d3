package add_charge

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

type ReservationService interface {
	AddCharge(ctx context.Context, id int64, req *models.AddChargeRequest, actor models.Actor) (*models.ChargeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
