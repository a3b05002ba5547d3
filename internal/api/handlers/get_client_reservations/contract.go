package get_client_reservations

import (
	"context"

	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

type ReservationService interface {
	GetClientReservations(ctx context.Context, req *models.GetClientReservationsRequest, actor models.Actor) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
