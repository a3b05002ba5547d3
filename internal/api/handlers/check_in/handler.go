package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/reservations"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "заселение оформляет только персонал"
	msgCannotCheckIn        = "заселение невозможно в текущем статусе бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/check-in - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/check-in - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, Staff: middleware.IsStaff(r.Context())}

	reservation, err := h.service.CheckIn(r.Context(), reservationID, actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/check-in - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/check-in - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrCannotCheckIn):
			h.logger.Warn("PATCH /reservations/{id}/check-in - Cannot check in: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgCannotCheckIn)

		default:
			h.logger.Error("PATCH /reservations/{id}/check-in - Failed to check in: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/check-in - Guest checked in: reservation_id=%d, staff_id=%d", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
