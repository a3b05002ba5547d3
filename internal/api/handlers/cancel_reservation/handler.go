package cancel_reservation

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
	msgForbidden            = "доступ запрещен"
	msgCannotCancel         = "бронирование не может быть отменено"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, Staff: middleware.IsStaff(r.Context())}

	reservation, err := h.service.Cancel(r.Context(), reservationID, actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Cannot cancel: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%d, user_id=%d", reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
