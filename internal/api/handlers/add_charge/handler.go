package add_charge

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронирование не найдено"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "начисления добавляет только персонал"
	msgChargesNotAccepted   = "к бронированию нельзя добавить начисление"
	msgInvalidCharge        = "некорректное начисление"
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

// Handle POST /api/v1/reservations/{reservationId}/charges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/charges - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/charges - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, Staff: middleware.IsStaff(r.Context())}

	var req AddChargeRequest
	violations, err := handlers.DecodeAndValidate(r, &req)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/charges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(violations) > 0 {
		h.logger.Warn("POST /reservations/{id}/charges - Validation failed: %v", violations)
		handlers.RespondValidationError(w, violations)
		return
	}

	charge, err := h.service.AddCharge(r.Context(), reservationID, req.ToServiceRequest(), actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/charges - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservations/{id}/charges - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrChargesNotAccepted):
			h.logger.Warn("POST /reservations/{id}/charges - Charges not accepted: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgChargesNotAccepted)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/charges - Invalid charge: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCharge)

		default:
			h.logger.Error("POST /reservations/{id}/charges - Failed to add charge: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/charges - Charge added: reservation_id=%d, charge_id=%d, amount=%.2f",
		reservationID, charge.ID, charge.Amount)
	handlers.RespondJSON(w, http.StatusCreated, charge)
}
