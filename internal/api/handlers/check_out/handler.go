package check_out

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	checkOut "github.com/m04kA/SMC-StayService/internal/usecase/check_out"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "выезд оформляет только персонал"
	msgNotFound             = "бронирование не найдено"
	msgNotCheckedIn         = "гость не заселён"
)

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{id}/check-out - Invalid reservation ID: %q", mux.Vars(r)["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/check-out - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if !middleware.IsStaff(r.Context()) {
		h.logger.Warn("PATCH /reservations/{id}/check-out - Access denied: user_id=%d", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Пустое тело - выезд без платы за поздний выезд
	var req CheckOutRequest
	violations, err := handlers.DecodeAndValidate(r, &req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /reservations/{id}/check-out - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(violations) > 0 {
		h.logger.Warn("PATCH /reservations/{id}/check-out - Validation failed: %v", violations)
		handlers.RespondValidationError(w, violations)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkOut.Request{
		ReservationID: reservationID,
		LateFee:       req.LateFee,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkOut.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/check-out - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkOut.ErrInvalidStatus):
			h.logger.Warn("PATCH /reservations/{id}/check-out - Not checked in: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotCheckedIn)

		case errors.Is(err, checkOut.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/check-out - Invalid input: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("PATCH /reservations/{id}/check-out - Failed to check out: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/check-out - Checked out: reservation_id=%d, total=%.2f, staff_id=%d",
		reservationID, result.Reservation.TotalAmount, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
