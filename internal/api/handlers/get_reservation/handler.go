package get_reservation

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

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, Staff: middleware.IsStaff(r.Context())}

	// Сервис сам проверит права доступа
	reservation, err := h.service.GetByID(r.Context(), reservationID, actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved successfully: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
