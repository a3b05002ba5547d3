package get_client_reservations

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
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/clients/{clientId}/reservations?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/reservations - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, Staff: middleware.IsStaff(r.Context())}

	req := &models.GetClientReservationsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	list, err := h.service.GetClientReservations(r.Context(), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /clients/{id}/reservations - Access denied: client_id=%d, user_id=%d", clientID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/reservations - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{id}/reservations - Failed to get reservations: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/reservations - Retrieved %d reservations: client_id=%d", len(list.Reservations), clientID)
	handlers.RespondJSON(w, http.StatusOK, list)
}
