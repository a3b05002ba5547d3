package set_room_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/rooms"
	"github.com/m04kA/SMC-StayService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "номер не найден"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "выводит номер из продажи только персонал"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rooms/{roomId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/active - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /rooms/{id}/active - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if !middleware.IsStaff(r.Context()) {
		h.logger.Warn("PATCH /rooms/{id}/active - Access denied: user_id=%d", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}
	actor := models.Actor{UserID: userID, Staff: true}

	var req SetActiveRequest
	violations, err := handlers.DecodeAndValidate(r, &req)
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(violations) > 0 {
		h.logger.Warn("PATCH /rooms/{id}/active - Validation failed: %v", violations)
		handlers.RespondValidationError(w, violations)
		return
	}

	room, err := h.service.SetActive(r.Context(), roomID, req.ToServiceRequest(), actor)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/active - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("PATCH /rooms/{id}/active - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /rooms/{id}/active - Failed to change activity: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/active - Room updated: room_id=%d, is_active=%t, staff_id=%d", roomID, room.IsActive, userID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
