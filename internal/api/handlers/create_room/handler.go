package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/rooms"
	"github.com/m04kA/SMC-StayService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "номера заводит только персонал"
	msgNumberTaken        = "номер комнаты уже существует"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /rooms - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if !middleware.IsStaff(r.Context()) {
		h.logger.Warn("POST /rooms - Access denied: user_id=%d", userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}
	actor := models.Actor{UserID: userID, Staff: true}

	var req CreateRoomRequest
	violations, err := handlers.DecodeAndValidate(r, &req)
	if err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(violations) > 0 {
		h.logger.Warn("POST /rooms - Validation failed: %v", violations)
		handlers.RespondValidationError(w, violations)
		return
	}

	room, err := h.service.Create(r.Context(), req.ToServiceRequest(), actor)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /rooms - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrRoomNumberTaken):
			h.logger.Warn("POST /rooms - Room number taken: number=%s", req.Number)
			handlers.RespondConflict(w, msgNumberTaken)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid room: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /rooms - Failed to create room: number=%s, error=%v", req.Number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created: room_id=%d, number=%s, staff_id=%d", room.ID, room.Number, userID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
