package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-StayService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "бронировать на другого клиента может только персонал"
	msgRoomNotFound       = "номер не найден"
	msgRoomNotAvailable   = "номер недоступен на выбранные даты"
	msgClientNotFound     = "клиент не найден"
	msgClientBlocked      = "клиенту запрещено бронирование"
	msgCheckInInPast      = "дата заезда уже прошла"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	violations, err := handlers.DecodeAndValidate(r, &req)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(violations) > 0 {
		h.logger.Warn("POST /reservations - Validation failed: %v", violations)
		handlers.RespondValidationError(w, violations)
		return
	}

	// Клиент бронирует на себя, персонал может указать клиента
	clientID := userID
	if req.ClientID != nil && *req.ClientID != userID {
		if !middleware.IsStaff(r.Context()) {
			h.logger.Warn("POST /reservations - Booking for another client: user_id=%d, client_id=%d", userID, *req.ClientID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		clientID = *req.ClientID
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /reservations - Room not available: room_id=%d, check_in=%s, check_out=%s",
				req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrClientNotFound):
			h.logger.Warn("POST /reservations - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createReservation.ErrClientBlocked):
			h.logger.Warn("POST /reservations - Client blocked: client_id=%d", clientID)
			handlers.RespondForbidden(w, msgClientBlocked)

		case errors.Is(err, createReservation.ErrCheckInInPast):
			h.logger.Warn("POST /reservations - Check-in in past: check_in=%s", req.CheckIn)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: client_id=%d, room_id=%d, error=%v",
				clientID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, client_id=%d, room_id=%d, nights=%d",
		result.Reservation.ID, clientID, req.RoomID, result.Nights)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
