package get_occupancy

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	"github.com/m04kA/SMC-StayService/internal/domain"
	getOccupancy "github.com/m04kA/SMC-StayService/internal/usecase/get_occupancy"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidEnd    = "некорректная дата конца окна, ожидается YYYY-MM-DD"
	msgInvalidDays   = "некорректная длина окна в днях"
	msgRoomNotFound  = "номер не найден"
)

type Handler struct {
	useCase GetOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/occupancy?end=&days=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{id}/occupancy - Invalid room ID: %q", mux.Vars(r)["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req := &getOccupancy.Request{RoomID: roomID}
	query := r.URL.Query()

	if raw := query.Get("end"); raw != "" {
		end, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/occupancy - Invalid end: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEnd)
			return
		}
		req.End = &end
	}

	if raw := query.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /rooms/{id}/occupancy - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = ptr.Ptr(days)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/occupancy - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/occupancy - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("GET /rooms/{id}/occupancy - Failed to get occupancy: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/occupancy - Occupancy computed: room_id=%d, rate=%.0f, cached=%t",
		roomID, result.Rate, result.Cached)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
