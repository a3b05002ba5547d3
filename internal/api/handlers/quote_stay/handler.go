package quote_stay

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	quoteStay "github.com/m04kA/SMC-StayService/internal/usecase/quote_stay"
)

const (
	msgInvalidRoomID      = "некорректный ID номера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "номер не найден"
	msgRoomInactive       = "номер выведен из продажи"
)

type Handler struct {
	useCase QuoteStayUseCase
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/{roomId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("POST /rooms/{id}/quote - Invalid room ID: %q", mux.Vars(r)["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req QuoteRequest
	violations, err := handlers.DecodeAndValidate(r, &req)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(violations) > 0 {
		h.logger.Warn("POST /rooms/{id}/quote - Validation failed: %v", violations)
		handlers.RespondValidationError(w, violations)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(roomID)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/quote - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/quote - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quoteStay.ErrRoomInactive):
			h.logger.Warn("POST /rooms/{id}/quote - Room inactive: room_id=%d", roomID)
			handlers.RespondConflict(w, msgRoomInactive)

		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/quote - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /rooms/{id}/quote - Failed to quote stay: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/quote - Quote computed: room_id=%d, nights=%d, total=%.2f",
		roomID, result.Nights, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
