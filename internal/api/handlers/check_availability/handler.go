package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-StayService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-StayService/pkg/validation"
)

const (
	msgInvalidGuests = "некорректное количество гостей"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?checkIn=&checkOut=&guests=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := AvailabilityQuery{
		CheckIn:  values.Get("checkIn"),
		CheckOut: values.Get("checkOut"),
	}

	if raw := values.Get("guests"); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid guests: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuests)
			return
		}
		query.Guests = guests
	}

	if violations := validation.Struct(query); len(violations) > 0 {
		h.logger.Warn("GET /availability - Validation failed: %v", violations)
		handlers.RespondValidationError(w, violations)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /availability - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("GET /availability - Failed to check availability: check_in=%s, check_out=%s, error=%v",
				query.CheckIn, query.CheckOut, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Found %d free rooms: check_in=%s, check_out=%s",
		len(result.Rooms), query.CheckIn, query.CheckOut)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
