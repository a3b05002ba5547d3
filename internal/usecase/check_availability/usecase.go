package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/stay"
)

// UseCase поиск свободных номеров на период
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute возвращает активные номера, свободные на весь период и вмещающие гостей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: checkIn=%s, checkOut=%s, guests=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация
	requested, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	guests := req.Guests
	if guests == 0 {
		guests = domain.DefaultGuestCount
	}

	resp := &Response{
		CheckIn:  requested.Start,
		CheckOut: requested.End,
		Nights:   stay.Nights(requested),
		Guests:   guests,
		Rooms:    []AvailableRoom{},
	}

	// 2. Активные номера
	rooms, err := uc.roomRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	if len(rooms) == 0 {
		uc.metrics.IncAvailabilityQuery("sold_out")
		return resp, nil
	}

	// 3. Бронирования этих номеров, пересекающиеся с периодом
	roomIDs := make([]int64, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	reservations, err := uc.reservationRepo.GetByRoomsInPeriod(ctx, domain.RoomReservationsFilter{
		RoomIDs: roomIDs,
		Period:  &requested,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Фильтрация и расчёт стоимости
	available := stay.FilterAvailable(rooms, stay.GroupByRoom(reservations), requested)

	for _, room := range available {
		if !room.Fits(guests) {
			continue
		}
		resp.Rooms = append(resp.Rooms, AvailableRoom{
			RoomID:      room.ID,
			Number:      room.Number,
			Capacity:    room.Capacity,
			NightlyRate: room.NightlyRate,
			Total:       stay.ComputeTotal(room.NightlyRate, requested, nil),
		})
	}

	if len(resp.Rooms) == 0 {
		uc.metrics.IncAvailabilityQuery("sold_out")
	} else {
		uc.metrics.IncAvailabilityQuery("available")
	}

	uc.logger.Info("CheckAvailability: %d of %d rooms available for %s", len(resp.Rooms), len(rooms), requested)
	return resp, nil
}
