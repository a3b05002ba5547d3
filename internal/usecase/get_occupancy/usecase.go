package get_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	occupancyCache "github.com/m04kA/SMC-StayService/internal/infra/cache/occupancy"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/internal/stay"
)

// UseCase расчёт процента загрузки номера
type UseCase struct {
	roomRepo          RoomRepository
	reservationRepo   ReservationRepository
	cache             OccupancyCache
	metrics           MetricsRecorder
	txManager         TransactionManager
	timeProvider      TimeProvider
	logger            Logger
	defaultWindowDays int
}

// NewUseCase создает новый экземпляр use case.
// defaultWindowDays <= 0 заменяется на domain.DefaultOccupancyWindowDays
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	cache OccupancyCache,
	metrics MetricsRecorder,
	txManager TransactionManager,
	defaultWindowDays int,
	logger Logger,
) *UseCase {
	if defaultWindowDays <= 0 {
		defaultWindowDays = domain.DefaultOccupancyWindowDays
	}
	return &UseCase{
		roomRepo:          roomRepo,
		reservationRepo:   reservationRepo,
		cache:             cache,
		metrics:           metrics,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
		defaultWindowDays: defaultWindowDays,
	}
}

// Execute считает загрузку номера. Ошибки кэша не прерывают расчёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно расчёта: "сегодня" приходит только отсюда
	end := uc.timeProvider.Now()
	if req.End != nil {
		end = *req.End
	}
	days := uc.defaultWindowDays
	if req.Days != nil {
		days = *req.Days
	}

	window, err := domain.NewOccupancyWindow(end, days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetOccupancy: room=%d, window=%s (%d days)", req.RoomID, window.Range(), window.LengthDays)

	// 3. Кэш. Записи появляются только для существующих номеров, а номера не удаляются
	entry, hit, err := uc.cache.Get(ctx, req.RoomID, window)
	if err != nil {
		uc.logger.Warn("GetOccupancy: cache read failed for room=%d, computing directly: %v", req.RoomID, err)
	}
	if hit {
		uc.logger.Info("GetOccupancy: cache hit for room=%d", req.RoomID)
		return buildResponse(req.RoomID, window, entry.OccupiedDays, entry.Rate, true), nil
	}

	// 4. Номер и его бронирования читаем из одного снимка
	var reservations []*domain.Reservation
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// Выведенные из продажи номера тоже считаем
		if _, err := uc.roomRepo.GetByID(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("GetOccupancy: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("GetOccupancy: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// Выехавшие гости тоже занимали номер, поэтому берём неактивные
		period := window.Range()
		var err error
		reservations, err = uc.reservationRepo.GetByRoomsInPeriod(txCtx, domain.RoomReservationsFilter{
			RoomIDs:         []int64{req.RoomID},
			Period:          &period,
			IncludeInactive: true,
		})
		if err != nil {
			uc.logger.Error("GetOccupancy: failed to get reservations for room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("GetOccupancy: read transaction failed for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Расчёт
	occupied := stay.OccupiedDays(reservations, window)
	rate := stay.OccupancyRate(reservations, window)

	if err := uc.cache.Set(ctx, req.RoomID, window, occupancyCache.Entry{Rate: rate, OccupiedDays: occupied}); err != nil {
		uc.logger.Warn("GetOccupancy: cache write failed for room=%d: %v", req.RoomID, err)
	}

	uc.metrics.ObserveOccupancy(req.RoomID, rate)

	uc.logger.Info("GetOccupancy: room=%d occupied %d/%d days, rate=%.0f", req.RoomID, occupied, window.LengthDays, rate)
	return buildResponse(req.RoomID, window, occupied, rate, false), nil
}

func buildResponse(roomID int64, window domain.OccupancyWindow, occupied int, rate float64, cached bool) *Response {
	return &Response{
		RoomID:       roomID,
		WindowStart:  window.Start(),
		WindowEnd:    window.End,
		LengthDays:   window.LengthDays,
		OccupiedDays: occupied,
		Rate:         rate,
		DisplayRate:  stay.ClampRate(rate),
		Cached:       cached,
	}
}
