package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	clientClient "github.com/m04kA/SMC-StayService/internal/integrations/clientservice"
	"github.com/m04kA/SMC-StayService/internal/stay"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

// UseCase use case для бронирования номера
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	clientClient    ClientServiceClient
	cache           OccupancyCache
	metrics         MetricsRecorder
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	clientClient ClientServiceClient,
	cache OccupancyCache,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		clientClient:    clientClient,
		cache:           cache,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка идут в одной сериализуемой транзакции с блокировкой
// бронирований номера; пересечение, пропущенное конкурентной транзакцией, отсекает ограничение БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: client=%d, room=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.ClientID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.GuestCount)

	// 1. Валидация входных данных
	requested, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if err := validateCheckInDate(requested, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	guestCount := req.GuestCount
	if guestCount == 0 {
		guestCount = domain.DefaultGuestCount
	}

	// 2. Клиент. При недоступности ClientService бронируем без имени гостя
	var guestName *string
	client, err := uc.clientClient.GetClientWithGracefulDegradation(ctx, req.ClientID)
	switch {
	case err == nil:
		if client.IsBlocked {
			uc.logger.Warn("CreateReservation: client id=%d is blocked", req.ClientID)
			return nil, ErrClientBlocked
		}
		if name := client.FullName(); name != "" {
			guestName = ptr.Ptr(name)
		}
	case errors.Is(err, clientClient.ErrClientNotFound):
		uc.logger.Warn("CreateReservation: client id=%d not found", req.ClientID)
		return nil, ErrClientNotFound
	case errors.Is(err, clientClient.ErrServiceDegraded):
		uc.logger.Warn("CreateReservation: client service degraded, booking without guest name: %v", err)
	default:
		uc.logger.Error("CreateReservation: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if violations := domain.ValidateGuestCount(*room, guestCount); len(violations) > 0 {
		uc.logger.Warn("CreateReservation: %v", violations)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, violations)
	}

	var result *domain.Reservation

	// 4. Проверка доступности и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Активные бронирования номера на период с блокировкой (FOR UPDATE)
		existing, err := uc.reservationRepo.GetByRoomsInPeriod(txCtx, domain.RoomReservationsFilter{
			RoomIDs: []int64{room.ID},
			Period:  &requested,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 4.2. Номер активен и свободен
		if !stay.IsAvailable(room, existing, requested) {
			uc.logger.Warn("CreateReservation: room id=%d not available for %s (active=%t, %d overlapping candidates)",
				room.ID, requested, room.IsActive, len(existing))
			return ErrRoomNotAvailable
		}

		// 4.3. Сохраняем со стоимостью проживания без доп. начислений
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			RoomID:      room.ID,
			ClientID:    req.ClientID,
			Stay:        requested,
			Status:      domain.StatusConfirmed,
			GuestCount:  guestCount,
			NightlyRate: room.NightlyRate,
			TotalAmount: stay.ComputeTotal(room.NightlyRate, requested, nil),
			GuestName:   guestName,
			Notes:       req.Notes,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrRoomAlreadyBooked) {
				uc.logger.Warn("CreateReservation: overlap rejected by store for room id=%d", room.ID)
				return ErrRoomNotAvailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Загрузка номера изменилась
	if err := uc.cache.InvalidateRoom(ctx, room.ID); err != nil {
		uc.logger.Warn("CreateReservation: failed to invalidate occupancy cache for room=%d: %v", room.ID, err)
	}
	uc.metrics.IncReservationCreated(string(result.Status))

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, total=%.2f", result.ID, result.TotalAmount)

	return &Response{
		Reservation: result,
		Nights:      stay.Nights(result.Stay),
	}, nil
}
