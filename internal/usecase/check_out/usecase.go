package check_out

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/infra/events"
	reservationRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StayService/internal/stay"
	"github.com/m04kA/SMC-StayService/pkg/ptr"
)

const lateFeeDescription = "late check-out"

// publishTimeout событие публикуется после коммита, выезд не должен ждать брокер дольше
const publishTimeout = 3 * time.Second

// UseCase выезд гостя с итоговым расчётом
type UseCase struct {
	reservationRepo ReservationRepository
	chargeRepo      ChargeRepository
	publisher       EventPublisher
	cache           OccupancyCache
	metrics         MetricsRecorder
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	chargeRepo ChargeRepository,
	publisher EventPublisher,
	cache OccupancyCache,
	metrics MetricsRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		chargeRepo:      chargeRepo,
		publisher:       publisher,
		cache:           cache,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute пересчитывает итог по тарифу бронирования и всем начислениям и закрывает проживание.
// Событие и сброс кэша выполняются после коммита, их ошибки только логируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckOut: reservation=%d, lateFee=%v", req.ReservationID, ptr.Value(req.LateFee))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckOut: validation failed: %v", err)
		return nil, err
	}

	var (
		res     *domain.Reservation
		charges []*domain.Charge
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Бронирование (FOR UPDATE)
		var err error
		res, err = uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("CheckOut: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("CheckOut: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if !res.CanCheckOut() {
			uc.logger.Warn("CheckOut: reservation id=%d has status=%s", res.ID, res.Status)
			return fmt.Errorf("%w: status is %s", ErrInvalidStatus, res.Status)
		}

		// 2. Поздний выезд
		if fee := ptr.Value(req.LateFee); fee > 0 {
			if _, err := uc.chargeRepo.Create(txCtx, &domain.Charge{
				ReservationID: res.ID,
				Kind:          domain.ChargeLateFee,
				Amount:        fee,
				Description:   ptr.Ptr(lateFeeDescription),
			}); err != nil {
				uc.logger.Error("CheckOut: failed to add late fee to reservation id=%d: %v", res.ID, err)
				return fmt.Errorf("%w: failed to add late fee: %v", ErrInternal, err)
			}
		}

		// 3. Все начисления
		charges, err = uc.chargeRepo.ListByReservation(txCtx, res.ID)
		if err != nil {
			uc.logger.Error("CheckOut: failed to list charges of reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to list charges: %v", ErrInternal, err)
		}

		// 4. Итог
		total := stay.ComputeTotal(res.NightlyRate, res.Stay, domain.ChargeAmounts(charges))

		now := uc.timeProvider.Now()
		if err := uc.reservationRepo.CheckOut(txCtx, res.ID, total, now); err != nil {
			uc.logger.Error("CheckOut: failed to close reservation id=%d: %v", res.ID, err)
			return fmt.Errorf("%w: failed to close reservation: %v", ErrInternal, err)
		}

		res.Status = domain.StatusCheckedOut
		res.TotalAmount = total
		res.CheckedOutAt = &now
		return nil
	})

	if err != nil {
		return nil, err
	}

	nights := stay.Nights(res.Stay)
	chargesTotal := stay.SumCharges(domain.ChargeAmounts(charges))

	// 5. После коммита: событие, кэш, метрики
	event := events.NewStayCheckedOutEvent(res, nights, chargesTotal, *res.CheckedOutAt)
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	err = uc.publisher.PublishStayCheckedOut(pubCtx, event)
	cancel()
	if err != nil {
		uc.logger.Error("CheckOut: failed to publish event for reservation id=%d: %v", res.ID, err)
	}
	if err := uc.cache.InvalidateRoom(ctx, res.RoomID); err != nil {
		uc.logger.Warn("CheckOut: failed to invalidate occupancy cache for room=%d: %v", res.RoomID, err)
	}
	uc.metrics.ObserveCheckOut(res.TotalAmount)

	uc.logger.Info("CheckOut: reservation id=%d closed, nights=%d, charges=%.2f, total=%.2f",
		res.ID, nights, chargesTotal, res.TotalAmount)

	return &Response{
		Reservation:  res,
		Charges:      charges,
		Nights:       nights,
		RoomTotal:    float64(nights) * res.NightlyRate,
		ChargesTotal: chargesTotal,
	}, nil
}
