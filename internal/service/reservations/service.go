package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями номеров
type Service struct {
	reservationRepo ReservationRepository
	chargeRepo      ChargeRepository
	cache           OccupancyCache
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	chargeRepo ChargeRepository,
	cache OccupancyCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		chargeRepo:      chargeRepo,
		cache:           cache,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только своё бронирование, персонал - любое
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, actor.UserID)

	res, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(res.ClientID) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// GetClientReservations получает историю проживаний клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientReservations(ctx context.Context, req *models.GetClientReservationsRequest, actor models.Actor) (*models.ReservationListResponse, error) {
	s.logger.Info("GetClientReservations: fetching reservations for client=%d, status=%v", req.ClientID, req.Status)

	if !actor.CanAccess(req.ClientID) {
		s.logger.Warn("GetClientReservations: access denied for user=%d to client=%d", actor.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	var status *domain.ReservationStatus
	if req.Status != nil {
		parsed, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientReservations: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	list, err := s.reservationRepo.GetByClientID(ctx, req.ClientID, status)
	if err != nil {
		s.logger.Error("GetClientReservations: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientReservations: successfully fetched %d reservations for client=%d", len(list), req.ClientID)
	return models.FromDomainReservationList(list), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование, персонал - любое до выезда
func (s *Service) Cancel(ctx context.Context, id int64, actor models.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, actor.UserID)

	var result *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.load(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if !actor.CanAccess(res.ClientID) {
			s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", actor.UserID, id)
			return ErrAccessDenied
		}

		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
			return ErrCannotCancel
		}

		if err := s.reservationRepo.Cancel(txCtx, id); err != nil {
			return s.mapRepoError("Cancel", id, err)
		}

		res.Status = domain.StatusCancelled
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, "Cancel", result.RoomID)

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return models.FromDomainReservation(result), nil
}

// CheckIn заселяет гостя. Доступно только персоналу
func (s *Service) CheckIn(ctx context.Context, id int64, actor models.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("CheckIn: reservation id=%d by user=%d", id, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("CheckIn: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	var result *domain.Reservation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.load(txCtx, "CheckIn", id)
		if err != nil {
			return err
		}

		if !res.CanCheckIn() {
			s.logger.Warn("CheckIn: reservation id=%d cannot be checked in, status=%s", id, res.Status)
			return ErrCannotCheckIn
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, domain.StatusCheckedIn); err != nil {
			return s.mapRepoError("CheckIn", id, err)
		}

		res.Status = domain.StatusCheckedIn
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckIn: successfully checked in reservation id=%d", id)
	return models.FromDomainReservation(result), nil
}

// AddCharge добавляет начисление (минибар, room service) к бронированию. Доступно только персоналу
func (s *Service) AddCharge(ctx context.Context, id int64, req *models.AddChargeRequest, actor models.Actor) (*models.ChargeResponse, error) {
	s.logger.Info("AddCharge: reservation id=%d, kind=%s, amount=%.2f by user=%d", id, req.Kind, req.Amount, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("AddCharge: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	kind, err := models.ToDomainChargeKind(req.Kind)
	if err != nil {
		s.logger.Warn("AddCharge: invalid kind=%s", req.Kind)
		return nil, fmt.Errorf("%w: invalid charge kind", ErrInvalidInput)
	}
	if violations := domain.ValidateCharges([]float64{req.Amount}); len(violations) > 0 {
		s.logger.Warn("AddCharge: invalid amount=%v", req.Amount)
		return nil, fmt.Errorf("%w: amount %s", ErrInvalidInput, violations[0].Message)
	}

	var created *domain.Charge

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.load(txCtx, "AddCharge", id)
		if err != nil {
			return err
		}

		if !res.AcceptsCharges() {
			s.logger.Warn("AddCharge: reservation id=%d does not accept charges, status=%s", id, res.Status)
			return ErrChargesNotAccepted
		}

		created, err = s.chargeRepo.Create(txCtx, &domain.Charge{
			ReservationID: id,
			Kind:          kind,
			Amount:        req.Amount,
			Description:   req.Description,
		})
		if err != nil {
			s.logger.Error("AddCharge: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: AddCharge - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddCharge: successfully added charge id=%d to reservation id=%d", created.ID, id)
	return models.FromDomainCharge(created), nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	return res, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation id=%d not found", op, id)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) invalidate(ctx context.Context, op string, roomID int64) {
	if err := s.cache.InvalidateRoom(ctx, roomID); err != nil {
		s.logger.Warn("%s: failed to invalidate occupancy cache for room=%d: %v", op, roomID, err)
	}
}
