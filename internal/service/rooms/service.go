package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/internal/service/rooms/models"
)

// Service управление номерным фондом (только персонал)
type Service struct {
	roomRepo  RoomRepository
	cache     OccupancyCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(
	roomRepo RoomRepository,
	cache OccupancyCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:  roomRepo,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// Create заводит новый номер
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest, actor models.Actor) (*models.RoomResponse, error) {
	s.logger.Info("Create: room number=%s, rate=%.2f, capacity=%d by user=%d", req.Number, req.NightlyRate, req.Capacity, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("Create: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	room := req.ToDomainRoom()
	if err := domain.ValidateRoom(*room).Err(); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNumberTaken) {
			s.logger.Warn("Create: room number=%s already exists", req.Number)
			return nil, ErrRoomNumberTaken
		}
		s.logger.Error("Create: repository error for number=%s: %v", req.Number, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d number=%s", created.ID, created.Number)
	return models.FromDomainRoom(created), nil
}

// UpdateRate меняет цену за ночь для новых бронирований
func (s *Service) UpdateRate(ctx context.Context, id int64, req *models.UpdateRateRequest, actor models.Actor) (*models.RoomResponse, error) {
	s.logger.Info("UpdateRate: room id=%d, rate=%.2f by user=%d", id, req.NightlyRate, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("UpdateRate: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	var result *domain.Room

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := s.load(txCtx, "UpdateRate", id)
		if err != nil {
			return err
		}

		room.NightlyRate = req.NightlyRate
		if err := domain.ValidateRoom(*room).Err(); err != nil {
			s.logger.Warn("UpdateRate: validation failed for room id=%d: %v", id, err)
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		if err := s.roomRepo.UpdateRate(txCtx, id, req.NightlyRate); err != nil {
			return s.mapRepoError("UpdateRate", id, err)
		}

		result = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateRate: successfully updated rate of room id=%d", id)
	return models.FromDomainRoom(result), nil
}

// SetActive выводит номер из продажи или возвращает его.
// Закэшированная загрузка номера сбрасывается после коммита
func (s *Service) SetActive(ctx context.Context, id int64, req *models.SetActiveRequest, actor models.Actor) (*models.RoomResponse, error) {
	s.logger.Info("SetActive: room id=%d, active=%t by user=%d", id, req.IsActive, actor.UserID)

	if !actor.Staff {
		s.logger.Warn("SetActive: user=%d is not staff", actor.UserID)
		return nil, ErrAccessDenied
	}

	var result *domain.Room

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := s.load(txCtx, "SetActive", id)
		if err != nil {
			return err
		}

		if err := s.roomRepo.SetActive(txCtx, id, req.IsActive); err != nil {
			return s.mapRepoError("SetActive", id, err)
		}

		room.IsActive = req.IsActive
		result = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateRoom(ctx, id); err != nil {
		s.logger.Warn("SetActive: failed to invalidate occupancy cache for room=%d: %v", id, err)
	}

	s.logger.Info("SetActive: room id=%d is_active=%t", id, result.IsActive)
	return models.FromDomainRoom(result), nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, op string, id int64) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	return room, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, roomRepo.ErrRoomNotFound) {
		s.logger.Warn("%s: room id=%d not found", op, id)
		return ErrRoomNotFound
	}
	s.logger.Error("%s: repository error for room id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
