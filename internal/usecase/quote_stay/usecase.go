package quote_stay

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/internal/stay"
)

// UseCase расчёт стоимости проживания без создания бронирования
type UseCase struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{roomRepo: roomRepo, logger: logger}
}

// Execute считает ночи по тарифу номера плюс начисления
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	requested, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("QuoteStay: validation failed: %v", err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("QuoteStay: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("QuoteStay: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsActive {
		uc.logger.Warn("QuoteStay: room id=%d is inactive", req.RoomID)
		return nil, ErrRoomInactive
	}

	nights := stay.Nights(requested)
	chargesTotal := stay.SumCharges(req.Charges)
	total := stay.ComputeTotal(room.NightlyRate, requested, req.Charges)

	uc.logger.Info("QuoteStay: room=%d, stay=%s, nights=%d, total=%.2f", room.ID, requested, nights, total)

	return &Response{
		RoomID:       room.ID,
		CheckIn:      requested.Start,
		CheckOut:     requested.End,
		NightlyRate:  room.NightlyRate,
		Nights:       nights,
		RoomTotal:    float64(nights) * room.NightlyRate,
		ChargesTotal: chargesTotal,
		Total:        total,
	}, nil
}
