package check_availability

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-StayService/internal/usecase/check_availability"
)

// AvailabilityQuery параметры запроса
type AvailabilityQuery struct {
	CheckIn  string `json:"checkIn" validate:"required,date"`  // "2024-01-05"
	CheckOut string `json:"checkOut" validate:"required,date"` // "2024-01-09"
	Guests   int    `json:"guests" validate:"gte=0"`
}

// AvailableRoomResponse свободный номер
type AvailableRoomResponse struct {
	RoomID      int64   `json:"roomId"`
	Number      string  `json:"number"`
	Capacity    int     `json:"capacity"`
	NightlyRate float64 `json:"nightlyRate"`
	Total       float64 `json:"total"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CheckIn  string                  `json:"checkIn"`
	CheckOut string                  `json:"checkOut"`
	Nights   int                     `json:"nights"`
	Guests   int                     `json:"guests"`
	Rooms    []AvailableRoomResponse `json:"rooms"`
}

// ToUseCaseRequest конвертирует провалидированный запрос в модель use case
func (q *AvailabilityQuery) ToUseCaseRequest() (*checkAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, q.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, q.CheckOut)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   q.Guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	rooms := make([]AvailableRoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, AvailableRoomResponse{
			RoomID:      room.RoomID,
			Number:      room.Number,
			Capacity:    room.Capacity,
			NightlyRate: room.NightlyRate,
			Total:       room.Total,
		})
	}

	return &AvailabilityResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Nights:   resp.Nights,
		Guests:   resp.Guests,
		Rooms:    rooms,
	}
}
