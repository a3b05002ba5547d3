package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-StayService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model.
// ClientID учитывается только для персонала, клиент бронирует на себя
type CreateReservationRequest struct {
	ClientID   *int64  `json:"clientId,omitempty" validate:"omitempty,gt=0"`
	RoomID     int64   `json:"roomId" validate:"required,gt=0"`
	CheckIn    string  `json:"checkIn" validate:"required,date"`  // "2024-01-05"
	CheckOut   string  `json:"checkOut" validate:"required,date"` // "2024-01-09"
	GuestCount int     `json:"guestCount" validate:"gte=0"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(clientID int64) (*createReservation.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientID:   clientID,
		RoomID:     r.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *models.ReservationResponse {
	return models.FromDomainReservation(resp.Reservation)
}
