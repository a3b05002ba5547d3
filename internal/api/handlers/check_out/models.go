package check_out

import (
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
	checkOut "github.com/m04kA/SMC-StayService/internal/usecase/check_out"
)

// CheckOutRequest HTTP request model; тело необязательно
type CheckOutRequest struct {
	LateFee *float64 `json:"lateFee,omitempty" validate:"omitempty,gte=0"`
}

// InvoiceResponse итоговый счёт при выезде
type InvoiceResponse struct {
	Reservation  *models.ReservationResponse `json:"reservation"`
	Charges      []models.ChargeResponse     `json:"charges"`
	Nights       int                         `json:"nights"`
	RoomTotal    float64                     `json:"roomTotal"`
	ChargesTotal float64                     `json:"chargesTotal"`
	TotalAmount  float64                     `json:"totalAmount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkOut.Response) *InvoiceResponse {
	charges := make([]models.ChargeResponse, 0, len(resp.Charges))
	for _, c := range resp.Charges {
		if item := models.FromDomainCharge(c); item != nil {
			charges = append(charges, *item)
		}
	}

	return &InvoiceResponse{
		Reservation:  models.FromDomainReservation(resp.Reservation),
		Charges:      charges,
		Nights:       resp.Nights,
		RoomTotal:    resp.RoomTotal,
		ChargesTotal: resp.ChargesTotal,
		TotalAmount:  resp.Reservation.TotalAmount,
	}
}
