package check_out

import "github.com/m04kA/SMC-StayService/internal/domain"

// Request выезд гостя
type Request struct {
	ReservationID int64
	LateFee       *float64 // плата за поздний выезд, добавляется начислением late_fee
}

// Response итоговый счёт
type Response struct {
	Reservation  *domain.Reservation
	Charges      []*domain.Charge
	Nights       int
	RoomTotal    float64
	ChargesTotal float64
}
