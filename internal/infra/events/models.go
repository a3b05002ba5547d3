package events

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// StayCheckedOutEvent публикуется после выезда гостя (биллинг, аналитика, уборка)
type StayCheckedOutEvent struct {
	ReservationID int64     `json:"reservationId"`
	RoomID        int64     `json:"roomId"`
	ClientID      int64     `json:"clientId"`
	CheckIn       string    `json:"checkIn"`
	CheckOut      string    `json:"checkOut"`
	Nights        int       `json:"nights"`
	ChargesTotal  float64   `json:"chargesTotal"`
	TotalAmount   float64   `json:"totalAmount"`
	CheckedOutAt  time.Time `json:"checkedOutAt"`
}

// NewStayCheckedOutEvent собирает событие из завершённого бронирования
func NewStayCheckedOutEvent(res *domain.Reservation, nights int, chargesTotal float64, at time.Time) StayCheckedOutEvent {
	return StayCheckedOutEvent{
		ReservationID: res.ID,
		RoomID:        res.RoomID,
		ClientID:      res.ClientID,
		CheckIn:       res.Stay.Start.Format(domain.DateFormat),
		CheckOut:      res.Stay.End.Format(domain.DateFormat),
		Nights:        nights,
		ChargesTotal:  chargesTotal,
		TotalAmount:   res.TotalAmount,
		CheckedOutAt:  at.UTC(),
	}
}
