package domain

import "time"

// ChargeKind classifies an ad-hoc charge posted to a reservation
type ChargeKind string

const (
	ChargeConsumption ChargeKind = "consumption" // minibar
	ChargeRoomService ChargeKind = "room_service"
	ChargeLateFee     ChargeKind = "late_fee"
	ChargeOther       ChargeKind = "other"
)

// Charge is an additive extra billed on top of room-nights
type Charge struct {
	ID            int64
	ReservationID int64
	Kind          ChargeKind
	Amount        float64
	Description   *string
	CreatedAt     time.Time
}

// ChargeAmounts extracts amounts for the biller
func ChargeAmounts(charges []*Charge) []float64 {
	amounts := make([]float64, 0, len(charges))
	for _, c := range charges {
		amounts = append(amounts, c.Amount)
	}
	return amounts
}

// ParseChargeKind validates a charge kind coming from the outside
func ParseChargeKind(s string) (ChargeKind, bool) {
	switch k := ChargeKind(s); k {
	case ChargeConsumption, ChargeRoomService, ChargeLateFee, ChargeOther:
		return k, true
	default:
		return "", false
	}
}
