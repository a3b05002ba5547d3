package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-StayService/pkg/validation"
)

// The calculator in internal/stay is defined only over well-formed input.
// These checks are the boundary in front of it: they report every violation
// instead of letting malformed data reach the arithmetic.

// ValidateStay checks raw check-in/check-out values before building a DateRange.
func ValidateStay(checkIn, checkOut time.Time) validation.Violations {
	var v validation.Violations

	if checkIn.IsZero() {
		v = append(v, validation.Violation{Field: "checkIn", Message: "is required"})
	}
	if checkOut.IsZero() {
		v = append(v, validation.Violation{Field: "checkOut", Message: "is required"})
	}
	if len(v) > 0 {
		return v
	}

	in, out := TruncateToDay(checkIn), TruncateToDay(checkOut)
	if !out.After(in) {
		v = append(v, validation.Violation{Field: "checkOut", Message: "must be after checkIn"})
	} else if nights := int(out.Sub(in) / day); nights > MaxStayNights {
		v = append(v, validation.Violation{
			Field:   "checkOut",
			Message: fmt.Sprintf("stay must not exceed %d nights", MaxStayNights),
		})
	}

	return v
}

// ValidateRoom checks the room fields the biller and availability filter rely on.
func ValidateRoom(room Room) validation.Violations {
	var v validation.Violations

	if room.Number == "" {
		v = append(v, validation.Violation{Field: "number", Message: "is required"})
	}
	if room.NightlyRate < 0 || math.IsNaN(room.NightlyRate) || math.IsInf(room.NightlyRate, 0) {
		v = append(v, validation.Violation{Field: "nightlyRate", Message: "must be a non-negative amount"})
	}
	if room.Capacity <= 0 {
		v = append(v, validation.Violation{Field: "capacity", Message: "must be positive"})
	}

	return v
}

// ValidateCharges requires every charge to be a finite non-negative amount.
func ValidateCharges(charges []float64) validation.Violations {
	var v validation.Violations

	for i, c := range charges {
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			v = append(v, validation.Violation{
				Field:   fmt.Sprintf("charges[%d]", i),
				Message: "must be a non-negative amount",
			})
		}
	}

	return v
}

// ValidateGuestCount checks the party size against the room capacity.
func ValidateGuestCount(room Room, guests int) validation.Violations {
	switch {
	case guests <= 0:
		return validation.Violations{{Field: "guestCount", Message: "must be positive"}}
	case guests > MaxGuestCount:
		return validation.Violations{{Field: "guestCount", Message: fmt.Sprintf("must be at most %d", MaxGuestCount)}}
	case !room.Fits(guests):
		return validation.Violations{{
			Field:   "guestCount",
			Message: fmt.Sprintf("room %s holds at most %d guests", room.Number, room.Capacity),
		}}
	}
	return nil
}
