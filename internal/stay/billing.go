package stay

import (
	"math"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// DaysBetween returns the fractional number of days in the stay.
func DaysBetween(stay domain.DateRange) float64 {
	return stay.End.Sub(stay.Start).Hours() / 24
}

// Nights is ceil(DaysBetween), never less than one.
func Nights(stay domain.DateRange) int {
	nights := int(math.Ceil(DaysBetween(stay)))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// SumCharges adds up ad-hoc charges in order.
func SumCharges(charges []float64) float64 {
	var sum float64
	for _, c := range charges {
		sum += c
	}
	return sum
}

// ComputeTotal returns nights*nightlyRate plus every charge.
// The result is not rounded; rounding to currency units is left to presentation.
// Negative inputs are not rejected here.
func ComputeTotal(nightlyRate float64, stay domain.DateRange, charges []float64) float64 {
	return float64(Nights(stay))*nightlyRate + SumCharges(charges)
}
