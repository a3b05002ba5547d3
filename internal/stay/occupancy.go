package stay

import (
	"math"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

const day = 24 * time.Hour

// OccupiedDays sums, in whole days, the part of every counted reservation that
// falls inside the window. Overlapping reservations are not merged, so a
// double-booked room contributes each night more than once.
func OccupiedDays(reservations []*domain.Reservation, window domain.OccupancyWindow) int {
	windowStart, windowEnd := window.Start(), window.End

	occupied := 0
	for _, r := range reservations {
		if r == nil || !domain.CountsTowardOccupancy(r.Status) {
			continue
		}

		clippedStart := r.Stay.Start
		if windowStart.After(clippedStart) {
			clippedStart = windowStart
		}
		clippedEnd := r.Stay.End
		if windowEnd.Before(clippedEnd) {
			clippedEnd = windowEnd
		}

		if clippedStart.Before(clippedEnd) {
			occupied += int(clippedEnd.Sub(clippedStart) / day)
		}
	}

	return occupied
}

// OccupancyRate returns round(100 * occupiedDays / window.LengthDays).
// The result can exceed 100 when reservations overlap; use ClampRate for display.
func OccupancyRate(reservations []*domain.Reservation, window domain.OccupancyWindow) float64 {
	if window.LengthDays <= 0 {
		return 0
	}
	occupied := OccupiedDays(reservations, window)
	return math.Round(100 * float64(occupied) / float64(window.LengthDays))
}

// ClampRate bounds a rate to [0, 100].
func ClampRate(rate float64) float64 {
	return math.Max(0, math.Min(100, rate))
}
