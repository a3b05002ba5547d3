package domain

import (
	"errors"
	"time"
)

// ErrInvalidWindow is returned for a non-positive window length.
var ErrInvalidWindow = errors.New("domain: occupancy window length must be positive")

// OccupancyWindow is the trailing aggregation period [End-LengthDays, End].
type OccupancyWindow struct {
	End        time.Time
	LengthDays int
}

// NewOccupancyWindow normalizes end to a calendar day.
func NewOccupancyWindow(end time.Time, lengthDays int) (OccupancyWindow, error) {
	if lengthDays <= 0 {
		return OccupancyWindow{}, ErrInvalidWindow
	}
	return OccupancyWindow{End: TruncateToDay(end), LengthDays: lengthDays}, nil
}

func (w OccupancyWindow) Start() time.Time {
	return w.End.AddDate(0, 0, -w.LengthDays)
}

// Range returns the window as a DateRange, used to query the store.
func (w OccupancyWindow) Range() DateRange {
	return DateRange{Start: w.Start(), End: w.End}
}
