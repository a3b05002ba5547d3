package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange is returned when check-out is not strictly after check-in.
var ErrInvalidDateRange = errors.New("domain: check-out must be after check-in")

const day = 24 * time.Hour

// DateRange is a half-open stay window [Start, End) of calendar days.
// Both bounds are midnight UTC; construct it with NewDateRange.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TruncateToDay strips the time of day, keeping the calendar date as seen in t's location.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDateRange normalizes both bounds to calendar days and requires end > start.
// A check-out at 11:00 and a check-in at 14:00 on the same date become the same day.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: TruncateToDay(start), End: TruncateToDay(end)}
	if !r.End.After(r.Start) {
		return DateRange{}, fmt.Errorf("%w: %s..%s", ErrInvalidDateRange,
			r.Start.Format(DateFormat), r.End.Format(DateFormat))
	}
	return r, nil
}

// ParseDateRange parses YYYY-MM-DD bounds.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateFormat, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("domain: parse check-in %q: %w", start, err)
	}
	e, err := time.Parse(DateFormat, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("domain: parse check-out %q: %w", end, err)
	}
	return NewDateRange(s, e)
}

// MustDateRange is ParseDateRange for fixtures; it panics on bad input.
func MustDateRange(start, end string) DateRange {
	r, err := ParseDateRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// Days returns the number of whole days between Start and End.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start) / day)
}

func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + ".." + r.End.Format(DateFormat)
}
