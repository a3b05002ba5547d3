package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange_StripsTimeOfDay(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)

	r, err := NewDateRange(checkIn, checkOut)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), r.End)
	assert.Equal(t, 4, r.Days())
	assert.Equal(t, "2024-03-01..2024-03-05", r.String())
}

func TestNewDateRange_KeepsLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	late := time.Date(2024, 3, 1, 23, 30, 0, 0, loc) // 2024-03-02 02:30 UTC

	r, err := NewDateRange(late, late.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), r.Start)
}

func TestNewDateRange_RejectsEmptyAndInverted(t *testing.T) {
	sameDayIn := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	sameDayOut := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	_, err := NewDateRange(sameDayIn, sameDayOut)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange(sameDayOut.AddDate(0, 0, 2), sameDayIn)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-02-28", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Days()) // leap year

	_, err = ParseDateRange("2024-13-01", "2024-03-01")
	assert.Error(t, err)

	assert.Panics(t, func() { MustDateRange("2024-03-05", "2024-03-01") })
}

func TestOccupancyWindow(t *testing.T) {
	w, err := NewOccupancyWindow(time.Date(2024, 3, 10, 16, 45, 0, 0, time.UTC), 30)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC), w.Start())
	assert.Equal(t, 30, w.Range().Days())

	_, err = NewOccupancyWindow(time.Now(), 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
