package stay

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

func window(t *testing.T, end string, length int) domain.OccupancyWindow {
	t.Helper()
	w, err := domain.NewOccupancyWindow(date(end), length)
	require.NoError(t, err)
	return w
}

func TestOccupancyRate_NoReservations(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(nil, window(t, "2024-03-10", 30)))
}

func TestOccupancyRate_FullWindow(t *testing.T) {
	w := window(t, "2024-03-10", 30)
	full := reservation(1, 1, w.Range(), domain.StatusConfirmed)

	assert.Equal(t, 30, OccupiedDays([]*domain.Reservation{full}, w))
	assert.Equal(t, 100.0, OccupancyRate([]*domain.Reservation{full}, w))
}

func TestOccupancyRate_PartialClip(t *testing.T) {
	w := window(t, "2024-03-10", 30)
	start := w.Start()
	r := reservation(1, 1, domain.DateRange{
		Start: start.AddDate(0, 0, -5),
		End:   start.AddDate(0, 0, 10),
	}, domain.StatusConfirmed)

	assert.Equal(t, 10, OccupiedDays([]*domain.Reservation{r}, w))
	assert.Equal(t, 33.0, OccupancyRate([]*domain.Reservation{r}, w))
}

func TestOccupancyRate_ClipsAtWindowEnd(t *testing.T) {
	w := window(t, "2024-03-10", 30)
	r := reservation(1, 1, rng("2024-03-08", "2024-03-20"), domain.StatusCheckedIn)

	assert.Equal(t, 2, OccupiedDays([]*domain.Reservation{r}, w))
}

func TestOccupancyRate_StatusFiltering(t *testing.T) {
	w := window(t, "2024-03-10", 10)
	reservations := []*domain.Reservation{
		reservation(1, 1, rng("2024-03-01", "2024-03-03"), domain.StatusCancelled),
		reservation(2, 1, rng("2024-03-03", "2024-03-05"), domain.StatusCheckedOut),
		reservation(3, 1, rng("2024-03-05", "2024-03-06"), domain.StatusPending),
	}

	assert.Equal(t, 3, OccupiedDays(reservations, w))
	assert.Equal(t, 30.0, OccupancyRate(reservations, w))
}

func TestOccupancyRate_OutsideWindow(t *testing.T) {
	w := window(t, "2024-03-10", 5)
	reservations := []*domain.Reservation{
		reservation(1, 1, rng("2024-02-01", "2024-03-05"), domain.StatusConfirmed), // ends on window start
		reservation(2, 1, rng("2024-03-10", "2024-03-12"), domain.StatusConfirmed), // starts on window end
	}

	assert.Equal(t, 0.0, OccupancyRate(reservations, w))
}

func TestOccupancyRate_DoubleBookingNotDeduplicated(t *testing.T) {
	w := window(t, "2024-03-10", 4)
	reservations := []*domain.Reservation{
		reservation(1, 1, w.Range(), domain.StatusConfirmed),
		reservation(2, 1, rng("2024-03-08", "2024-03-10"), domain.StatusConfirmed),
	}

	rate := OccupancyRate(reservations, w)
	assert.Equal(t, 150.0, rate)
	assert.Equal(t, 100.0, ClampRate(rate))
}

func TestOccupancyRate_ZeroLengthWindow(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(nil, domain.OccupancyWindow{End: base}))
}

func TestOccupiedDays_BoundedByWindowPerReservation(t *testing.T) {
	prop := func(s, l uint8, length uint8) bool {
		w := domain.OccupancyWindow{End: base.AddDate(0, 0, 200), LengthDays: int(length) + 1}
		r := reservation(1, 1, days(int(s), int(s)+int(l)+1), domain.StatusConfirmed)

		got := OccupiedDays([]*domain.Reservation{r}, w)
		return got >= 0 && got <= w.LengthDays && got <= r.Stay.Days()
	}
	assert.NoError(t, quick.Check(prop, nil))
}

func TestClampRate(t *testing.T) {
	assert.Equal(t, 0.0, ClampRate(-5))
	assert.Equal(t, 42.0, ClampRate(42))
	assert.Equal(t, 100.0, ClampRate(180))
}
