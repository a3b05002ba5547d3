package stay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Room R101 at 150/night with one confirmed and one departed stay.
func TestScenario_R101(t *testing.T) {
	room := &domain.Room{ID: 101, Number: "R101", NightlyRate: 150, Capacity: 2, IsActive: true}
	reservations := []*domain.Reservation{
		reservation(1, 101, rng("2024-03-01", "2024-03-05"), domain.StatusConfirmed),
		reservation(2, 101, rng("2024-02-20", "2024-02-25"), domain.StatusCheckedOut),
	}

	assert.False(t, IsAvailable(room, reservations, rng("2024-03-03", "2024-03-06")))
	assert.True(t, IsAvailable(room, reservations, rng("2024-03-05", "2024-03-08")))

	w := window(t, "2024-03-10", 30)
	assert.Equal(t, 9, OccupiedDays(reservations, w))
	assert.Equal(t, 30.0, OccupancyRate(reservations, w))

	assert.Equal(t, 450.0, ComputeTotal(room.NightlyRate, rng("2024-03-05", "2024-03-08"), nil))
}
