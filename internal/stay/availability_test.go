package stay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

func TestIsAvailable(t *testing.T) {
	room := &domain.Room{ID: 1, NightlyRate: 100, Capacity: 2, IsActive: true}

	tests := []struct {
		name      string
		room      *domain.Room
		existing  []*domain.Reservation
		requested domain.DateRange
		want      bool
	}{
		{
			name:      "no reservations",
			room:      room,
			requested: days(2, 4),
			want:      true,
		},
		{
			name:      "cancelled reservation does not block",
			room:      room,
			existing:  []*domain.Reservation{reservation(1, 1, days(1, 5), domain.StatusCancelled)},
			requested: days(2, 4),
			want:      true,
		},
		{
			name:      "confirmed reservation blocks overlap",
			room:      room,
			existing:  []*domain.Reservation{reservation(1, 1, days(1, 5), domain.StatusConfirmed)},
			requested: days(2, 4),
			want:      false,
		},
		{
			name:      "confirmed reservation allows same-day turnover",
			room:      room,
			existing:  []*domain.Reservation{reservation(1, 1, days(1, 5), domain.StatusConfirmed)},
			requested: days(5, 8),
			want:      true,
		},
		{
			name:      "checked out never blocks",
			room:      room,
			existing:  []*domain.Reservation{reservation(1, 1, days(1, 10), domain.StatusCheckedOut)},
			requested: days(2, 4),
			want:      true,
		},
		{
			name:      "checked in blocks",
			room:      room,
			existing:  []*domain.Reservation{reservation(1, 1, days(1, 5), domain.StatusCheckedIn)},
			requested: days(4, 6),
			want:      false,
		},
		{
			name:      "pending blocks",
			room:      room,
			existing:  []*domain.Reservation{reservation(1, 1, days(3, 4), domain.StatusPending)},
			requested: days(2, 6),
			want:      false,
		},
		{
			name:      "other room is ignored",
			room:      room,
			existing:  []*domain.Reservation{reservation(1, 2, days(1, 5), domain.StatusConfirmed)},
			requested: days(2, 4),
			want:      true,
		},
		{
			name:      "inactive room",
			room:      &domain.Room{ID: 1, IsActive: false},
			requested: days(2, 4),
			want:      false,
		},
		{
			name:      "nil room",
			requested: days(2, 4),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tt.room, tt.existing, tt.requested))
		})
	}
}

func TestFilterAvailable_PreservesOrder(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 3, IsActive: true},
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: false},
		{ID: 4, IsActive: true},
	}
	byRoom := GroupByRoom([]*domain.Reservation{
		reservation(10, 1, days(1, 5), domain.StatusConfirmed),
		reservation(11, 4, days(1, 5), domain.StatusCancelled),
		reservation(12, 3, days(5, 9), domain.StatusConfirmed),
	})

	got := FilterAvailable(rooms, byRoom, days(2, 5))

	ids := make([]int64, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{3, 4}, ids)
}

func TestFilterAvailable_Empty(t *testing.T) {
	assert.Empty(t, FilterAvailable(nil, nil, days(1, 2)))
}

func TestGroupByRoom(t *testing.T) {
	grouped := GroupByRoom([]*domain.Reservation{
		reservation(1, 7, days(1, 2), domain.StatusConfirmed),
		nil,
		reservation(2, 7, days(3, 4), domain.StatusConfirmed),
		reservation(3, 8, days(1, 2), domain.StatusConfirmed),
	})

	assert.Len(t, grouped, 2)
	assert.Len(t, grouped[7], 2)
	assert.Len(t, grouped[8], 1)
}
