package stay

import "github.com/m04kA/SMC-StayService/internal/domain"

// IsAvailable reports whether room can be booked for requested.
// The room must be active and no reservation of this room whose status blocks
// availability may overlap the requested stay. Reservations of other rooms are ignored.
func IsAvailable(room *domain.Room, existing []*domain.Reservation, requested domain.DateRange) bool {
	if room == nil || !room.IsActive {
		return false
	}

	for _, r := range existing {
		if r == nil || r.RoomID != room.ID {
			continue
		}
		if !domain.BlocksAvailability(r.Status) {
			continue
		}
		if Overlaps(r.Stay, requested) {
			return false
		}
	}

	return true
}

// FilterAvailable returns the rooms available for requested, in input order.
func FilterAvailable(
	rooms []*domain.Room,
	reservationsByRoom map[int64][]*domain.Reservation,
	requested domain.DateRange,
) []*domain.Room {
	result := make([]*domain.Room, 0, len(rooms))

	for _, room := range rooms {
		if room == nil {
			continue
		}
		if IsAvailable(room, reservationsByRoom[room.ID], requested) {
			result = append(result, room)
		}
	}

	return result
}

// GroupByRoom indexes reservations by room for FilterAvailable.
func GroupByRoom(reservations []*domain.Reservation) map[int64][]*domain.Reservation {
	grouped := make(map[int64][]*domain.Reservation)
	for _, r := range reservations {
		if r == nil {
			continue
		}
		grouped[r.RoomID] = append(grouped[r.RoomID], r)
	}
	return grouped
}
