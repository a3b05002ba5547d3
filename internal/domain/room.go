package domain

import "time"

// Room is a bookable unit with a per-night price
type Room struct {
	ID          int64
	Number      string
	NightlyRate float64
	Capacity    int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fits returns true if the room can host the given number of guests.
// guests <= 0 means "not specified".
func (r *Room) Fits(guests int) bool {
	return guests <= 0 || guests <= r.Capacity
}
