package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
)

// ParseReservationStatus validates a status coming from the outside
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", fmt.Errorf("domain: unknown reservation status %q", s)
}

// BlocksAvailability reports whether a reservation in this status keeps the room
// from being booked for an overlapping stay. Departed guests never block.
func BlocksAvailability(status ReservationStatus) bool {
	return status != StatusCancelled && status != StatusCheckedOut
}

// CountsTowardOccupancy reports whether a reservation in this status contributes
// room-nights to the occupancy rate.
func CountsTowardOccupancy(status ReservationStatus) bool {
	return status != StatusCancelled
}

// Reservation represents a guest stay in a room
type Reservation struct {
	ID          int64
	RoomID      int64
	ClientID    int64
	Stay        DateRange
	Status      ReservationStatus
	GuestCount  int
	NightlyRate float64 // rate at booking time, billed at check-out
	TotalAmount float64

	// Denormalized client data for history
	GuestName *string
	Notes     *string

	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanCheckIn returns true if the guest can be checked in
func (r *Reservation) CanCheckIn() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanCheckOut returns true if the guest can be checked out
func (r *Reservation) CanCheckOut() bool {
	return r.Status == StatusCheckedIn
}

// CanBeCancelled returns true while the stay has not ended
func (r *Reservation) CanBeCancelled() bool {
	return r.Status != StatusCheckedOut && r.Status != StatusCancelled
}

// AcceptsCharges returns true if consumption can still be posted to the reservation
func (r *Reservation) AcceptsCharges() bool {
	return r.Status == StatusConfirmed || r.Status == StatusCheckedIn
}

// RoomReservationsFilter фильтр для выборки бронирований по номерам и периоду
type RoomReservationsFilter struct {
	RoomIDs         []int64    // Пустой список - все номера
	Period          *DateRange // Бронирования, пересекающиеся с периодом (nil - без ограничения)
	IncludeInactive bool       // Включать отменённые и завершённые
}
