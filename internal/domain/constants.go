package domain

// Default values
const (
	DefaultOccupancyWindowDays = 30
	DefaultGuestCount          = 1
)

// Business validation constants
const (
	MaxOccupancyWindowDays = 366
	MaxStayNights          = 365
	MaxGuestCount          = 50
	MaxNotesLength         = 500
	MaxChargeDescription   = 255
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// InactiveStatuses статусы, которые не блокируют номер
// Используется для фильтрации при поиске свободных номеров
var InactiveStatuses = []ReservationStatus{
	StatusCheckedOut,
	StatusCancelled,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}
