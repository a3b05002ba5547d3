package check_availability

import "time"

// Request запрос свободных номеров на период
type Request struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int // 0 - domain.DefaultGuestCount
}

// AvailableRoom свободный номер с расчётом стоимости проживания без доп. услуг
type AvailableRoom struct {
	RoomID      int64
	Number      string
	Capacity    int
	NightlyRate float64
	Total       float64
}

// Response список свободных номеров в порядке номеров комнат
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Guests   int
	Rooms    []AvailableRoom
}
