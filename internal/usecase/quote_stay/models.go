package quote_stay

import "time"

// Request расчёт стоимости проживания в номере
type Request struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
	Charges  []float64 // дополнительные начисления, суммируются к ночам
}

// Response стоимость проживания
type Response struct {
	RoomID       int64
	CheckIn      time.Time
	CheckOut     time.Time
	NightlyRate  float64
	Nights       int
	RoomTotal    float64
	ChargesTotal float64
	Total        float64
}
