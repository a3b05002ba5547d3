package get_occupancy

import "time"

// Request запрос загрузки номера за окно [End-Days, End]
type Request struct {
	RoomID int64
	End    *time.Time // nil - сегодня
	Days   *int       // nil - значение по умолчанию из конфигурации
}

// Response загрузка номера.
// Rate не ограничен сверху: пересекающиеся бронирования одного номера не схлопываются.
// DisplayRate тот же показатель, обрезанный до 100 для отображения
type Response struct {
	RoomID       int64
	WindowStart  time.Time
	WindowEnd    time.Time
	LengthDays   int
	OccupiedDays int
	Rate         float64
	DisplayRate  float64
	Cached       bool
}
