package get_occupancy

import (
	"github.com/m04kA/SMC-StayService/internal/domain"
	getOccupancy "github.com/m04kA/SMC-StayService/internal/usecase/get_occupancy"
)

// OccupancyResponse HTTP response model.
// rate может превышать 100, если бронирования номера пересекаются; displayRate обрезан до 100
type OccupancyResponse struct {
	RoomID       int64   `json:"roomId"`
	WindowStart  string  `json:"windowStart"`
	WindowEnd    string  `json:"windowEnd"`
	LengthDays   int     `json:"lengthDays"`
	OccupiedDays int     `json:"occupiedDays"`
	Rate         float64 `json:"rate"`
	DisplayRate  float64 `json:"displayRate"`
	Cached       bool    `json:"cached"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancy.Response) *OccupancyResponse {
	return &OccupancyResponse{
		RoomID:       resp.RoomID,
		WindowStart:  resp.WindowStart.Format(domain.DateFormat),
		WindowEnd:    resp.WindowEnd.Format(domain.DateFormat),
		LengthDays:   resp.LengthDays,
		OccupiedDays: resp.OccupiedDays,
		Rate:         resp.Rate,
		DisplayRate:  resp.DisplayRate,
		Cached:       resp.Cached,
	}
}
