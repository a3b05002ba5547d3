package quote_stay

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	quoteStay "github.com/m04kA/SMC-StayService/internal/usecase/quote_stay"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	CheckIn  string    `json:"checkIn" validate:"required,date"`
	CheckOut string    `json:"checkOut" validate:"required,date"`
	Charges  []float64 `json:"charges,omitempty" validate:"dive,gte=0"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID       int64   `json:"roomId"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	NightlyRate  float64 `json:"nightlyRate"`
	Nights       int     `json:"nights"`
	RoomTotal    float64 `json:"roomTotal"`
	ChargesTotal float64 `json:"chargesTotal"`
	Total        float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(roomID int64) (*quoteStay.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &quoteStay.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Charges:  r.Charges,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteResponse {
	return &QuoteResponse{
		RoomID:       resp.RoomID,
		CheckIn:      resp.CheckIn.Format(domain.DateFormat),
		CheckOut:     resp.CheckOut.Format(domain.DateFormat),
		NightlyRate:  resp.NightlyRate,
		Nights:       resp.Nights,
		RoomTotal:    resp.RoomTotal,
		ChargesTotal: resp.ChargesTotal,
		Total:        resp.Total,
	}
}
