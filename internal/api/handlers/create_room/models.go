package create_room

import "github.com/m04kA/SMC-StayService/internal/service/rooms/models"

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	Number      string  `json:"number" validate:"required,max=32"`
	NightlyRate float64 `json:"nightlyRate" validate:"gte=0"`
	Capacity    int     `json:"capacity" validate:"gte=1"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRoomRequest) ToServiceRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Number:      r.Number,
		NightlyRate: r.NightlyRate,
		Capacity:    r.Capacity,
		IsActive:    r.IsActive,
	}
}
