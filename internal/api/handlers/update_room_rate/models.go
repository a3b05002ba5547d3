package update_room_rate

import "github.com/m04kA/SMC-StayService/internal/service/rooms/models"

// UpdateRateRequest HTTP request model
type UpdateRateRequest struct {
	NightlyRate *float64 `json:"nightlyRate" validate:"required,gte=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRateRequest) ToServiceRequest() *models.UpdateRateRequest {
	return &models.UpdateRateRequest{NightlyRate: *r.NightlyRate}
}
