package set_room_active

import "github.com/m04kA/SMC-StayService/internal/service/rooms/models"

// SetActiveRequest HTTP request model
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetActiveRequest) ToServiceRequest() *models.SetActiveRequest {
	return &models.SetActiveRequest{IsActive: *r.IsActive}
}
