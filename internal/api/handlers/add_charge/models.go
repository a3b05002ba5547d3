package add_charge

import "github.com/m04kA/SMC-StayService/internal/service/reservations/models"

// AddChargeRequest HTTP request model
type AddChargeRequest struct {
	Kind        string  `json:"kind" validate:"required,oneof=consumption room_service late_fee other"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddChargeRequest) ToServiceRequest() *models.AddChargeRequest {
	return &models.AddChargeRequest{
		Kind:        r.Kind,
		Amount:      r.Amount,
		Description: r.Description,
	}
}
