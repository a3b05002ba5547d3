package check_out

import (
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/validation"
)

func validateRequest(req *Request) error {
	var violations validation.Violations

	if req.ReservationID <= 0 {
		violations = append(violations, validation.Violation{Field: "reservationId", Message: "must be positive"})
	}
	if req.LateFee != nil {
		for _, v := range domain.ValidateCharges([]float64{*req.LateFee}) {
			violations = append(violations, validation.Violation{Field: "lateFee", Message: v.Message})
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, violations)
	}
	return nil
}
