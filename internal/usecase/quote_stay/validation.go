package quote_stay

import (
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/validation"
)

func validateRequest(req *Request) (domain.DateRange, error) {
	var violations validation.Violations

	if req.RoomID <= 0 {
		violations = append(violations, validation.Violation{Field: "roomId", Message: "must be positive"})
	}
	violations = append(violations, domain.ValidateStay(req.CheckIn, req.CheckOut)...)
	violations = append(violations, domain.ValidateCharges(req.Charges)...)

	if len(violations) > 0 {
		return domain.DateRange{}, fmt.Errorf("%w: %w", ErrInvalidInput, violations)
	}

	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return stay, nil
}
