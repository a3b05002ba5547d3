package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/validation"
)

// validateRequest возвращает период проживания или ошибку со списком нарушений
func validateRequest(req *Request) (domain.DateRange, error) {
	violations := domain.ValidateStay(req.CheckIn, req.CheckOut)

	if req.Guests < 0 || req.Guests > domain.MaxGuestCount {
		violations = append(violations, validation.Violation{
			Field:   "guests",
			Message: fmt.Sprintf("must be between 1 and %d", domain.MaxGuestCount),
		})
	}

	if len(violations) > 0 {
		return domain.DateRange{}, fmt.Errorf("%w: %w", ErrInvalidInput, violations)
	}

	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return stay, nil
}
