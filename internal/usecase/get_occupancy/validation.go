package get_occupancy

import (
	"fmt"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/validation"
)

func validateRequest(req *Request) error {
	var violations validation.Violations

	if req.RoomID <= 0 {
		violations = append(violations, validation.Violation{Field: "roomId", Message: "must be positive"})
	}
	if req.End != nil && req.End.IsZero() {
		violations = append(violations, validation.Violation{Field: "end", Message: "is required"})
	}
	if req.Days != nil && (*req.Days <= 0 || *req.Days > domain.MaxOccupancyWindowDays) {
		violations = append(violations, validation.Violation{
			Field:   "days",
			Message: fmt.Sprintf("must be between 1 and %d", domain.MaxOccupancyWindowDays),
		})
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidInput, violations)
	}
	return nil
}
