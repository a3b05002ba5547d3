package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/pkg/validation"
)

// validateRequest валидирует входные данные запроса и возвращает период проживания
func validateRequest(req *Request) (domain.DateRange, error) {
	var violations validation.Violations

	if req.ClientID <= 0 {
		violations = append(violations, validation.Violation{Field: "clientId", Message: "must be positive"})
	}
	if req.RoomID <= 0 {
		violations = append(violations, validation.Violation{Field: "roomId", Message: "must be positive"})
	}
	violations = append(violations, domain.ValidateStay(req.CheckIn, req.CheckOut)...)

	if req.GuestCount < 0 || req.GuestCount > domain.MaxGuestCount {
		violations = append(violations, validation.Violation{
			Field:   "guestCount",
			Message: fmt.Sprintf("must be between 1 and %d", domain.MaxGuestCount),
		})
	}
	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		violations = append(violations, validation.Violation{
			Field:   "notes",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxNotesLength),
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

// validateCheckInDate запрещает заезд в прошлом; заезд сегодня допустим
func validateCheckInDate(stay domain.DateRange, now time.Time) error {
	if stay.Start.Before(domain.TruncateToDay(now)) {
		return fmt.Errorf("%w: %s", ErrCheckInInPast, stay.Start.Format(domain.DateFormat))
	}
	return nil
}
