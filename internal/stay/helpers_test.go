package stay

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(start, end string) domain.DateRange {
	return domain.MustDateRange(start, end)
}

// days builds [base+from, base+to) without validation.
func days(from, to int) domain.DateRange {
	return domain.DateRange{Start: base.AddDate(0, 0, from), End: base.AddDate(0, 0, to)}
}

func reservation(id, roomID int64, stay domain.DateRange, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{ID: id, RoomID: roomID, Stay: stay, Status: status}
}
