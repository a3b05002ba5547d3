package stay

import "github.com/m04kA/SMC-StayService/internal/domain"

// Overlaps reports whether two half-open stays share at least one night.
// A stay ending on the day another begins does not overlap it (same-day turnover).
func Overlaps(a, b domain.DateRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
