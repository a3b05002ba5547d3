package stay

import (
	"testing"
	"testing/quick"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

func TestComputeTotal(t *testing.T) {
	stay := rng("2024-01-01", "2024-01-03")

	tests := []struct {
		name    string
		rate    float64
		stay    domain.DateRange
		charges []float64
		want    float64
	}{
		{"basic", 100, stay, nil, 200},
		{"with charges", 100, stay, []float64{15, 25}, 240},
		{"zero length stay bills one night", 100, domain.DateRange{Start: base, End: base}, nil, 100},
		{"inverted stay bills one night", 100, days(3, 1), []float64{5}, 105},
		{"free room", 0, stay, []float64{12.5}, 12.5},
		{"fractional rate is not rounded", 99.99, rng("2024-01-01", "2024-01-04"), nil, 3 * 99.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeTotal(tt.rate, tt.stay, tt.charges), 1e-9)
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(rng("2024-01-01", "2024-01-03")))
	assert.Equal(t, 1, Nights(domain.DateRange{Start: base, End: base}))
	assert.Equal(t, 29, Nights(rng("2024-02-01", "2024-03-01")))

	// ranges built without the factory may carry time of day
	partial := domain.DateRange{Start: base, End: base.Add(30 * time.Hour)}
	assert.Equal(t, 2, Nights(partial))
}

func TestNights_MatchesDaysForValidRanges(t *testing.T) {
	prop := func(s, l uint8) bool {
		r := days(int(s), int(s)+int(l)+1)
		return Nights(r) == r.Days()
	}
	assert.NoError(t, quick.Check(prop, nil))
}

func TestComputeTotal_AdditiveInCharges(t *testing.T) {
	prop := func(rate, extra uint16, l uint8, charges []uint16) bool {
		stay := days(0, int(l)+1)
		amounts := make([]float64, len(charges))
		for i, c := range charges {
			amounts[i] = float64(c)
		}

		before := ComputeTotal(float64(rate), stay, amounts)
		after := ComputeTotal(float64(rate), stay, append(amounts, float64(extra)))
		return after == before+float64(extra) && before >= float64(rate)*float64(Nights(stay))
	}
	assert.NoError(t, quick.Check(prop, nil))
}

func TestSumCharges(t *testing.T) {
	assert.Equal(t, 0.0, SumCharges(nil))
	assert.Equal(t, 40.0, SumCharges([]float64{15, 25}))
}

func TestComputeTotal_RoomPlusSumCharges(t *testing.T) {
	stay := rng("2024-01-01", "2024-01-04")
	charges := []float64{0.1, 0.2, 0.3, 19.99}

	want := float64(Nights(stay))*49.95 + SumCharges(charges)
	assert.Equal(t, want, ComputeTotal(49.95, stay, charges))
}
