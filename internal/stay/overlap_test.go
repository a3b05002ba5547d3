package stay

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]int
		want bool
	}{
		{"checkout day equals check-in day", [2]int{1, 5}, [2]int{5, 10}, false},
		{"partial intersection", [2]int{1, 5}, [2]int{4, 8}, true},
		{"contained", [2]int{1, 10}, [2]int{3, 4}, true},
		{"identical", [2]int{2, 3}, [2]int{2, 3}, true},
		{"disjoint before", [2]int{1, 3}, [2]int{4, 6}, false},
		{"disjoint after", [2]int{7, 9}, [2]int{1, 6}, false},
		{"same start", [2]int{1, 2}, [2]int{1, 8}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := days(tt.a[0], tt.a[1]), days(tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, Overlaps(a, b))
			assert.Equal(t, tt.want, Overlaps(b, a))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	prop := func(s1, l1, s2, l2 uint8) bool {
		a := days(int(s1), int(s1)+int(l1)+1)
		b := days(int(s2), int(s2)+int(l2)+1)
		return Overlaps(a, b) == Overlaps(b, a)
	}
	assert.NoError(t, quick.Check(prop, nil))
}

func TestOverlaps_AdjacentNeverOverlap(t *testing.T) {
	prop := func(s, l1, l2 uint8) bool {
		mid := int(s) + int(l1) + 1
		a := days(int(s), mid)
		b := days(mid, mid+int(l2)+1)
		return !Overlaps(a, b)
	}
	assert.NoError(t, quick.Check(prop, nil))
}
