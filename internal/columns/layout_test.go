package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_FillsAvailableWidth(t *testing.T) {
	testCases := []struct {
		name   string
		widths []float64
		width  int
		gap    int
	}{
		{"even", []float64{1, 1}, 81, 1},
		{"thirds", []float64{1, 1, 1}, 100, 2},
		{"skewed", []float64{94, 6}, 40, 1},
		{"collapsed column", []float64{1, 0, 1}, 30, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := Compute(tc.widths, tc.width, tc.gap)
			assert.Equal(t, tc.width-tc.gap*(len(tc.widths)-1), l.Span())
			for i, c := range l.Cells {
				assert.GreaterOrEqual(t, c, 1, "column %d", i)
			}
			assert.Len(t, l.Dividers, len(tc.widths)-1)
		})
	}
}

func TestCompute_Geometry(t *testing.T) {
	l := Compute([]float64{1, 1}, 21, 1)

	assert.Equal(t, []int{10, 10}, l.Cells)
	assert.Equal(t, []int{0, 11}, l.Offsets)
	assert.Equal(t, []int{10}, l.Dividers)
}

func TestLayout_HitDivider(t *testing.T) {
	l := Compute([]float64{1, 1, 1}, 32, 1)
	// cells are 10 each: dividers at 10 and 21
	assert.Equal(t, []int{10, 21}, l.Dividers)

	idx, ok := l.HitDivider(11, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = l.HitDivider(21, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = l.HitDivider(5, 1)
	assert.False(t, ok)
}

func TestCompute_Empty(t *testing.T) {
	l := Compute(nil, 80, 1)
	assert.Empty(t, l.Cells)
	assert.Equal(t, 0, l.Span())
}
