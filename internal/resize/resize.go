package resize

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultMinRatio is the share of the total below which a segment may not shrink
const DefaultMinRatio = 0.06

// Sentinel errors returned by the resize functions
var (
	ErrEmptySet        = errors.New("segment set is empty")
	ErrIndexOutOfRange = errors.New("segment index out of range")
	ErrNotAdjacent     = errors.New("segments are not adjacent")
	ErrNegativeSize    = errors.New("segment size is negative")
	ErrNegativeMinimum = errors.New("minimum size is negative")
	ErrNotFinite       = errors.New("value is not finite")
	ErrRatioCount      = errors.New("ratio count does not match segment count")
	ErrZeroTotal       = errors.New("segment total is zero")
	ErrGestureEnded    = errors.New("gesture already ended")
)

// SegmentSet is an ordered list of proportional sizes of adjacent regions
type SegmentSet []float64

// Total returns the sum of all sizes
func (s SegmentSet) Total() float64 {
	return floats.Sum(s)
}

// Clone returns an independent copy of the set
func (s SegmentSet) Clone() SegmentSet {
	out := make(SegmentSet, len(s))
	copy(out, s)
	return out
}

// Validate checks that the set is non-empty and every size is finite and non-negative
func (s SegmentSet) Validate() error {
	if len(s) == 0 {
		return ErrEmptySet
	}
	for i, v := range s {
		if !isFinite(v) {
			return fmt.Errorf("segment %d: %w", i, ErrNotFinite)
		}
		if v < 0 {
			return fmt.Errorf("segment %d (%g): %w", i, v, ErrNegativeSize)
		}
	}
	return nil
}

// ComputeResize moves delta from the right segment to the left one. Both results stay at or
// above their minimums and, when the pair can hold both minimums, sum to the pair's starting
// total.
func ComputeResize(startWidths SegmentSet, leftIndex, rightIndex int, delta, leftMin, rightMin float64) (float64, float64, error) {
	if err := checkPair(startWidths, leftIndex, rightIndex); err != nil {
		return 0, 0, err
	}
	if !isFinite(delta) || !isFinite(leftMin) || !isFinite(rightMin) {
		return 0, 0, ErrNotFinite
	}
	if leftMin < 0 || rightMin < 0 {
		return 0, 0, ErrNegativeMinimum
	}

	left := startWidths[leftIndex]
	right := startWidths[rightIndex]

	newLeft := math.Max(leftMin, left+delta)
	newRight := math.Max(rightMin, right-delta)

	if left+delta < leftMin {
		newLeft = leftMin
		newRight = right + (left - leftMin)
	}
	if right-delta < rightMin {
		newRight = rightMin
		newLeft = left + (right - rightMin)
	}

	// only reachable when leftMin+rightMin exceeds the pair's budget
	newLeft = math.Max(leftMin, newLeft)
	newRight = math.Max(rightMin, newRight)

	return newLeft, newRight, nil
}

// Feasible reports whether the pair at leftIndex/rightIndex can hold both minimums
func Feasible(sizes SegmentSet, leftIndex, rightIndex int, leftMin, rightMin float64) bool {
	if checkPair(sizes, leftIndex, rightIndex) != nil {
		return false
	}
	return leftMin+rightMin <= sizes[leftIndex]+sizes[rightIndex]
}

// Normalize returns each segment's percentage of the total
func Normalize(sizes SegmentSet) ([]float64, error) {
	if err := sizes.Validate(); err != nil {
		return nil, err
	}
	total := sizes.Total()
	if total == 0 {
		return nil, ErrZeroTotal
	}

	pct := make([]float64, len(sizes))
	copy(pct, sizes)
	floats.Scale(100/total, pct)
	return pct, nil
}

// Minimums converts ratios of the total into absolute minimum sizes. A single ratio applies
// to every segment.
func Minimums(sizes SegmentSet, ratios []float64) ([]float64, error) {
	if err := sizes.Validate(); err != nil {
		return nil, err
	}

	switch len(ratios) {
	case 0:
		ratios = []float64{DefaultMinRatio}
		fallthrough
	case 1:
		r := ratios[0]
		ratios = make([]float64, len(sizes))
		for i := range ratios {
			ratios[i] = r
		}
	case len(sizes):
	default:
		return nil, fmt.Errorf("%d ratios for %d segments: %w", len(ratios), len(sizes), ErrRatioCount)
	}

	total := sizes.Total()
	mins := make([]float64, len(sizes))
	for i, r := range ratios {
		if !isFinite(r) {
			return nil, fmt.Errorf("ratio %d: %w", i, ErrNotFinite)
		}
		if r < 0 {
			return nil, fmt.Errorf("ratio %d (%g): %w", i, r, ErrNegativeMinimum)
		}
		mins[i] = r * total
	}
	return mins, nil
}

// Step describes how a single resize was resolved
type Step struct {
	Boundary     int
	Delta        float64
	LeftClamped  bool
	RightClamped bool
	// Drifted is set when the minimums did not fit the pair and its total changed
	Drifted bool
}

// Apply resizes the pair around boundary and returns a new set. Segments other than
// boundary and boundary+1 are copied unchanged.
func Apply(start SegmentSet, boundary int, delta float64, mins []float64) (SegmentSet, Step, error) {
	step := Step{Boundary: boundary, Delta: delta}

	if err := start.Validate(); err != nil {
		return nil, step, err
	}
	if len(mins) != len(start) {
		return nil, step, fmt.Errorf("%d minimums for %d segments: %w", len(mins), len(start), ErrRatioCount)
	}

	l, r := boundary, boundary+1
	newLeft, newRight, err := ComputeResize(start, l, r, delta, mins[l], mins[r])
	if err != nil {
		return nil, step, err
	}

	step.LeftClamped = start[l]+delta < mins[l]
	step.RightClamped = start[r]-delta < mins[r]
	step.Drifted = !Feasible(start, l, r, mins[l], mins[r])

	out := start.Clone()
	out[l] = newLeft
	out[r] = newRight
	return out, step, nil
}

func checkPair(sizes SegmentSet, leftIndex, rightIndex int) error {
	if err := sizes.Validate(); err != nil {
		return err
	}
	if leftIndex < 0 || leftIndex >= len(sizes) {
		return fmt.Errorf("left index %d of %d: %w", leftIndex, len(sizes), ErrIndexOutOfRange)
	}
	if rightIndex < 0 || rightIndex >= len(sizes) {
		return fmt.Errorf("right index %d of %d: %w", rightIndex, len(sizes), ErrIndexOutOfRange)
	}
	if rightIndex != leftIndex+1 {
		return fmt.Errorf("left %d, right %d: %w", leftIndex, rightIndex, ErrNotAdjacent)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
