package resize

import (
	"fmt"
)

// Gesture is one drag of a boundary, from press to release. Every Move is resolved
// against the snapshot taken at press time so repeated moves never accumulate drift.
type Gesture struct {
	Boundary int
	StartX   float64

	start   SegmentSet
	current SegmentSet
	last    Step
	ended   bool
}

// StartGesture snapshots widths and begins dragging the boundary between segments
// boundary and boundary+1
func StartGesture(widths SegmentSet, boundary int, startX float64) (*Gesture, error) {
	if err := checkPair(widths, boundary, boundary+1); err != nil {
		return nil, fmt.Errorf("cannot start gesture: %w", err)
	}
	if !isFinite(startX) {
		return nil, fmt.Errorf("cannot start gesture: start position: %w", ErrNotFinite)
	}

	return &Gesture{
		Boundary: boundary,
		StartX:   startX,
		start:    widths.Clone(),
		current:  widths.Clone(),
	}, nil
}

// Start returns a copy of the snapshot taken when the gesture began
func (g *Gesture) Start() SegmentSet {
	return g.start.Clone()
}

// Current returns a copy of the widths after the latest move
func (g *Gesture) Current() SegmentSet {
	return g.current.Clone()
}

// LastStep returns how the latest move was resolved
func (g *Gesture) LastStep() Step {
	return g.last
}

// Ended reports whether End has been called
func (g *Gesture) Ended() bool {
	return g.ended
}

// Move converts a pointer position into a delta and resizes the snapshot.
// containerWidth is the on-screen extent that the whole set spans; ratios are the
// minimum ratios (one uniform value or one per segment).
func (g *Gesture) Move(x, containerWidth float64, ratios []float64) (SegmentSet, error) {
	if g.ended {
		return nil, ErrGestureEnded
	}
	if !isFinite(x) || !isFinite(containerWidth) {
		return nil, ErrNotFinite
	}
	if containerWidth <= 0 {
		return g.Current(), nil
	}

	delta := (x - g.StartX) / containerWidth * g.start.Total()
	return g.MoveBy(delta, ratios)
}

// MoveBy resizes the snapshot by delta, expressed in the same units as the sizes
func (g *Gesture) MoveBy(delta float64, ratios []float64) (SegmentSet, error) {
	if g.ended {
		return nil, ErrGestureEnded
	}

	mins, err := Minimums(g.start, ratios)
	if err != nil {
		return nil, err
	}

	next, step, err := Apply(g.start, g.Boundary, delta, mins)
	if err != nil {
		return nil, err
	}

	g.current = next
	g.last = step
	return next.Clone(), nil
}

// End finishes the gesture and returns the final widths. Later moves fail with
// ErrGestureEnded.
func (g *Gesture) End() SegmentSet {
	g.ended = true
	return g.Current()
}
