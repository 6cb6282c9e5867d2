package resize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

func TestGesture_MoveResolvesAgainstSnapshot(t *testing.T) {
	g, err := StartGesture(SegmentSet{50, 50}, 0, 100)
	require.NoError(t, err)

	// 40 of 200 cells is a fifth of the total
	widths, err := g.Move(140, 200, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{70, 30}, widths, tolerance)

	// moving back to the press position restores the snapshot exactly
	widths, err = g.Move(100, 200, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{50, 50}, widths, tolerance)

	widths, err = g.Move(1000, 200, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{94, 6}, widths, tolerance)
	assert.True(t, g.LastStep().RightClamped)
}

func TestGesture_PerSegmentRatios(t *testing.T) {
	g, err := StartGesture(SegmentSet{2, 3, 1}, 1, 0)
	require.NoError(t, err)

	widths, err := g.MoveBy(10, []float64{0.2, 0.2, 0.2})
	require.NoError(t, err)

	// minimum is 0.2 * 6 = 1.2 for every segment
	assert.InDelta(t, 2.0, widths[0], tolerance)
	assert.InDelta(t, 2.8, widths[1], tolerance)
	assert.InDelta(t, 1.2, widths[2], tolerance)
}

func TestGesture_EndStopsFurtherMoves(t *testing.T) {
	g, err := StartGesture(SegmentSet{1, 1}, 0, 0)
	require.NoError(t, err)

	_, err = g.MoveBy(0.5, nil)
	require.NoError(t, err)

	final := g.End()
	assert.True(t, g.Ended())
	assert.InDeltaSlice(t, []float64{1.5, 0.5}, final, tolerance)

	_, err = g.MoveBy(0.1, nil)
	assert.ErrorIs(t, err, ErrGestureEnded)
	_, err = g.Move(10, 100, nil)
	assert.ErrorIs(t, err, ErrGestureEnded)
}

func TestGesture_ZeroContainerKeepsWidths(t *testing.T) {
	g, err := StartGesture(SegmentSet{1, 3}, 0, 5)
	require.NoError(t, err)

	widths, err := g.Move(50, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, SegmentSet{1, 3}, widths)
}

func TestStartGesture_RejectsBadBoundary(t *testing.T) {
	_, err := StartGesture(SegmentSet{1, 1}, 1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = StartGesture(SegmentSet{1}, 0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = StartGesture(SegmentSet{1, 1}, 0, nan())
	assert.ErrorIs(t, err, ErrNotFinite)
}

func TestGesture_SnapshotIsIndependent(t *testing.T) {
	widths := SegmentSet{4, 4}
	g, err := StartGesture(widths, 0, 0)
	require.NoError(t, err)

	widths[0] = 100
	assert.Equal(t, SegmentSet{4, 4}, g.Start())
}
