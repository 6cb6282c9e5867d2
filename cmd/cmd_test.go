package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaiFongPan/colsplit/internal/config"
	"github.com/HaiFongPan/colsplit/internal/host"
)

// resetFlags restores every flag-backed variable after a test
func resetFlags(t *testing.T) {
	t.Helper()
	globalConfig = config.Default()
	t.Cleanup(func() {
		layoutFile = ""
		layoutWidths = nil
		layoutLabels = nil
		layoutMinRatios = nil
		layoutGap = ""
		layoutBorder = false
		resizeBoundary = 0
		resizeDelta = 0
		resizeMins = nil
		normalizeCells = 0
		globalConfig = nil
	})
}

func run(t *testing.T, fn func(*cobra.Command, []string) error) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	err := fn(c, nil)
	return stdout.String(), stderr.String(), err
}

func decodeEvent(t *testing.T, out string) host.Event {
	t.Helper()
	var ev host.Event
	require.NoError(t, json.Unmarshal([]byte(out), &ev))
	return ev
}

func TestResizeCommand(t *testing.T) {
	testCases := []struct {
		name  string
		delta float64
		want  []float64
	}{
		{"moves width", 20, []float64{70, 30}},
		{"clamps right column", 50, []float64{94, 6}},
		{"no-op", 0, []float64{50, 50}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			layoutWidths = []float64{50, 50}
			resizeDelta = tc.delta

			out, _, err := run(t, runResize)
			require.NoError(t, err)

			ev := decodeEvent(t, out)
			assert.Equal(t, host.ActionResize, ev.Action)
			assert.InDeltaSlice(t, tc.want, ev.Sizes, 1e-9)
		})
	}
}

func TestResizeCommand_ExplicitMinimumsWarnOnDrift(t *testing.T) {
	resetFlags(t)
	layoutWidths = []float64{5, 5, 10}
	resizeMins = []float64{6, 6}

	out, stderr, err := run(t, runResize)
	require.NoError(t, err)

	ev := decodeEvent(t, out)
	assert.Equal(t, []float64{6, 6, 10}, ev.Sizes)
	assert.Contains(t, stderr, "warning")
}

func TestResizeCommand_RejectsBadBoundary(t *testing.T) {
	resetFlags(t)
	layoutWidths = []float64{1, 1}
	resizeBoundary = 1

	_, _, err := run(t, runResize)
	assert.Error(t, err)

	resizeBoundary = 0
	resizeMins = []float64{1}
	_, _, err = run(t, runResize)
	assert.Error(t, err)
}

func TestNormalizeCommand(t *testing.T) {
	resetFlags(t)
	layoutWidths = []float64{1, 2, 1}
	layoutLabels = []string{"Nav", "Main"}
	normalizeCells = 42

	out, _, err := run(t, runNormalize)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "CELLS")
	assert.Contains(t, lines[1], "Nav")
	assert.Contains(t, lines[1], "25.00%")
	assert.Contains(t, lines[2], "50.00%")
	assert.Contains(t, lines[2], "20")
	assert.Contains(t, lines[3], "Col 3")
}

func TestBuildLayout(t *testing.T) {
	t.Run("defaults from config", func(t *testing.T) {
		resetFlags(t)
		globalConfig.Resize.DefaultMinRatio = 0.1
		globalConfig.UI.Gap = "large"

		layout, err := buildLayout(globalConfig)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1}, layout.Widths)
		assert.Equal(t, []float64{0.1}, layout.MinRatios)
		assert.Equal(t, "large", layout.Gap)
	})

	t.Run("from file", func(t *testing.T) {
		resetFlags(t)
		layoutFile = filepath.Join(t.TempDir(), "layout.yaml")
		require.NoError(t, os.WriteFile(layoutFile, []byte("widths: [3, 1]\nlabels: [A, B]\n"), 0644))

		layout, err := buildLayout(globalConfig)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 1}, layout.Widths)
		assert.Equal(t, []string{"A", "B"}, layout.Labels)
	})

	t.Run("file and inline flags conflict", func(t *testing.T) {
		resetFlags(t)
		layoutFile = "layout.yaml"
		layoutWidths = []float64{1, 1}

		_, err := buildLayout(globalConfig)
		assert.Error(t, err)
	})

	t.Run("invalid inline widths", func(t *testing.T) {
		resetFlags(t)
		layoutWidths = []float64{1, -1}

		_, err := buildLayout(globalConfig)
		assert.Error(t, err)
	})
}
