package theme

import "github.com/charmbracelet/lipgloss"

// Border styles using Unicode box drawing characters
var (
	BorderStyleUnified = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}

	// BorderStyleDashed mirrors the dashed outline of bordered handle areas
	BorderStyleDashed = lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
)

// Handle glyphs drawn in the gap between columns
const (
	HandleIdle   = "│"
	HandleActive = "┃"
	HandleKnob   = "◆"
	BarFill      = "━"
)
