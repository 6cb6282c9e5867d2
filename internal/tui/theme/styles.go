package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// CreateHeaderStyle creates a consistent header style
func CreateHeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrightCyan)).
		MarginBottom(1)
}

// CreateFooterStyle creates a consistent footer style
func CreateFooterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		MarginTop(1)
}

// CreateLabelStyle creates the style for a column label clipped to width cells
func CreateLabelStyle(width int, dimmed bool) lipgloss.Style {
	color := ColorWhite
	if dimmed {
		color = ColorDimText
	}
	return lipgloss.NewStyle().
		Inline(true).
		Width(width).
		MaxWidth(width).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(color))
}

// CreateAreaStyle creates the style for a column's handle area
func CreateAreaStyle(width int, border bool) lipgloss.Style {
	style := lipgloss.NewStyle().Align(lipgloss.Center)
	if !border || width < 3 {
		return style.Width(width).MaxWidth(width)
	}
	return style.
		Width(width - 2).
		Border(BorderStyleDashed).
		BorderForeground(lipgloss.Color(ColorAreaBorder))
}

// CreateColumnBoxStyle creates the bordered box used by the plain variant
func CreateColumnBoxStyle(width int, focused bool) lipgloss.Style {
	color := ColorBrightBlack
	if focused {
		color = ColorBrightBlue
	}
	return lipgloss.NewStyle().
		Width(max(width-2, 0)).
		Align(lipgloss.Center).
		Border(BorderStyleUnified).
		BorderForeground(lipgloss.Color(color))
}

// CreateHandleStyle creates the style for a divider handle
func CreateHandleStyle(selected, active bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightBlack))
	switch {
	case active:
		return style.Foreground(lipgloss.Color(ColorBrightRed)).Bold(true)
	case selected:
		return style.Foreground(lipgloss.Color(ColorBrightBlue)).Bold(true)
	}
	return style
}

// CreateSecondaryTextStyle creates a consistent secondary text style
func CreateSecondaryTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrightBlack)).
		Italic(true)
}

// CreateErrorStyle creates a consistent error style
func CreateErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightRed))
}
