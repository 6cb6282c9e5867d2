package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HaiFongPan/colsplit/internal/columns"
	"github.com/HaiFongPan/colsplit/internal/config"
	"github.com/HaiFongPan/colsplit/internal/resize"
	tuiconfig "github.com/HaiFongPan/colsplit/internal/tui/config"
	"github.com/HaiFongPan/colsplit/internal/tui/theme"
)

// View implements the bubbletea.Model interface
func (m *ColumnsModel) View() string {
	geo := m.geometry()
	pct, err := resize.Normalize(m.widths)
	if err != nil {
		return theme.CreateErrorStyle().Render(fmt.Sprintf("Error: %v", err))
	}

	margin := lipgloss.NewStyle().MarginLeft(tuiconfig.DefaultMarginSize)

	var b strings.Builder
	b.WriteString(margin.Render(renderHeader(pct)))
	b.WriteString("\n")
	b.WriteString(margin.Render(m.renderBody(geo, pct)))
	if m.messageManager.HasMessage() {
		b.WriteString("\n")
		b.WriteString(margin.Render(m.messageManager.RenderMessage()))
	}
	b.WriteString("\n")
	b.WriteString(margin.Render(theme.CreateFooterStyle().Render(m.help.View(m.keyMap))))
	return b.String()
}

func renderHeader(pct []float64) string {
	return theme.CreateHeaderStyle().Render(theme.FormatWidths(pct))
}

// renderBody draws the columns and their handles for the configured variant
func (m *ColumnsModel) renderBody(geo columns.Layout, pct []float64) string {
	switch m.variant {
	case config.VariantControlBar:
		return m.renderControlBar(geo, pct)
	case config.VariantPlain:
		return m.renderPlain(geo, pct)
	default:
		return m.renderOverlay(geo)
	}
}

// inBody reports whether screen row y falls on the rows drawn by renderBody
func (m *ColumnsModel) inBody(y int, geo columns.Layout) bool {
	pct, err := resize.Normalize(m.widths)
	if err != nil {
		return false
	}
	top := lipgloss.Height(renderHeader(pct))
	return y >= top && y < top+lipgloss.Height(m.renderBody(geo, pct))
}

// renderOverlay draws one handle area per column with its label and a divider between areas
func (m *ColumnsModel) renderOverlay(geo columns.Layout) string {
	blocks := make([]string, 0, 2*len(geo.Cells))
	for i, cells := range geo.Cells {
		area := theme.CreateAreaStyle(cells, m.layout.Border).
			Render(theme.CreateLabelStyle(innerWidth(cells, m.layout.Border), m.Dragging()).Render(m.layout.Labels[i]))
		blocks = append(blocks, area)
		if i < len(geo.Dividers) {
			blocks = append(blocks, m.renderGap(i, geo.Gap, lipgloss.Height(area)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, blocks...)
}

// renderControlBar draws a bar of knobs above a row of labels with their shares
func (m *ColumnsModel) renderControlBar(geo columns.Layout, pct []float64) string {
	bar := make([]string, 0, 2*len(geo.Cells))
	labels := make([]string, 0, 2*len(geo.Cells))
	fill := theme.CreateHandleStyle(false, false)

	for i, cells := range geo.Cells {
		bar = append(bar, fill.Render(strings.Repeat(theme.BarFill, cells)))
		text := fmt.Sprintf("%s %.0f%%", m.layout.Labels[i], pct[i])
		labels = append(labels, theme.CreateLabelStyle(cells, m.Dragging()).Render(text))

		if i < len(geo.Dividers) {
			knob := m.handleStyle(i).Render(theme.HandleKnob)
			bar = append(bar, padGap(knob, geo.Gap, fill.Render(theme.BarFill)))
			labels = append(labels, strings.Repeat(" ", geo.Gap))
		}
	}
	return strings.Join(bar, "") + "\n" + strings.Join(labels, "")
}

// renderPlain draws bordered column boxes; the gaps between them are the handles
func (m *ColumnsModel) renderPlain(geo columns.Layout, pct []float64) string {
	blocks := make([]string, 0, 2*len(geo.Cells))
	for i, cells := range geo.Cells {
		focused := m.selected == i || m.selected+1 == i
		text := fmt.Sprintf("%s %.0f%%", m.layout.Labels[i], pct[i])
		var box string
		if cells < 3 {
			box = theme.CreateLabelStyle(cells, m.Dragging()).Render(text)
		} else {
			box = theme.CreateColumnBoxStyle(cells, focused).
				Render(theme.CreateLabelStyle(cells-2, m.Dragging()).Render(text))
		}
		blocks = append(blocks, box)
		if i < len(geo.Dividers) {
			blocks = append(blocks, m.renderGap(i, geo.Gap, lipgloss.Height(box)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, blocks...)
}

// renderGap draws a vertical divider centred in a gap of the given height
func (m *ColumnsModel) renderGap(boundary, gap, height int) string {
	glyph := theme.HandleIdle
	if m.gesture != nil && m.gesture.Boundary == boundary {
		glyph = theme.HandleActive
	}
	cell := padGap(m.handleStyle(boundary).Render(glyph), gap, " ")

	rows := make([]string, max(height, 1))
	for i := range rows {
		rows[i] = cell
	}
	return strings.Join(rows, "\n")
}

func (m *ColumnsModel) handleStyle(boundary int) lipgloss.Style {
	active := m.gesture != nil && m.gesture.Boundary == boundary
	return theme.CreateHandleStyle(m.selected == boundary, active)
}

// padGap places glyph at the divider cell of a gap, filling the rest with pad
func padGap(glyph string, gap int, pad string) string {
	if gap <= 1 {
		return glyph
	}
	left := gap / 2
	return strings.Repeat(pad, left) + glyph + strings.Repeat(pad, gap-left-1)
}

func innerWidth(cells int, border bool) int {
	if border && cells >= 3 {
		return cells - 2
	}
	return cells
}
