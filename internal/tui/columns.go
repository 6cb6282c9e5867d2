package tui

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/colsplit/internal/columns"
	"github.com/HaiFongPan/colsplit/internal/config"
	"github.com/HaiFongPan/colsplit/internal/host"
	"github.com/HaiFongPan/colsplit/internal/resize"
	tuiconfig "github.com/HaiFongPan/colsplit/internal/tui/config"
	"github.com/HaiFongPan/colsplit/internal/tui/messaging"
	"github.com/HaiFongPan/colsplit/internal/tui/theme"
	"github.com/HaiFongPan/colsplit/internal/utils"
)

// Options configures a ColumnsModel
type Options struct {
	Variant     string
	HandleGrab  int
	NudgeStep   float64
	FrameHeight int

	Emitter host.Emitter

	// State and StateKey enable persisting widths between runs
	State    *config.State
	StateKey string

	// Copy overrides the clipboard writer
	Copy func(string) error
}

// LayoutReloadedMsg carries a new layout from the host
type LayoutReloadedMsg struct {
	Config *columns.Config
}

// LayoutErrorMsg reports a layout the host sent that could not be used
type LayoutErrorMsg struct {
	Err error
}

type frameHeightSentMsg struct {
	err error
}

type clearStatusMsg struct {
	id uint64
}

// ColumnsModel is the resize-handle widget
type ColumnsModel struct {
	layout  *columns.Config
	initial resize.SegmentSet
	widths  resize.SegmentSet

	variant     string
	grab        int
	nudge       float64
	frameHeight int

	emitter  host.Emitter
	state    *config.State
	stateKey string
	copyFn   func(string) error

	gesture  *resize.Gesture
	selected int

	windowWidth  int
	windowHeight int

	keyMap         KeyMap
	help           help.Model
	showHelp       bool
	messageManager messaging.StatusManager
	program        *tea.Program
}

// NewColumnsModel creates the widget for a host layout. Omitted layout fields are filled
// with the standard defaults; an invalid layout is rejected.
func NewColumnsModel(layout *columns.Config, opts Options) (*ColumnsModel, error) {
	layout = layout.Clone()
	if err := layout.Normalize(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	if opts.Variant == "" {
		opts.Variant = config.VariantOverlay
	}
	if opts.NudgeStep <= 0 {
		opts.NudgeStep = 0.01
	}
	if opts.FrameHeight <= 0 {
		opts.FrameHeight = host.DefaultFrameHeight
	}
	if opts.Emitter == nil {
		opts.Emitter = host.NewRecorder()
	}
	if opts.Copy == nil {
		opts.Copy = utils.CopyToClipboard
	}

	h := help.New()
	h.ShowAll = false

	m := &ColumnsModel{
		layout:         layout,
		variant:        opts.Variant,
		grab:           opts.HandleGrab,
		nudge:          opts.NudgeStep,
		frameHeight:    opts.FrameHeight,
		emitter:        opts.Emitter,
		state:          opts.State,
		stateKey:       opts.StateKey,
		copyFn:         opts.Copy,
		windowWidth:    tuiconfig.DefaultWindowWidth,
		windowHeight:   tuiconfig.DefaultWindowHeight,
		keyMap:         DefaultKeyMap(),
		help:           h,
		messageManager: messaging.NewStatusManager(),
	}
	m.resetWidths(true)
	return m, nil
}

// resetWidths takes widths from the layout. With restore set, persisted widths of the
// same shape win over the layout's.
func (m *ColumnsModel) resetWidths(restore bool) {
	m.initial = resize.SegmentSet(m.layout.Widths).Clone()
	m.widths = m.initial.Clone()
	m.gesture = nil
	if m.selected >= len(m.widths)-1 {
		m.selected = 0
	}

	if !restore || m.state == nil || m.stateKey == "" {
		return
	}
	saved, ok := m.state.Widths(m.stateKey)
	if !ok || len(saved) != len(m.widths) || resize.SegmentSet(saved).Validate() != nil {
		return
	}
	logrus.Debugf("Restoring widths for %s: %v", m.stateKey, saved)
	m.widths = saved
}

// SetProgram sets the tea.Program reference for direct message sending
func (m *ColumnsModel) SetProgram(p *tea.Program) {
	m.program = p
}

// Widths returns a copy of the current widths
func (m *ColumnsModel) Widths() []float64 {
	return m.widths.Clone()
}

// Dragging reports whether a gesture is in progress
func (m *ColumnsModel) Dragging() bool {
	return m.gesture != nil
}

// Init implements the bubbletea.Model interface
func (m *ColumnsModel) Init() tea.Cmd {
	emitter, height := m.emitter, m.frameHeight
	return func() tea.Msg {
		return frameHeightSentMsg{err: emitter.SetFrameHeight(height)}
	}
}

// Update implements the bubbletea.Model interface
func (m *ColumnsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case LayoutReloadedMsg:
		layout := msg.Config.Clone()
		if err := layout.Normalize(); err != nil {
			logrus.Warnf("Layout update rejected: %v", err)
			return m, m.setStatus(fmt.Sprintf("Layout rejected: %v", err), messaging.MessageError)
		}
		if m.gesture != nil {
			logrus.Debugf("Layout reloaded mid-drag, dropping gesture on boundary %d", m.gesture.Boundary)
		}
		// the host's widths replace anything restored or dragged so far
		m.layout = layout
		m.resetWidths(false)
		return m, m.setStatus("Layout reloaded", messaging.MessageInfo)

	case LayoutErrorMsg:
		logrus.Warnf("Layout update rejected: %v", msg.Err)
		return m, m.setStatus(fmt.Sprintf("Layout rejected: %v", msg.Err), messaging.MessageError)

	case frameHeightSentMsg:
		if msg.err != nil {
			logrus.Warnf("Failed to send frame height: %v", msg.err)
		}
		return m, nil

	case clearStatusMsg:
		m.messageManager.ClearIfCurrent(msg.id)
		return m, nil
	}

	return m, nil
}

// handleKey handles keyboard input
func (m *ColumnsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		if m.gesture != nil {
			// releasing by quitting still completes the gesture
			m.finishGesture()
			m.report()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	// keyboard resizing is blocked while the pointer owns a gesture
	if m.gesture != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.NextHandle):
		if n := len(m.widths) - 1; n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PrevHandle):
		if n := len(m.widths) - 1; n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Grow):
		return m, m.nudgeSelected(1)

	case key.Matches(msg, m.keyMap.Shrink):
		return m, m.nudgeSelected(-1)

	case key.Matches(msg, m.keyMap.Reset):
		// a reset is reported like a gesture, but only when it changed something
		if slices.Equal(m.widths, m.initial) {
			return m, nil
		}
		m.widths = m.initial.Clone()
		return m, tea.Batch(m.report(), m.setStatus(theme.FormatSuccessMessage("reset", "Widths"), messaging.MessageInfo))

	case key.Matches(msg, m.keyMap.Copy):
		return m, m.copyWidths()
	}

	return m, nil
}

// nudgeSelected runs a one-step gesture on the selected divider
func (m *ColumnsModel) nudgeSelected(direction float64) tea.Cmd {
	if len(m.widths) < 2 {
		return nil
	}

	g, err := resize.StartGesture(m.widths, m.selected, 0)
	if err != nil {
		return m.setStatus(theme.FormatErrorMessage("Resize", err), messaging.MessageError)
	}
	if _, err := g.MoveBy(direction*m.nudge*m.widths.Total(), m.layout.MinRatios); err != nil {
		return m.setStatus(theme.FormatErrorMessage("Resize", err), messaging.MessageError)
	}
	m.widths = g.End()
	return m.report()
}

// handleMouse drives pointer gestures
func (m *ColumnsModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := msg.X - tuiconfig.DefaultMarginSize
	geo := m.geometry()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.gesture != nil {
			return m, nil
		}
		if !m.inBody(msg.Y, geo) {
			return m, nil
		}
		boundary, ok := geo.HitDivider(x, m.grab)
		if !ok {
			return m, nil
		}
		g, err := resize.StartGesture(m.widths, boundary, float64(x))
		if err != nil {
			logrus.Warnf("Cannot start drag: %v", err)
			return m, nil
		}
		logrus.Debugf("Drag started on boundary %d at x=%d", boundary, x)
		m.gesture = g
		m.selected = boundary
		return m, nil

	case tea.MouseActionMotion:
		if m.gesture == nil {
			return m, nil
		}
		widths, err := m.gesture.Move(float64(x), float64(geo.Span()), m.layout.MinRatios)
		if err != nil {
			logrus.Warnf("Resize step rejected: %v", err)
			return m, m.setStatus(theme.FormatErrorMessage("Resize", err), messaging.MessageError)
		}
		if step := m.gesture.LastStep(); step.Drifted {
			logrus.Warnf("Minimums exceed pair budget on boundary %d", step.Boundary)
		}
		m.widths = widths
		return m, nil

	case tea.MouseActionRelease:
		if m.gesture == nil {
			return m, nil
		}
		m.finishGesture()
		return m, m.report()
	}

	return m, nil
}

func (m *ColumnsModel) finishGesture() {
	m.widths = m.gesture.End()
	logrus.Debugf("Drag ended on boundary %d: %v", m.gesture.Boundary, []float64(m.widths))
	m.gesture = nil
}

// report sends the widths to the host and persists them
func (m *ColumnsModel) report() tea.Cmd {
	if err := m.emitter.SetComponentValue(host.NewResizeEvent(m.widths)); err != nil {
		logrus.Errorf("Failed to report widths: %v", err)
		return m.setStatus(theme.FormatErrorMessage("Report", err), messaging.MessageError)
	}

	if m.state != nil && m.stateKey != "" {
		if err := m.state.SetWidths(m.stateKey, m.widths); err != nil {
			logrus.Warnf("Failed to persist widths: %v", err)
		}
	}
	return nil
}

func (m *ColumnsModel) copyWidths() tea.Cmd {
	data, err := json.Marshal(host.NewResizeEvent(m.widths))
	if err != nil {
		return m.setStatus(theme.FormatErrorMessage("Copy", err), messaging.MessageError)
	}
	if err := m.copyFn(string(data)); err != nil {
		logrus.Warnf("Clipboard copy failed: %v", err)
		return m.setStatus(theme.FormatErrorMessage("Copy", err), messaging.MessageError)
	}
	return m.setStatus(theme.FormatSuccessMessage("copied to clipboard", "Widths"), messaging.MessageSuccess)
}

// setStatus shows a message and schedules its removal
func (m *ColumnsModel) setStatus(text string, msgType messaging.MessageType) tea.Cmd {
	id := m.messageManager.SetMessage(text, msgType)
	return tea.Tick(tuiconfig.StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// geometry lays out the current widths across the window
func (m *ColumnsModel) geometry() columns.Layout {
	width := m.windowWidth - 2*tuiconfig.DefaultMarginSize
	return columns.Compute(m.widths, width, columns.GapCells(m.layout.Gap))
}

// Send delivers msg to the running program, if any
func (m *ColumnsModel) Send(msg tea.Msg) {
	if m.program != nil {
		m.program.Send(msg)
	}
}
