package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keybindings for the column widget
type KeyMap struct {
	NextHandle key.Binding
	PrevHandle key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Reset      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextHandle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next divider"),
		),
		PrevHandle: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous divider"),
		),
		Grow: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move divider right"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move divider left"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset widths"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy widths"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextHandle, k.Shrink, k.Grow, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextHandle, k.PrevHandle},
		{k.Shrink, k.Grow},
		{k.Reset, k.Copy},
		{k.Help, k.Quit},
	}
}
