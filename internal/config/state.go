package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// LayoutState is the last reported widths of one widget
type LayoutState struct {
	Widths    []float64 `json:"widths"`
	UpdatedAt time.Time `json:"updated_at"`
}

// State holds widths of every keyed widget, stored locally so proportions survive restarts
type State struct {
	Layouts   map[string]LayoutState `json:"layouts"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`

	path string
}

// LoadState loads state from path, or from the default location when path is empty.
// A missing or unreadable file yields empty state.
func LoadState(path string) *State {
	if path == "" {
		path = DefaultStatePath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return createDefaultState(path)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		// Invalid JSON, start over
		return createDefaultState(path)
	}
	if state.Layouts == nil {
		state.Layouts = make(map[string]LayoutState)
	}
	state.path = path
	return &state
}

// Widths returns the stored widths for key
func (s *State) Widths(key string) ([]float64, bool) {
	ls, ok := s.Layouts[key]
	if !ok || len(ls.Widths) == 0 {
		return nil, false
	}
	return append([]float64(nil), ls.Widths...), true
}

// SetWidths stores widths for key and saves to file
func (s *State) SetWidths(key string, widths []float64) error {
	s.Layouts[key] = LayoutState{
		Widths:    append([]float64(nil), widths...),
		UpdatedAt: time.Now(),
	}
	return s.Save()
}

// Save writes state to its file
func (s *State) Save() error {
	if s.path == "" {
		s.path = DefaultStatePath()
	}

	s.UpdatedAt = time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = s.UpdatedAt
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Path returns the file backing this state
func (s *State) Path() string {
	return s.path
}

func createDefaultState(path string) *State {
	now := time.Now()
	return &State{
		Layouts:   make(map[string]LayoutState),
		CreatedAt: now,
		UpdatedAt: now,
		path:      path,
	}
}

// DefaultStatePath returns the state file next to the default config file
func DefaultStatePath() string {
	return filepath.Join(filepath.Dir(GetDefaultConfigPath()), "state.json")
}
