package config

import "time"

// Layout constants
const (
	// Width used before the first WindowSizeMsg arrives
	DefaultWindowWidth  = 80
	DefaultWindowHeight = 24

	// Horizontal margin around the handle row
	DefaultMarginSize = 1

	// How long transient status messages stay visible
	StatusTimeout = 3 * time.Second
)
