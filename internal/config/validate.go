package config

import (
	"fmt"
	"strings"
)

// Presentation variants of the widget
const (
	VariantOverlay    = "overlay"
	VariantControlBar = "controlbar"
	VariantPlain      = "plain"
)

// Validate validates the configuration and returns an error if invalid
func Validate(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	if err := validateUIConfig(&config.UI); err != nil {
		return fmt.Errorf("ui config validation failed: %w", err)
	}

	if err := validateResizeConfig(&config.Resize); err != nil {
		return fmt.Errorf("resize config validation failed: %w", err)
	}

	return nil
}

// validateLogConfig validates log configuration
func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	level := strings.ToLower(config.Level)
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, fatal, panic)", config.Level)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	format := strings.ToLower(config.Format)
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", config.Format)
	}

	return nil
}

// validateUIConfig validates widget presentation configuration
func validateUIConfig(config *UIConfig) error {
	config.Variant = strings.ToLower(strings.TrimSpace(config.Variant))
	if !IsValidVariant(config.Variant) {
		return fmt.Errorf("invalid variant: %s (valid: overlay, controlbar, plain)", config.Variant)
	}

	switch strings.ToLower(config.Gap) {
	case "small", "medium", "large":
	default:
		return fmt.Errorf("invalid gap: %s (valid: small, medium, large)", config.Gap)
	}

	if config.FrameHeight <= 0 {
		return fmt.Errorf("frame_height must be positive, got: %d", config.FrameHeight)
	}

	if config.HandleGrab < 0 {
		return fmt.Errorf("handle_grab must be non-negative, got: %d", config.HandleGrab)
	}

	if config.NudgeStep <= 0 || config.NudgeStep >= 1 {
		return fmt.Errorf("nudge_step must be in (0, 1), got: %g", config.NudgeStep)
	}

	return nil
}

// validateResizeConfig validates resize defaults
func validateResizeConfig(config *ResizeConfig) error {
	if config.DefaultMinRatio < 0 || config.DefaultMinRatio >= 0.5 {
		return fmt.Errorf("default_min_ratio must be in [0, 0.5), got: %g", config.DefaultMinRatio)
	}
	return nil
}

// IsValidVariant reports whether name is a known presentation variant
func IsValidVariant(name string) bool {
	switch name {
	case VariantOverlay, VariantControlBar, VariantPlain:
		return true
	}
	return false
}
