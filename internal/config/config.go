package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Resize ResizeConfig `mapstructure:"resize"`
	State  StateConfig  `mapstructure:"state"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// UIConfig holds widget presentation configuration
type UIConfig struct {
	Variant     string  `mapstructure:"variant"`
	Gap         string  `mapstructure:"gap"`
	Border      bool    `mapstructure:"border"`
	FrameHeight int     `mapstructure:"frame_height"`
	HandleGrab  int     `mapstructure:"handle_grab"`
	NudgeStep   float64 `mapstructure:"nudge_step"`
}

// ResizeConfig holds defaults for the resize constraint
type ResizeConfig struct {
	DefaultMinRatio float64 `mapstructure:"default_min_ratio"`
}

// StateConfig controls persistence of widths between runs
type StateConfig struct {
	Persist bool   `mapstructure:"persist"`
	Path    string `mapstructure:"path"`
}

// Load loads configuration from multiple sources with priority:
// 1. Command line flags (highest)
// 2. Environment variables
// 3. Configuration file
// 4. Defaults (lowest)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("COLSPLIT")
	v.AutomaticEnv()

	v.BindEnv("log.level", "COLSPLIT_LOG_LEVEL")
	v.BindEnv("log.format", "COLSPLIT_LOG_FORMAT")
	v.BindEnv("log.dir", "COLSPLIT_LOG_DIR")
	v.BindEnv("ui.variant", "COLSPLIT_UI_VARIANT")
	v.BindEnv("ui.gap", "COLSPLIT_UI_GAP")
	v.BindEnv("ui.border", "COLSPLIT_UI_BORDER")
	v.BindEnv("ui.frame_height", "COLSPLIT_UI_FRAME_HEIGHT")
	v.BindEnv("ui.handle_grab", "COLSPLIT_UI_HANDLE_GRAB")
	v.BindEnv("ui.nudge_step", "COLSPLIT_UI_NUDGE_STEP")
	v.BindEnv("resize.default_min_ratio", "COLSPLIT_MIN_RATIO")
	v.BindEnv("state.persist", "COLSPLIT_STATE_PERSIST")
	v.BindEnv("state.path", "COLSPLIT_STATE_PATH")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.colsplit")
		v.AddConfigPath("/etc/colsplit/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is not an error - we can use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// defaults always decode
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.dir", filepath.Join(os.TempDir(), "colsplit"))

	v.SetDefault("ui.variant", VariantOverlay)
	v.SetDefault("ui.gap", "small")
	v.SetDefault("ui.border", false)
	v.SetDefault("ui.frame_height", 60)
	v.SetDefault("ui.handle_grab", 1)
	v.SetDefault("ui.nudge_step", 0.01)

	v.SetDefault("resize.default_min_ratio", 0.06)

	v.SetDefault("state.persist", true)
	v.SetDefault("state.path", "")
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, ".colsplit", "config.toml")
}
