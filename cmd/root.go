package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/colsplit/internal/columns"
	"github.com/HaiFongPan/colsplit/internal/config"
	"github.com/HaiFongPan/colsplit/internal/host"
	"github.com/HaiFongPan/colsplit/internal/tui"
)

var (
	cfgFile      string
	verbose      bool
	quiet        bool
	globalConfig *config.Config

	stateKey   string
	variant    string
	watchInput bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colsplit",
	Short: "Drag dividers to redistribute proportional column widths",
	Long: `colsplit renders resize handles over a row of proportional columns.
Dragging a divider moves width between the two columns next to it, never letting
either fall below its minimum share. When a drag ends the new widths are written
to stdout as one JSON message per line; the widget itself draws on stderr.

Example usage:
  colsplit --widths 1,2,1 --labels Nav,Main,Aside
  colsplit --layout layout.yaml --watch --key editor
  colsplit resize --widths 50,50 --boundary 0 --delta 20
  colsplit normalize --widths 1,2,1`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.colsplit/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode")
	addLayoutFlags(rootCmd.PersistentFlags())

	rootCmd.Flags().StringVarP(&stateKey, "key", "k", "", "identifies this widget so its widths persist between runs")
	rootCmd.Flags().StringVar(&variant, "variant", "", "presentation: overlay, controlbar or plain (overrides config)")
	rootCmd.Flags().BoolVarP(&watchInput, "watch", "w", false, "reload the layout file when it changes")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	globalConfig, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	setupLogging()

	return nil
}

// setupLogging configures the global logger based on config and flags
func setupLogging() {
	level := globalConfig.Log.Level
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %s, using info", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Redirect all logs to file so neither the widget nor the host channel is disturbed
	logDir := globalConfig.Log.Dir
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logrus.Warnf("Failed to create log directory %s: %v", logDir, err)
	} else {
		logFile := filepath.Join(logDir, "app.log")
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("Failed to open log file %s: %v", logFile, err)
		} else {
			logrus.SetOutput(file)
		}
	}

	if globalConfig.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: quiet,
			FullTimestamp:    verbose,
		})
	}
}

// GetConfig returns the global configuration
func GetConfig() *config.Config {
	return globalConfig
}

// runInteractive launches the widget and streams host messages to stdout
func runInteractive(cmd *cobra.Command) error {
	cfg := GetConfig()

	layout, err := buildLayout(cfg)
	if err != nil {
		return err
	}

	effectiveVariant := cfg.UI.Variant
	if variant != "" {
		if !config.IsValidVariant(variant) {
			return fmt.Errorf("invalid variant: %s (valid: overlay, controlbar, plain)", variant)
		}
		effectiveVariant = variant
	}

	opts := tui.Options{
		Variant:     effectiveVariant,
		HandleGrab:  cfg.UI.HandleGrab,
		NudgeStep:   cfg.UI.NudgeStep,
		FrameHeight: cfg.UI.FrameHeight,
		Emitter:     host.NewJSONEmitter(cmd.OutOrStdout()),
		StateKey:    stateKey,
	}
	if cfg.State.Persist && stateKey != "" {
		opts.State = config.LoadState(cfg.State.Path)
	}

	logrus.Debugf("Starting widget: variant=%s widths=%v key=%q", effectiveVariant, layout.Widths, stateKey)

	model, err := tui.NewColumnsModel(layout, opts)
	if err != nil {
		return err
	}

	// stdout carries the host channel, so the widget draws on stderr
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	model.SetProgram(program)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watchInput {
		if layoutFile == "" {
			return fmt.Errorf("--watch requires --layout")
		}
		watcher := host.NewWatcher(layoutFile, 0,
			func(c *columns.Config) { model.Send(tui.LayoutReloadedMsg{Config: c}) },
			func(err error) { model.Send(tui.LayoutErrorMsg{Err: err}) },
		)
		watcher.Defaults = layoutDefaults(cfg)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logrus.Errorf("Layout watcher stopped: %v", err)
			}
		}()
	}

	_, err = program.Run()
	return err
}
