package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/HaiFongPan/colsplit/internal/columns"
	"github.com/HaiFongPan/colsplit/internal/config"
)

var (
	layoutFile      string
	layoutWidths    []float64
	layoutLabels    []string
	layoutMinRatios []float64
	layoutGap       string
	layoutBorder    bool
)

// addLayoutFlags registers the flags describing the host layout
func addLayoutFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&layoutFile, "layout", "f", "", "layout file (YAML list of widths or mapping)")
	fs.Float64SliceVar(&layoutWidths, "widths", nil, "column widths, e.g. 1,2,1 (default 1,1)")
	fs.StringSliceVar(&layoutLabels, "labels", nil, "column labels (default \"Col i\")")
	fs.Float64SliceVar(&layoutMinRatios, "min-ratios", nil, "minimum share of the total, one value or one per column")
	fs.StringVar(&layoutGap, "gap", "", "gap between columns: small, medium, large (overrides config)")
	fs.BoolVar(&layoutBorder, "border", false, "outline each column area")
}

// layoutDefaults derives layout defaults from the application config and flags
func layoutDefaults(cfg *config.Config) columns.Defaults {
	d := columns.Defaults{
		MinRatio: cfg.Resize.DefaultMinRatio,
		Gap:      cfg.UI.Gap,
		Border:   cfg.UI.Border || layoutBorder,
	}
	if layoutGap != "" {
		d.Gap = layoutGap
	}
	return d
}

// buildLayout reads the layout from --layout or from the inline flags
func buildLayout(cfg *config.Config) (*columns.Config, error) {
	defaults := layoutDefaults(cfg)

	if layoutFile != "" {
		if len(layoutWidths) > 0 || len(layoutLabels) > 0 || len(layoutMinRatios) > 0 {
			return nil, fmt.Errorf("--layout cannot be combined with --widths, --labels or --min-ratios")
		}
		layout, err := columns.LoadFileWith(layoutFile, defaults)
		if err != nil {
			return nil, fmt.Errorf("failed to load layout: %w", err)
		}
		return layout, nil
	}

	layout := &columns.Config{
		Widths:    layoutWidths,
		Labels:    layoutLabels,
		MinRatios: layoutMinRatios,
	}
	if err := layout.NormalizeWith(defaults); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return layout, nil
}
