package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HaiFongPan/colsplit/internal/host"
	"github.com/HaiFongPan/colsplit/internal/resize"
)

var (
	resizeBoundary int
	resizeDelta    float64
	resizeMins     []float64
)

// resizeCmd represents the resize command
var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Move one divider and print the resulting widths",
	Long: `Move the divider between column <boundary> and <boundary>+1 by delta, in the
same units as the widths, and print the resize event as JSON.

Minimums come from --min-ratios (share of the total, default 0.06) unless
--mins gives the two absolute minimums directly.

Examples:
  colsplit resize --widths 50,50 --boundary 0 --delta 20     # {"sizes":[70,30],...}
  colsplit resize --widths 50,50 --boundary 0 --delta 50     # clamps to [94,6]
  colsplit resize --widths 1,2,1 --boundary 1 --delta -0.5 --min-ratios 0.2`,
	Args: cobra.NoArgs,
	RunE: runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)

	resizeCmd.Flags().IntVarP(&resizeBoundary, "boundary", "b", 0, "divider index, between column b and b+1")
	resizeCmd.Flags().Float64VarP(&resizeDelta, "delta", "d", 0, "amount moved from the right column to the left one")
	resizeCmd.Flags().Float64SliceVar(&resizeMins, "mins", nil, "absolute minimums for the left and right column")
}

func runResize(cmd *cobra.Command, args []string) error {
	layout, err := buildLayout(GetConfig())
	if err != nil {
		return err
	}
	widths := resize.SegmentSet(layout.Widths)

	var mins []float64
	if len(resizeMins) > 0 {
		if len(resizeMins) != 2 {
			return fmt.Errorf("--mins takes exactly two values, got %d", len(resizeMins))
		}
		mins = make([]float64, len(widths))
		if resizeBoundary >= 0 && resizeBoundary+1 < len(widths) {
			mins[resizeBoundary] = resizeMins[0]
			mins[resizeBoundary+1] = resizeMins[1]
		}
	} else {
		mins, err = resize.Minimums(widths, layout.MinRatios)
		if err != nil {
			return fmt.Errorf("invalid minimums: %w", err)
		}
	}

	out, step, err := resize.Apply(widths, resizeBoundary, resizeDelta, mins)
	if err != nil {
		return fmt.Errorf("resize failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"boundary":      step.Boundary,
		"delta":         step.Delta,
		"left_clamped":  step.LeftClamped,
		"right_clamped": step.RightClamped,
	}).Debug("Resize applied")

	if step.Drifted {
		cmd.PrintErrf("warning: minimums of columns %d and %d exceed their combined width; total changed\n",
			step.Boundary, step.Boundary+1)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(host.NewResizeEvent(out))
}
