package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HaiFongPan/colsplit/internal/columns"
	"github.com/HaiFongPan/colsplit/internal/resize"
)

var normalizeCells int

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Print each column's share of the total",
	Long: `Print every column's label, width, percentage of the total and, with --cells,
the number of terminal cells it would be drawn with.

Examples:
  colsplit normalize --widths 1,2,1
  colsplit normalize --layout layout.yaml --cells 120`,
	Args: cobra.NoArgs,
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().IntVar(&normalizeCells, "cells", 0, "also lay the columns out across this many cells")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	layout, err := buildLayout(GetConfig())
	if err != nil {
		return err
	}

	pct, err := resize.Normalize(layout.Widths)
	if err != nil {
		return fmt.Errorf("normalize failed: %w", err)
	}

	var geo columns.Layout
	if normalizeCells > 0 {
		geo = columns.Compute(layout.Widths, normalizeCells, columns.GapCells(layout.Gap))
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	header := "COLUMN\tWIDTH\tSHARE"
	if normalizeCells > 0 {
		header += "\tCELLS"
	}
	fmt.Fprintln(w, header)

	for i, label := range layout.Labels {
		line := fmt.Sprintf("%s\t%g\t%.2f%%", label, layout.Widths[i], pct[i])
		if normalizeCells > 0 {
			line += fmt.Sprintf("\t%d", geo.Cells[i])
		}
		fmt.Fprintln(w, line)
	}

	return w.Flush()
}
