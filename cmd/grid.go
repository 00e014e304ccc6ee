package cmd

import (
	"fmt"

	"github.com/cwarden/timeline/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the hour grid and unavailable blocks",
	Long:  `Print every hour line with its offset and label, the quarter-hour offsets, and the rectangles of unavailable hours.`,
	RunE:  runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, args []string) error {
	styles := ui.NewStyles(cfg.Colors)

	grid := cfg.Layout.Grid()
	blocks := cfg.Layout.Unavailable(cfg.Unavailable)
	logger.Debug("grid built", zap.Int("hours", len(grid.Hours)), zap.Int("unavailable", len(blocks)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.RenderGrid(grid, styles))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderUnavailable(blocks, styles))
	return nil
}
