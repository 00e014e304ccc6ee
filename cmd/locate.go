package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	locateX float64
	locateY float64
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Resolve a pointer position into a calendar time",
	Long: `Resolve a pointer position into the time and date under it, the way a
long press on the timeline background does. y is measured from the top of the
visible grid and x from the left edge of the view.`,
	Example: `  timeline locate --start 8 --end 18 --y 95
  timeline locate --columns 7 --width 400 --inset 50 --x 260 --y 600`,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().Float64Var(&locateX, "x", 0, "Horizontal position in pixels")
	locateCmd.Flags().Float64Var(&locateY, "y", 0, "Vertical position in pixels")
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	base, err := cfg.BaseDate(time.Now())
	if err != nil {
		return err
	}

	press := cfg.Layout.Press(locateX, locateY, base)
	fmt.Fprintln(cmd.OutOrStdout(), press.Label)
	return nil
}
