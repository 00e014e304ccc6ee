package cmd

import (
	"fmt"

	"github.com/cwarden/timeline/internal/events"
	"github.com/cwarden/timeline/internal/geometry"
	"github.com/cwarden/timeline/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var eventsCmd = &cobra.Command{
	Use:   "events <file.json>",
	Short: "Show which text fits in each packed event block",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	packed, err := events.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading events: %w", err)
	}

	styles := ui.NewStyles(cfg.Colors)
	out := cmd.OutOrStdout()

	if len(packed) == 0 {
		fmt.Fprintln(out, "No events found.")
		return nil
	}

	for _, ev := range packed {
		text, err := geometry.EventText(ev, cfg.Layout.Format24h)
		if err != nil {
			logger.Warn("event times not shown", zap.Int("index", ev.Index), zap.Error(err))
		}

		boxWidth := int(ev.Width / 8) // roughly 8px per terminal cell
		if boxWidth < 20 {
			boxWidth = 20
		}
		fmt.Fprintf(out, "#%d top=%v height=%v lines=%d\n", ev.Index, ev.Top, ev.Height, geometry.LineBudget(ev.Height))
		fmt.Fprintln(out, ui.RenderEventText(text, boxWidth, styles))
	}

	return nil
}
