package cmd

import (
	"fmt"

	"github.com/cwarden/timeline/internal/config"
	"github.com/cwarden/timeline/internal/logging"
	"github.com/cwarden/timeline/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

var probeLogFile string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Click on a live preview to see the calendar time under the pointer",
	Long: `Draw the day view in the terminal, one row per quarter hour, and resolve
mouse presses into calendar times. The config file is reloaded when it changes.`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&probeLogFile, "log-file", "", "Write logs to this file while the probe owns the terminal")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	probeLogger := zap.NewNop()
	if probeLogFile != "" {
		var err error
		probeLogger, err = logging.NewWithOutput(cfg.Environment, cfg.LogLevel, probeLogFile)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer probeLogger.Sync()
	}

	override := flagOverride(cmd)

	var reloads chan *config.Config
	var watcher *config.Watcher
	if cfg.Path != "" {
		reloads = make(chan *config.Config, 1)
		var err error
		watcher, err = config.NewWatcher(cfg.Path, probeLogger, override, func(c *config.Config) {
			// Drop a pending reload in favour of the newest one.
			select {
			case <-reloads:
			default:
			}
			reloads <- c
		})
		if err != nil {
			probeLogger.Warn("config watching disabled", zap.Error(err))
		}
	}

	model := ui.NewProbeModel(cfg, override, reloads, probeLogger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err := p.Run()

	if watcher != nil {
		watcher.Close()
	}
	if reloads != nil {
		close(reloads)
	}

	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	for _, event := range model.Events() {
		fmt.Fprintln(cmd.OutOrStdout(), event.Label)
	}
	return nil
}
