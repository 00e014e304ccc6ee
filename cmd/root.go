package cmd

import (
	"fmt"

	"github.com/cwarden/timeline/internal/config"
	"github.com/cwarden/timeline/internal/logging"
	"github.com/cwarden/timeline/internal/parser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	start       int
	end         int
	pph         float64
	format24h   bool
	columns     int
	leftInset   float64
	width       float64
	date        string
	unavailable []string
	logLevel    string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Inspect the geometry of a calendar timeline view",
	Long: `Timeline computes the layout of a day timeline: hour gridlines,
quarter-hour slots, unavailable hours and the calendar time under a pointer
position. The subcommands print what a timeline widget would draw.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Config file (timelinerc or .yaml)")
	flags.IntVar(&start, "start", 0, "First hour of the day view")
	flags.IntVar(&end, "end", 24, "Last hour of the day view")
	flags.Float64Var(&pph, "pph", 60, "Pixels per hour")
	flags.BoolVar(&format24h, "24h", false, "Use 24-hour labels")
	flags.IntVar(&columns, "columns", 1, "Number of day columns")
	flags.Float64Var(&leftInset, "inset", 0, "Left inset in pixels before the first column")
	flags.Float64Var(&width, "width", 0, "View width in pixels, inset included")
	flags.StringVar(&date, "date", "", "Date of the first column (e.g. today, 2024-03-15)")
	flags.StringSliceVarP(&unavailable, "unavailable", "u", nil, "Unavailable hours, e.g. 0-8 (can be specified multiple times)")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// setup loads the config, applies flag overrides and validates the result.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("config loaded",
		zap.String("path", cfg.Path),
		zap.Int("start", cfg.Layout.Start),
		zap.Int("end", cfg.Layout.End),
		zap.Float64("pixels_per_hour", cfg.Layout.PixelsPerHour))

	return nil
}

// flagOverride reapplies the command line to configs reloaded later.
func flagOverride(cmd *cobra.Command) config.Override {
	return func(c *config.Config) error {
		return applyFlags(cmd, c)
	}
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("start") {
		c.Layout.Start = start
	}
	if flags.Changed("end") {
		c.Layout.End = end
	}
	if flags.Changed("pph") {
		c.Layout.PixelsPerHour = pph
	}
	if flags.Changed("24h") {
		c.Layout.Format24h = format24h
	}
	if flags.Changed("columns") {
		c.Layout.Columns = columns
	}
	if flags.Changed("inset") {
		c.Layout.LeftInset = leftInset
	}
	if flags.Changed("width") {
		c.Layout.Width = width
	}
	if flags.Changed("date") {
		c.Date = date
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}

	if flags.Changed("unavailable") {
		p := parser.NewTimeParser()
		c.Unavailable = nil
		for _, raw := range unavailable {
			interval, err := p.ParseInterval(raw)
			if err != nil {
				return err
			}
			c.Unavailable = append(c.Unavailable, interval)
		}
	}

	return nil
}
