package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TIMELINE_PIXELS_PER_HOUR.
const EnvPrefix = "TIMELINE"

// fileConfig mirrors the YAML schema.
type fileConfig struct {
	Start         int               `mapstructure:"start"`
	End           int               `mapstructure:"end"`
	PixelsPerHour float64           `mapstructure:"pixels_per_hour"`
	Format24h     bool              `mapstructure:"format_24h"`
	LeftInset     float64           `mapstructure:"left_inset"`
	Columns       int               `mapstructure:"columns"`
	Width         float64           `mapstructure:"width"`
	Date          string            `mapstructure:"date"`
	Unavailable   []string          `mapstructure:"unavailable"`
	Colors        map[string]string `mapstructure:"colors"`
	KeyBindings   map[string]string `mapstructure:"bindings"`
	LogLevel      string            `mapstructure:"log_level"`
	Environment   string            `mapstructure:"environment"`
}

func (c *Config) loadFromYAML(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Keys the file leaves out keep their defaults.
	v.SetDefault("start", c.Layout.Start)
	v.SetDefault("end", c.Layout.End)
	v.SetDefault("pixels_per_hour", c.Layout.PixelsPerHour)
	v.SetDefault("format_24h", c.Layout.Format24h)
	v.SetDefault("left_inset", c.Layout.LeftInset)
	v.SetDefault("columns", c.Layout.Columns)
	v.SetDefault("width", c.Layout.Width)
	v.SetDefault("date", c.Date)
	v.SetDefault("unavailable", []string{})
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("environment", c.Environment)

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fmt.Errorf("decoding yaml: %w", err)
	}

	c.Layout.Start = fc.Start
	c.Layout.End = fc.End
	c.Layout.PixelsPerHour = fc.PixelsPerHour
	c.Layout.Format24h = fc.Format24h
	c.Layout.LeftInset = fc.LeftInset
	c.Layout.Columns = fc.Columns
	c.Layout.Width = fc.Width
	c.Date = fc.Date
	c.LogLevel = strings.ToLower(fc.LogLevel)
	c.Environment = strings.ToLower(fc.Environment)

	for name, raw := range fc.Colors {
		c.Colors[name] = raw
	}
	for key, action := range fc.KeyBindings {
		c.KeyBindings[key] = action
	}
	for _, raw := range fc.Unavailable {
		if err := c.addUnavailable(raw); err != nil {
			return err
		}
	}

	return nil
}

// envKeys are the settings TIMELINE_* variables can override.
var envKeys = []string{
	"start", "end", "pixels_per_hour", "format_24h", "left_inset",
	"columns", "width", "date", "unavailable", "log_level", "environment",
}

// applyEnv overrides settings from TIMELINE_* variables, whatever file
// format the config came from. TIMELINE_UNAVAILABLE replaces the intervals.
func (c *Config) applyEnv() error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return err
		}
		if !v.IsSet(key) {
			continue
		}

		if key == "unavailable" {
			c.Unavailable = nil
		}
		if err := c.setVariable(key, v.GetString(key)); err != nil {
			return fmt.Errorf("%s_%s: %w", EnvPrefix, strings.ToUpper(key), err)
		}
	}

	return nil
}
