package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cwarden/timeline/internal/geometry"
	"github.com/cwarden/timeline/internal/parser"
)

var (
	setRe         = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe        = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe       = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
	unavailableRe = regexp.MustCompile(`^unavailable\s+(.+)$`)
)

type Config struct {
	// Layout settings
	Layout geometry.Layout

	// Date is the base date expression for the first column, e.g. "today"
	// or "2024-03-15".
	Date        string
	Unavailable []geometry.UnavailableInterval

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string

	// Logging
	LogLevel    string
	Environment string

	// Path is the file the config was loaded from, empty for defaults.
	Path string
}

func DefaultConfig() *Config {
	return &Config{
		Layout: geometry.DefaultLayout(),
		Date:   "today",

		Colors: map[string]string{
			"hour_line":   "240",
			"quarter":     "236",
			"label":       "bold",
			"unavailable": "238",
			"event":       "117",
			"selected":    "reverse",
		},

		KeyBindings: map[string]string{
			"q":      "quit",
			"ctrl+c": "quit",
			"f":      "toggle_format",
			"r":      "reload",
			"esc":    "clear",
		},

		LogLevel:    "info",
		Environment: "development",
	}
}

// ConfigPaths lists the locations LoadConfig tries, in order.
func ConfigPaths() []string {
	home, _ := os.UserHomeDir()
	paths := []string{os.Getenv("TIMELINE_CONFIG")}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "timeline", "timelinerc"))
	}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", "timeline", "timelinerc"),
			filepath.Join(home, ".config", "timeline", "timeline.yaml"),
			filepath.Join(home, ".timelinerc"),
		)
	}
	return paths
}

// LoadConfig returns the defaults overlaid with the first config file found.
func LoadConfig() (*Config, error) {
	for _, path := range ConfigPaths() {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	config := DefaultConfig()
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFile reads a single config file. YAML files go through viper, all
// other files are read as timelinerc. TIMELINE_* variables override both.
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = config.loadFromYAML(path)
	default:
		err = config.loadFromFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	config.Path = path
	return config, nil
}

// Override adjusts a freshly loaded config before it is validated.
type Override func(*Config) error

// Reload reads path again, applies override and validates the result.
func Reload(path string, override Override) (*Config, error) {
	config, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if override != nil {
		if err := override(config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		if err := c.parseLine(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	line = strings.TrimSpace(line)

	// Skip comments and empty lines
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[1]] = matches[2]
		return nil
	}

	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}

	if matches := unavailableRe.FindStringSubmatch(line); matches != nil {
		return c.addUnavailable(matches[1])
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) addUnavailable(raw string) error {
	p := parser.NewTimeParser()
	for _, part := range strings.Split(raw, ",") {
		interval, err := p.ParseInterval(part)
		if err != nil {
			return err
		}
		c.Unavailable = append(c.Unavailable, interval)
	}
	return nil
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "start", "day_start":
		hour, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", name, value)
		}
		c.Layout.Start = hour

	case "end", "day_end":
		hour, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", name, value)
		}
		c.Layout.End = hour

	case "pixels_per_hour":
		pph, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid pixels_per_hour: %s", value)
		}
		c.Layout.PixelsPerHour = pph

	case "format_24h", "format24h":
		c.Layout.Format24h = parseBool(value)

	case "left_inset":
		inset, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid left_inset: %s", value)
		}
		c.Layout.LeftInset = inset

	case "columns", "number_of_days":
		columns, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s: %s", name, value)
		}
		c.Layout.Columns = columns

	case "width":
		width, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid width: %s", value)
		}
		c.Layout.Width = width

	case "date":
		c.Date = value

	case "unavailable":
		return c.addUnavailable(value)

	case "log_level":
		c.LogLevel = strings.ToLower(value)

	case "environment":
		c.Environment = strings.ToLower(value)

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// Validate rejects configurations the geometry layer is not defined for.
func (c *Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	for _, interval := range c.Unavailable {
		if interval.Start < 0 || interval.End < 0 {
			return fmt.Errorf("invalid unavailable hours %d-%d", interval.Start, interval.End)
		}
	}
	return nil
}

// BaseDate resolves Date relative to now.
func (c *Config) BaseDate(now time.Time) (geometry.CalendarDate, error) {
	p := parser.NewTimeParser()
	p.SetNow(now)
	return p.ParseDate(c.Date)
}

func parseBool(value string) bool {
	return strings.ToLower(value) == "true" || value == "1"
}
