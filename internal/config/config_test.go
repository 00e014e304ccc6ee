package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwarden/timeline/internal/geometry"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layout != geometry.DefaultLayout() {
		t.Errorf("Wrong default layout: %+v", cfg.Layout)
	}

	if cfg.Date != "today" {
		t.Errorf("Wrong default date: %s", cfg.Date)
	}

	if len(cfg.Unavailable) != 0 {
		t.Errorf("Default config should have no unavailable hours, got %v", cfg.Unavailable)
	}

	if cfg.KeyBindings["q"] != "quit" {
		t.Errorf("Wrong quit key binding: %s", cfg.KeyBindings["q"])
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestParseLine(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		line     string
		check    func(*Config) bool
		expected bool
		hasError bool
	}{
		{
			line: "set start 9",
			check: func(c *Config) bool {
				return c.Layout.Start == 9
			},
			expected: true,
		},
		{
			line: "set pixels_per_hour 50",
			check: func(c *Config) bool {
				return c.Layout.PixelsPerHour == 50
			},
			expected: true,
		},
		{
			line: "set format_24h true",
			check: func(c *Config) bool {
				return c.Layout.Format24h
			},
			expected: true,
		},
		{
			line: "unavailable 0-8, 20-24",
			check: func(c *Config) bool {
				return len(c.Unavailable) == 2 && c.Unavailable[1] == geometry.UnavailableInterval{Start: 20, End: 24}
			},
			expected: true,
		},
		{
			line: "bind j next_day",
			check: func(c *Config) bool {
				return c.KeyBindings["j"] == "next_day"
			},
			expected: true,
		},
		{
			line: "color unavailable 235",
			check: func(c *Config) bool {
				return c.Colors["unavailable"] == "235"
			},
			expected: true,
		},
		{
			line:     "unavailable lunch",
			hasError: true,
		},
		{
			line:     "invalid command",
			hasError: true,
		},
		{
			line:     "# comment line",
			hasError: false,
		},
		{
			line:     "",
			hasError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			err := cfg.parseLine(tt.line)

			if tt.hasError && err == nil {
				t.Error("Expected error but got none")
			}

			if !tt.hasError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}

			if tt.check != nil {
				result := tt.check(cfg)
				if result != tt.expected {
					t.Errorf("Check failed for line: %s", tt.line)
				}
			}
		})
	}
}

func TestSetVariable(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		value    string
		check    func(*Config) bool
		hasError bool
	}{
		{
			name:  "end",
			value: "17",
			check: func(c *Config) bool {
				return c.Layout.End == 17
			},
		},
		{
			name:     "end",
			value:    "five",
			hasError: true,
		},
		{
			name:  "left_inset",
			value: "50",
			check: func(c *Config) bool {
				return c.Layout.LeftInset == 50
			},
		},
		{
			name:  "number_of_days",
			value: "7",
			check: func(c *Config) bool {
				return c.Layout.Columns == 7
			},
		},
		{
			name:  "width",
			value: "400",
			check: func(c *Config) bool {
				return c.Layout.Width == 400
			},
		},
		{
			name:  "date",
			value: `"2024-03-15"`,
			check: func(c *Config) bool {
				return c.Date == "2024-03-15"
			},
		},
		{
			name:  "log_level",
			value: "DEBUG",
			check: func(c *Config) bool {
				return c.LogLevel == "debug"
			},
		},
		{
			name:     "pixels_per_hour",
			value:    "lots",
			hasError: true,
		},
		{
			name:     "unknown_variable",
			value:    "something",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.setVariable(tt.name, tt.value)

			if tt.hasError && err == nil {
				t.Error("Expected error but got none")
			}

			if !tt.hasError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Check failed for %s = %s", tt.name, tt.value)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "timelinerc")

	content := `# Work week view
set start 8
set end 18
set pixels_per_hour 50
set format_24h true
set left_inset 50
set columns 5
set width 550
set date 2024-03-11

unavailable 12-13
unavailable 17-20

bind x quit
color hour_line 250
`

	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := LoadFile(configFile)
	if err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	want := geometry.Layout{Start: 8, End: 18, PixelsPerHour: 50, Format24h: true, LeftInset: 50, Columns: 5, Width: 550}
	if cfg.Layout != want {
		t.Errorf("Wrong layout: got %+v, want %+v", cfg.Layout, want)
	}

	if len(cfg.Unavailable) != 2 {
		t.Errorf("Wrong number of unavailable intervals: %d", len(cfg.Unavailable))
	}

	if cfg.KeyBindings["x"] != "quit" {
		t.Errorf("Wrong quit binding: %s", cfg.KeyBindings["x"])
	}

	if cfg.Colors["hour_line"] != "250" {
		t.Errorf("Wrong hour_line color: %s", cfg.Colors["hour_line"])
	}

	if cfg.Path != configFile {
		t.Errorf("Wrong path: %s", cfg.Path)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Loaded config should validate: %v", err)
	}

	date, err := cfg.BaseDate(time.Now())
	if err != nil || date.String() != "2024-03-11" {
		t.Errorf("Wrong base date: %v (%v)", date, err)
	}
}

func TestLoadFromFileReportsLine(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "timelinerc")
	if err := os.WriteFile(configFile, []byte("set start 9\nset bogus 1\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFile(configFile)
	if err == nil {
		t.Fatal("Expected error but got none")
	}
	if got := err.Error(); !strings.Contains(got, "line 2") {
		t.Errorf("Error should name the line, got %q", got)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "timelinerc")
	if err := os.WriteFile(configFile, []byte("set start 6\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	t.Setenv("TIMELINE_CONFIG", configFile)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Layout.Start != 6 {
		t.Errorf("Expected start 6 from %s, got %d", configFile, cfg.Layout.Start)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"start after end", func(c *Config) { c.Layout.Start, c.Layout.End = 18, 9 }},
		{"end past midnight", func(c *Config) { c.Layout.End = 25 }},
		{"no scale", func(c *Config) { c.Layout.PixelsPerHour = 0 }},
		{"negative interval", func(c *Config) {
			c.Unavailable = []geometry.UnavailableInterval{{Start: -2, End: 4}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error but got none")
			}
		})
	}
}

func TestReloadAppliesOverrideBeforeValidate(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "timelinerc")
	if err := os.WriteFile(configFile, []byte("set start 20\nset end 10\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	// The file range alone is invalid; the override repairs it.
	cfg, err := Reload(configFile, func(c *Config) error {
		c.Layout.Start = 8
		c.Layout.End = 18
		return nil
	})
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if cfg.Layout.Start != 8 || cfg.Layout.End != 18 {
		t.Errorf("Wrong range after override: %d-%d", cfg.Layout.Start, cfg.Layout.End)
	}

	if _, err := Reload(configFile, nil); err == nil {
		t.Error("Expected validation error without override")
	}
}

func TestEnvOverridesTimelinerc(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "timelinerc")
	content := "set start 6\nset pixels_per_hour 30\nunavailable 0-6\n"
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	t.Setenv("TIMELINE_PIXELS_PER_HOUR", "42")
	t.Setenv("TIMELINE_FORMAT_24H", "true")
	t.Setenv("TIMELINE_UNAVAILABLE", "12-13,18-24")

	cfg, err := LoadFile(configFile)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Layout.Start != 6 {
		t.Errorf("File value should stay when no variable is set, got start %d", cfg.Layout.Start)
	}
	if cfg.Layout.PixelsPerHour != 42 {
		t.Errorf("Expected pixels_per_hour 42 from environment, got %v", cfg.Layout.PixelsPerHour)
	}
	if !cfg.Layout.Format24h {
		t.Error("Expected format_24h from environment")
	}
	want := []geometry.UnavailableInterval{{Start: 12, End: 13}, {Start: 18, End: 24}}
	if len(cfg.Unavailable) != len(want) || cfg.Unavailable[0] != want[0] || cfg.Unavailable[1] != want[1] {
		t.Errorf("Environment should replace unavailable hours, got %v", cfg.Unavailable)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("TIMELINE_CONFIG", "")
	t.Setenv("TIMELINE_END", "20")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Expected no config file, got %s", cfg.Path)
	}
	if cfg.Layout.End != 20 {
		t.Errorf("Expected end 20 from environment, got %d", cfg.Layout.End)
	}
}

func TestEnvBadValue(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "timelinerc")
	if err := os.WriteFile(configFile, []byte("set start 6\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	t.Setenv("TIMELINE_START", "early")

	_, err := LoadFile(configFile)
	if err == nil || !strings.Contains(err.Error(), "TIMELINE_START") {
		t.Errorf("Expected error naming TIMELINE_START, got %v", err)
	}
}
