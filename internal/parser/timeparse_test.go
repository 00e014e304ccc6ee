package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/cwarden/timeline/internal/geometry"
)

func TestParseTimeOfDay(t *testing.T) {
	parser := NewTimeParser()

	tests := []struct {
		input        string
		expectedHour int
		expectedMin  int
	}{
		{"14:30", 14, 30},
		{"9am", 9, 0},
		{"9 AM", 9, 0},
		{"2:15pm", 14, 15},
		{"12am", 0, 0},
		{"12pm", 12, 0},
		{"noon", 12, 0},
		{"midnight", 0, 0},
		{"24:00", 24, 0},
		{"7", 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.ParseTimeOfDay(tt.input)
			if err != nil {
				t.Fatalf("ParseTimeOfDay failed: %v", err)
			}
			if got.Hour != tt.expectedHour || got.Minutes != tt.expectedMin {
				t.Errorf("Time mismatch: got %v, want %02d:%02d", got, tt.expectedHour, tt.expectedMin)
			}
		})
	}
}

func TestParseTimeOfDayErrors(t *testing.T) {
	parser := NewTimeParser()

	for _, input := range []string{"24:30", "25", "13pm", "0am", "10:75", "lunch"} {
		t.Run(input, func(t *testing.T) {
			_, err := parser.ParseTimeOfDay(input)
			if !errors.Is(err, ErrBadTime) {
				t.Errorf("Expected ErrBadTime for %q, got %v", input, err)
			}
		})
	}

	if _, err := parser.ParseTimeOfDay("  "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestParseInterval(t *testing.T) {
	parser := NewTimeParser()

	tests := []struct {
		input    string
		expected geometry.UnavailableInterval
		hasError bool
	}{
		{input: "22-26", expected: geometry.UnavailableInterval{Start: 22, End: 26}},
		{input: "0 - 8", expected: geometry.UnavailableInterval{Start: 0, End: 8}},
		{input: "9am-5pm", expected: geometry.UnavailableInterval{Start: 9, End: 17}},
		{input: "noon-13:00", expected: geometry.UnavailableInterval{Start: 12, End: 13}},
		{input: "9:30-10", hasError: true},
		{input: "evening", hasError: true},
		{input: "", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.ParseInterval(tt.input)
			if tt.hasError {
				if !errors.Is(err, ErrBadRange) {
					t.Errorf("Expected ErrBadRange for %q, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInterval failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Interval mismatch: got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	parser := NewTimeParser()
	// Friday
	parser.SetNow(time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local))

	tests := []struct {
		input    string
		expected string
	}{
		{"today", "2024-03-15"},
		{"Tomorrow", "2024-03-16"},
		{"tmrw", "2024-03-16"},
		{"yesterday", "2024-03-14"},
		{"in 3 days", "2024-03-18"},
		{"in 2 weeks", "2024-03-29"},
		{"next monday", "2024-03-18"},
		{"this sunday", "2024-03-17"},
		{"this friday", "2024-03-22"},
		{"3/25/2024", "2024-03-25"},
		{"2024-12-31", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parser.ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate failed: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("Date mismatch: got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestParseDateErrors(t *testing.T) {
	parser := NewTimeParser()

	for _, input := range []string{"2/30/2024", "someday", "2024-13-01"} {
		if _, err := parser.ParseDate(input); !errors.Is(err, ErrBadDate) {
			t.Errorf("Expected ErrBadDate for %q, got %v", input, err)
		}
	}
}
