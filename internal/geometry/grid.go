package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned by ValidateRange for hour ranges outside 0 <= start < end <= 24.
var ErrInvalidRange = errors.New("invalid hour range")

// QuartersPerHour is the number of fine slots per hour.
const QuartersPerHour = 4

// HourBlockSpec describes one full-hour gridline and its label.
type HourBlockSpec struct {
	Hour  int
	Top   float64
	Label string
	// Quarters holds the offsets of the 1/4, 2/4 and 3/4 gridlines. It is
	// empty for the closing boundary.
	Quarters []float64
}

// HourGrid is the description of one day view's gridlines.
type HourGrid struct {
	Hours    []HourBlockSpec
	Boundary HourBlockSpec
}

// Lines returns every full-hour line including the closing boundary.
func (g HourGrid) Lines() []HourBlockSpec {
	if len(g.Hours) == 0 {
		return nil
	}
	lines := make([]HourBlockSpec, 0, len(g.Hours)+1)
	lines = append(lines, g.Hours...)
	return append(lines, g.Boundary)
}

// Height is the pixel height from the first hour line to the boundary.
func (g HourGrid) Height() float64 {
	if len(g.Hours) == 0 {
		return 0
	}
	return g.Boundary.Top - g.Hours[0].Top
}

// ValidateRange checks the day range a grid is built from.
func ValidateRange(start, end int) error {
	if start < 0 || end > HoursPerDay || start >= end {
		return fmt.Errorf("%w: start=%d end=%d", ErrInvalidRange, start, end)
	}
	return nil
}

// BuildHourGrid lays out the hour lines for [start, end]. Ranges rejected
// by ValidateRange produce an empty grid.
func BuildHourGrid(start, end int, pixelsPerHour float64, use24h bool) HourGrid {
	if ValidateRange(start, end) != nil {
		return HourGrid{}
	}

	hours := make([]HourBlockSpec, 0, end-start)
	for hour := start; hour < end; hour++ {
		top := pixelsPerHour * float64(hour-start)
		quarters := make([]float64, 0, QuartersPerHour-1)
		for q := 1; q < QuartersPerHour; q++ {
			quarters = append(quarters, top+pixelsPerHour*float64(q)/QuartersPerHour)
		}

		hours = append(hours, HourBlockSpec{
			Hour:     hour,
			Top:      top,
			Label:    HourLabel(hour, use24h),
			Quarters: quarters,
		})
	}

	return HourGrid{
		Hours: hours,
		Boundary: HourBlockSpec{
			Hour:  end,
			Top:   pixelsPerHour * float64(end-start),
			Label: HourLabel(end, use24h),
		},
	}
}

// HourLabel formats the label shown beside an hour line.
func HourLabel(hour int, use24h bool) string {
	if use24h {
		if hour >= HoursPerDay {
			return "23:59"
		}
		return fmt.Sprintf("%d:00", hour)
	}

	h := hour % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if hour%HoursPerDay >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d %s", h, suffix)
}
