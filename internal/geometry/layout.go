package geometry

import (
	"errors"
	"fmt"
)

// Layout is the configuration of one timeline view. All geometry derived
// from it is recomputed whenever a field changes.
type Layout struct {
	Start         int
	End           int
	PixelsPerHour float64
	Format24h     bool
	LeftInset     float64
	Columns       int
	// Width is the full view width including LeftInset. It is only needed
	// when Columns > 1.
	Width float64
}

// DefaultLayout returns a full-day, single column layout at 60px per hour.
func DefaultLayout() Layout {
	return Layout{
		Start:         0,
		End:           HoursPerDay,
		PixelsPerHour: 60,
		Columns:       1,
	}
}

// Validate rejects layouts the geometry functions are not defined for.
func (l Layout) Validate() error {
	if err := ValidateRange(l.Start, l.End); err != nil {
		return err
	}
	if l.PixelsPerHour <= 0 {
		return fmt.Errorf("pixels per hour must be positive, got %v", l.PixelsPerHour)
	}
	if l.Columns < 1 {
		return fmt.Errorf("number of columns must be at least 1, got %d", l.Columns)
	}
	if l.LeftInset < 0 {
		return errors.New("left inset must not be negative")
	}
	if l.Columns > 1 && l.Width <= l.LeftInset {
		return fmt.Errorf("width %v leaves no room for %d columns after inset %v", l.Width, l.Columns, l.LeftInset)
	}
	return nil
}

// Grid builds the hour grid for the layout.
func (l Layout) Grid() HourGrid {
	return BuildHourGrid(l.Start, l.End, l.PixelsPerHour, l.Format24h)
}

// Height is the pixel height of the visible day.
func (l Layout) Height() float64 {
	return l.PixelsPerHour * float64(l.End-l.Start)
}

// Unavailable builds the suppressed rectangles for intervals.
func (l Layout) Unavailable(intervals []UnavailableInterval) []UnavailableBlock {
	return BuildUnavailableBlocks(intervals, l.Start, l.End, l.PixelsPerHour)
}

// TimeAt converts an offset from the top of the visible grid into a time,
// clamped to the layout's [Start, End] hours.
func (l Layout) TimeAt(y float64) TimeOfDay {
	t := TimeFromVerticalPosition(y+float64(l.Start)*l.PixelsPerHour, l.PixelsPerHour)
	if t.Hour < l.Start {
		return TimeOfDay{Hour: l.Start}
	}
	if t.InMinutes() > l.End*60 {
		return TimeOfDay{Hour: l.End}
	}
	return t
}

// DateAt returns the date of the column under x.
func (l Layout) DateAt(x float64, base CalendarDate) CalendarDate {
	return DateFromHorizontalPosition(x, l.Width, l.LeftInset, l.Columns, base)
}

// OffsetOf is the inverse of TimeAt for times inside the layout.
func (l Layout) OffsetOf(t TimeOfDay) float64 {
	return l.PixelsPerHour * (float64(t.InMinutes())/60 - float64(l.Start))
}
