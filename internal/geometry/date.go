package geometry

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO form used for CalendarDate text.
const DateLayout = "2006-01-02"

// CalendarDate is a day on the calendar, independent of time zone.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// IsZero reports whether d is the zero date.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Time returns midnight UTC of d.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays moves d by n calendar days.
func (d CalendarDate) AddDays(n int) CalendarDate {
	if n == 0 {
		return d
	}
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateFromHorizontalPosition returns the date of the day column under x.
// The area right of leftInset is split into columns of equal width, and the
// column index is clamped to [0, columns-1].
func DateFromHorizontalPosition(x, width, leftInset float64, columns int, base CalendarDate) CalendarDate {
	return base.AddDays(ColumnAt(x, width, leftInset, columns))
}

// ColumnAt returns the zero-based day column under x.
func ColumnAt(x, width, leftInset float64, columns int) int {
	if columns <= 1 {
		return 0
	}

	columnWidth := (width - leftInset) / float64(columns)
	if columnWidth <= 0 {
		return 0
	}

	index := int(math.Floor((x - leftInset) / columnWidth))
	switch {
	case index < 0:
		return 0
	case index > columns-1:
		return columns - 1
	}
	return index
}
