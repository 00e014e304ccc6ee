package geometry

import (
	"fmt"
	"math"
)

const (
	// HoursPerDay is the last valid hour value; {24, 0} marks the end of the day.
	HoursPerDay = 24
	// MinutesPerQuarter is the size of one fine gridline slot.
	MinutesPerQuarter = 15
)

// TimeOfDay is an hour and minute within a day grid.
type TimeOfDay struct {
	Hour    int
	Minutes int
}

// Valid reports whether t lies within [00:00, 24:00].
func (t TimeOfDay) Valid() bool {
	if t.Hour < 0 || t.Hour > HoursPerDay || t.Minutes < 0 || t.Minutes > 59 {
		return false
	}
	return t.Hour < HoursPerDay || t.Minutes == 0
}

// InMinutes returns the minutes elapsed since midnight.
func (t TimeOfDay) InMinutes() int {
	return t.Hour*60 + t.Minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minutes)
}

// TimeFromVerticalPosition converts a vertical offset from midnight into a
// time of day. Minutes snap to the nearest quarter within the hour, so the
// hour is always floor(y / pixelsPerHour). Offsets outside the day clamp to
// 00:00 and 24:00.
func TimeFromVerticalPosition(y, pixelsPerHour float64) TimeOfDay {
	if pixelsPerHour <= 0 || y <= 0 {
		return TimeOfDay{}
	}
	if y >= pixelsPerHour*HoursPerDay {
		return TimeOfDay{Hour: HoursPerDay}
	}

	hour := int(math.Floor(y / pixelsPerHour))
	if hour >= HoursPerDay {
		// float rounding just below the day's end
		return TimeOfDay{Hour: HoursPerDay}
	}

	fraction := math.Mod(y, pixelsPerHour) / pixelsPerHour
	minutes := int(math.Floor(fraction * 60))

	return TimeOfDay{Hour: hour, Minutes: snapToQuarter(minutes)}
}

// snapToQuarter rounds minutes in [0,59] to the nearest of 0, 15, 30, 45.
func snapToQuarter(minutes int) int {
	quarter := (minutes + MinutesPerQuarter/2) / MinutesPerQuarter
	if quarter > 3 {
		quarter = 3
	}
	return quarter * MinutesPerQuarter
}

// FormatTimeLabel produces the canonical "YYYY-MM-DD HH:MM:00" timestamp
// handed to press callbacks. A zero date omits the date part.
func FormatTimeLabel(t TimeOfDay, d CalendarDate) string {
	clock := fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minutes)
	if d.IsZero() {
		return clock
	}
	return d.String() + " " + clock
}
