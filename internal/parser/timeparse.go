package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cwarden/timeline/internal/geometry"
)

var (
	ErrEmptyInput = errors.New("empty input")
	ErrBadTime    = errors.New("unrecognized time of day")
	ErrBadRange   = errors.New("unrecognized hour range")
	ErrBadDate    = errors.New("unrecognized date")
)

var (
	clockRe    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
	rangeRe    = regexp.MustCompile(`^(.+?)\s*-\s*(.+)$`)
	inRe       = regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks)$`)
	weekdayRe  = regexp.MustCompile(`^(next|this)\s+(mon|monday|tue|tuesday|wed|wednesday|thu|thursday|fri|friday|sat|saturday|sun|sunday)$`)
	usDateRe   = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	namedTimes = map[string]int{
		"midnight": 0,
		"noon":     12,
	}
)

// TimeParser reads the loose time and date notation accepted on the command
// line and in rc files.
type TimeParser struct {
	now time.Time
}

func NewTimeParser() *TimeParser {
	return &TimeParser{now: time.Now()}
}

func (p *TimeParser) SetNow(now time.Time) {
	p.now = now
}

// ParseTimeOfDay accepts "14:30", "9am", "2:15pm", "noon", "midnight" and "24:00".
func (p *TimeParser) ParseTimeOfDay(input string) (geometry.TimeOfDay, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return geometry.TimeOfDay{}, ErrEmptyInput
	}

	if hour, ok := namedTimes[lower]; ok {
		return geometry.TimeOfDay{Hour: hour}, nil
	}

	matches := clockRe.FindStringSubmatch(lower)
	if matches == nil {
		return geometry.TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTime, input)
	}

	hour, _ := strconv.Atoi(matches[1])
	minutes := 0
	if matches[2] != "" {
		minutes, _ = strconv.Atoi(matches[2])
	}

	switch matches[3] {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return geometry.TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTime, input)
		}
		if hour == 12 {
			hour = 0
		}
		if matches[3] == "pm" {
			hour += 12
		}
	}

	t := geometry.TimeOfDay{Hour: hour, Minutes: minutes}
	if !t.Valid() {
		return geometry.TimeOfDay{}, fmt.Errorf("%w: %q", ErrBadTime, input)
	}
	return t, nil
}

// ParseInterval reads an unavailable range such as "22-26" or "9am-5pm".
// Bare numbers are whole hours and may run past midnight; they are clipped
// to the day when the grid is laid out.
func (p *TimeParser) ParseInterval(input string) (geometry.UnavailableInterval, error) {
	trimmed := strings.TrimSpace(input)
	matches := rangeRe.FindStringSubmatch(trimmed)
	if matches == nil {
		return geometry.UnavailableInterval{}, fmt.Errorf("%w: %q", ErrBadRange, input)
	}

	start, err := p.parseBoundary(matches[1])
	if err != nil {
		return geometry.UnavailableInterval{}, fmt.Errorf("%w: %q: %v", ErrBadRange, input, err)
	}
	end, err := p.parseBoundary(matches[2])
	if err != nil {
		return geometry.UnavailableInterval{}, fmt.Errorf("%w: %q: %v", ErrBadRange, input, err)
	}

	return geometry.UnavailableInterval{Start: start, End: end}, nil
}

func (p *TimeParser) parseBoundary(s string) (int, error) {
	if hour, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if hour < 0 {
			return 0, fmt.Errorf("negative hour %d", hour)
		}
		return hour, nil
	}

	t, err := p.ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	if t.Minutes != 0 {
		return 0, fmt.Errorf("%s is not on the hour", t)
	}
	return t.Hour, nil
}

// ParseDate accepts ISO dates, MM/DD/YYYY, "today", "tomorrow", "yesterday",
// "in N days|weeks" and "next|this <weekday>".
func (p *TimeParser) ParseDate(input string) (geometry.CalendarDate, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	today := geometry.DateOf(p.now)

	switch lower {
	case "":
		return geometry.CalendarDate{}, ErrEmptyInput
	case "today":
		return today, nil
	case "tomorrow", "tmrw":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if matches := inRe.FindStringSubmatch(lower); matches != nil {
		n, _ := strconv.Atoi(matches[1])
		if strings.HasPrefix(matches[2], "week") {
			n *= 7
		}
		return today.AddDays(n), nil
	}

	if matches := weekdayRe.FindStringSubmatch(lower); matches != nil {
		return p.findNextWeekday(parseWeekday(matches[2]), matches[1] == "next"), nil
	}

	if matches := usDateRe.FindStringSubmatch(lower); matches != nil {
		month, _ := strconv.Atoi(matches[1])
		day, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])
		d := geometry.CalendarDate{Year: year, Month: time.Month(month), Day: day}
		if geometry.DateOf(d.Time()) != d {
			return geometry.CalendarDate{}, fmt.Errorf("%w: %q", ErrBadDate, input)
		}
		return d, nil
	}

	d, err := geometry.ParseDate(lower)
	if err != nil {
		return geometry.CalendarDate{}, fmt.Errorf("%w: %q", ErrBadDate, input)
	}
	return d, nil
}

func (p *TimeParser) findNextWeekday(target time.Weekday, skipThisWeek bool) geometry.CalendarDate {
	today := geometry.DateOf(p.now)
	daysUntilTarget := int(target - today.Time().Weekday())

	if daysUntilTarget <= 0 || skipThisWeek {
		daysUntilTarget += 7
	}

	return today.AddDays(daysUntilTarget)
}

func parseWeekday(s string) time.Weekday {
	switch s {
	case "mon", "monday":
		return time.Monday
	case "tue", "tuesday":
		return time.Tuesday
	case "wed", "wednesday":
		return time.Wednesday
	case "thu", "thursday":
		return time.Thursday
	case "fri", "friday":
		return time.Friday
	case "sat", "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}
