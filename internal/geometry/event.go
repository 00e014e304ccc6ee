package geometry

import (
	"fmt"
	"math"
	"time"
)

const (
	// EventTimeLayout is the usual layout of PackedEvent start and end values.
	EventTimeLayout = "2006-01-02 15:04:05"
	// TextLineHeight is the pixel height of one line of event text.
	TextLineHeight = 17
	// DefaultEventTitle is shown for events without a title.
	DefaultEventTitle = "Event"
)

// eventTimeLayouts are tried in order when parsing event times.
var eventTimeLayouts = []string{
	EventTimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseEventTime parses s as "2006-01-02 15:04:05" or one of its ISO 8601
// variants.
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event time %q", s)
}

// PackedEvent is an event already positioned by the packer.
type PackedEvent struct {
	Index   int
	ID      string
	Start   string
	End     string
	Title   string
	Summary string

	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// EventBlockText is the text that fits inside an event block.
type EventBlockText struct {
	Title        string
	Summary      string
	SummaryLines int
	Times        string
}

// ShowSummary reports whether the block has room for the summary.
func (t EventBlockText) ShowSummary() bool { return t.SummaryLines > 0 }

// ShowTimes reports whether the block has room for the time range.
func (t EventBlockText) ShowTimes() bool { return t.Times != "" }

// LineBudget returns how many text lines fit in height.
func LineBudget(height float64) int {
	if height <= 0 {
		return 0
	}
	return int(math.Floor(height / TextLineHeight))
}

// EventText decides which parts of ev fit in its block. The title always
// shows; the summary needs two lines of budget and the time range three.
// If the times do not parse, the text comes back without them along with
// the error.
func EventText(ev PackedEvent, format24h bool) (EventBlockText, error) {
	text := EventBlockText{Title: ev.Title}
	if text.Title == "" {
		text.Title = DefaultEventTitle
	}

	lines := LineBudget(ev.Height)
	if lines > 1 {
		text.Summary = ev.Summary
		if text.Summary == "" {
			text.Summary = " "
		}
		text.SummaryLines = lines - 1
	}

	if lines > 2 {
		start, err := ParseEventTime(ev.Start)
		if err != nil {
			return text, fmt.Errorf("event %d start: %w", ev.Index, err)
		}
		end, err := ParseEventTime(ev.End)
		if err != nil {
			return text, fmt.Errorf("event %d end: %w", ev.Index, err)
		}
		text.Times = FormatClock(start, format24h) + " - " + FormatClock(end, format24h)
	}

	return text, nil
}

// FormatClock formats t as "15:04" or "03:04 PM".
func FormatClock(t time.Time, format24h bool) string {
	if format24h {
		return t.Format("15:04")
	}
	return t.Format("03:04 PM")
}
