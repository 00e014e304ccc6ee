package geometry

// Press is the state captured when a long press starts on the background.
// The caller owns it and passes it back when the press ends.
type Press struct {
	Time     TimeOfDay
	Date     CalendarDate
	Label    string
	released bool
}

// PressEvent is the payload handed to press callbacks.
type PressEvent struct {
	Label string
	Time  TimeOfDay
	Date  CalendarDate
}

// Press resolves a pointer position into the time and date under it.
func (l Layout) Press(x, y float64, base CalendarDate) Press {
	t := l.TimeAt(y)
	d := l.DateAt(x, base)
	return Press{
		Time:  t,
		Date:  d,
		Label: FormatTimeLabel(t, d),
	}
}

// Event returns the payload for the press start callback.
func (p *Press) Event() PressEvent {
	return PressEvent{Label: p.Label, Time: p.Time, Date: p.Date}
}

// Release ends the press and returns the press-out payload. Releasing a
// press twice, or a zero Press, reports false.
func (p *Press) Release() (PressEvent, bool) {
	if p == nil || p.released || p.Label == "" {
		return PressEvent{}, false
	}
	p.released = true
	return p.Event(), true
}
