package ui

import (
	"github.com/charmbracelet/lipgloss/v2"
)

type Styles struct {
	HourLine    lipgloss.Style
	Quarter     lipgloss.Style
	Label       lipgloss.Style
	Unavailable lipgloss.Style
	Event       lipgloss.Style
	Selected    lipgloss.Style
	Header      lipgloss.Style
	Help        lipgloss.Style
	Message     lipgloss.Style
	Border      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		HourLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Quarter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),
		Unavailable: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Background(lipgloss.Color("238")),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
	}
}

// NewStyles applies color overrides from the config on top of the defaults.
// A color value is an ANSI color number or name, or one of "bold" and "reverse".
func NewStyles(colors map[string]string) Styles {
	s := DefaultStyles()

	for name, value := range colors {
		switch name {
		case "hour_line":
			s.HourLine = applyColor(s.HourLine, value)
		case "quarter":
			s.Quarter = applyColor(s.Quarter, value)
		case "label":
			s.Label = applyColor(s.Label, value)
		case "unavailable":
			// Unavailable hours are a fill, so the color goes to the background.
			if value != "bold" && value != "reverse" {
				s.Unavailable = s.Unavailable.Background(lipgloss.Color(value))
			} else {
				s.Unavailable = applyColor(s.Unavailable, value)
			}
		case "event":
			s.Event = applyColor(s.Event, value)
		case "selected":
			s.Selected = applyColor(s.Selected, value)
		case "header":
			s.Header = applyColor(s.Header, value)
		}
	}

	return s
}

func applyColor(style lipgloss.Style, value string) lipgloss.Style {
	switch value {
	case "", "default":
		return style
	case "bold":
		return style.Bold(true)
	case "reverse":
		return style.Reverse(true)
	default:
		return style.Foreground(lipgloss.Color(value))
	}
}
