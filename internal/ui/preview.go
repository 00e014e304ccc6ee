package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/cwarden/timeline/internal/geometry"
	"github.com/muesli/reflow/truncate"
)

// Preview draws a layout in the terminal, one row per quarter hour.
type Preview struct {
	Layout geometry.Layout
	Blocks []geometry.UnavailableBlock
	Styles Styles
	// Marker highlights the row of an active press.
	Marker *geometry.Press
}

// RowPixels is the pixel height one terminal row stands for.
func (p Preview) RowPixels() float64 {
	return p.Layout.PixelsPerHour / geometry.QuartersPerHour
}

// Rows is the number of rows the day needs.
func (p Preview) Rows() int {
	return (p.Layout.End - p.Layout.Start) * geometry.QuartersPerHour
}

// gutterWidth is the number of cells left of the preview body.
const gutterWidth = labelWidth + 1

// bodyWidth is the number of cells the preview body spans at width.
func bodyWidth(width int) int {
	if w := width - gutterWidth; w > 0 {
		return w
	}
	return 1
}

// PixelAt maps a terminal cell to layout pixels. Rows map to the middle of
// their quarter so they resolve to that quarter's start. The label gutter
// stands for the left inset and the body cells for the columns, each cell
// mapping to its middle.
func (p Preview) PixelAt(col, row, width int) (x, y float64) {
	y = (float64(row) + 0.5) * p.RowPixels()
	if width <= 0 || p.Layout.Width <= 0 {
		return x, y
	}

	if col < gutterWidth {
		x = (float64(col) + 0.5) / gutterWidth * p.Layout.LeftInset
		return x, y
	}
	cell := (p.Layout.Width - p.Layout.LeftInset) / float64(bodyWidth(width))
	x = p.Layout.LeftInset + (float64(col-gutterWidth)+0.5)*cell
	return x, y
}

// Render draws rows [from, to) at the given terminal width.
func (p Preview) Render(from, to, width int) string {
	if from < 0 {
		from = 0
	}
	if to > p.Rows() {
		to = p.Rows()
	}

	cells := bodyWidth(width)

	var lines []string
	for row := from; row < to; row++ {
		lines = append(lines, p.renderRow(row, cells))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p Preview) renderRow(row, cells int) string {
	rowPx := p.RowPixels()
	top := float64(row) * rowPx
	t := p.Layout.TimeAt(top)

	label := ""
	fill, style := "·", p.Styles.Quarter
	if t.Minutes == 0 {
		label = geometry.HourLabel(t.Hour, p.Layout.Format24h)
		fill, style = "─", p.Styles.HourLine
	}

	for _, block := range p.Blocks {
		if top >= block.Top && top < block.Top+block.Height {
			fill, style = "░", p.Styles.Unavailable
			break
		}
	}

	body := strings.Repeat(fill, cells)
	if p.Marker != nil {
		offset := p.Layout.OffsetOf(p.Marker.Time)
		if offset >= top && offset < top+rowPx {
			body = truncate.String(" "+p.Marker.Label+" "+body, uint(cells))
			style = p.Styles.Selected
		}
	}

	return p.Styles.Label.Render(padRight(label, labelWidth)) + " " + style.Render(body)
}

func padRight(s string, width int) string {
	s = truncate.String(s, uint(width))
	if n := lipgloss.Width(s); n < width {
		s += strings.Repeat(" ", width-n)
	}
	return s
}
