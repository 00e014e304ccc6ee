package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/cwarden/timeline/internal/geometry"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const labelWidth = 8

// RenderGrid lists every hour line of grid with its offsets. The closing
// boundary is dimmed.
func RenderGrid(grid geometry.HourGrid, styles Styles) string {
	lines := []string{
		styles.Header.Render(fmt.Sprintf("%8s  %4s  %-*s  %s", "top", "hour", labelWidth, "label", "quarters")),
	}

	for _, block := range grid.Lines() {
		quarters := make([]string, len(block.Quarters))
		for i, q := range block.Quarters {
			quarters[i] = formatPixels(q)
		}

		row := fmt.Sprintf("%8s  %4d  %-*s  %s",
			formatPixels(block.Top),
			block.Hour,
			labelWidth, truncate.String(block.Label, labelWidth),
			strings.Join(quarters, " "))

		style := styles.HourLine
		if len(block.Quarters) == 0 {
			style = styles.Help
		}
		lines = append(lines, style.Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderUnavailable lists suppressed rectangles in input order.
func RenderUnavailable(blocks []geometry.UnavailableBlock, styles Styles) string {
	if len(blocks) == 0 {
		return styles.Help.Render("(no unavailable hours)")
	}

	lines := []string{styles.Header.Render(fmt.Sprintf("%8s  %8s", "top", "height"))}
	for _, block := range blocks {
		lines = append(lines, styles.Unavailable.Render(
			fmt.Sprintf("%8s  %8s", formatPixels(block.Top), formatPixels(block.Height))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderEventText draws the text that fits in one event block inside a box
// of the given width.
func RenderEventText(text geometry.EventBlockText, width int, styles Styles) string {
	inner := width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	lines := []string{styles.Label.Render(truncate.StringWithTail(text.Title, uint(inner), "…"))}

	if text.ShowSummary() {
		wrapped := strings.Split(wordwrap.String(text.Summary, inner), "\n")
		if len(wrapped) > text.SummaryLines {
			wrapped = wrapped[:text.SummaryLines]
		}
		for _, line := range wrapped {
			lines = append(lines, styles.Event.Render(truncate.String(line, uint(inner))))
		}
	}

	if text.ShowTimes() {
		lines = append(lines, styles.Help.Render(text.Times))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return styles.Border.Width(width).Render(content)
}

func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
