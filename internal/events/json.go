package events

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwarden/timeline/internal/geometry"
)

// EventJSON is one packed event as written by the packer.
type EventJSON struct {
	ID      string  `json:"id,omitempty"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Title   string  `json:"title"`
	Summary string  `json:"summary,omitempty"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// ParseEventsJSON decodes a JSON array of packed events. Index follows array
// order.
func ParseEventsJSON(data []byte) ([]geometry.PackedEvent, error) {
	var entries []EventJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse events JSON: %w", err)
	}

	events := make([]geometry.PackedEvent, 0, len(entries))
	for i, entry := range entries {
		events = append(events, geometry.PackedEvent{
			Index:   i,
			ID:      entry.ID,
			Start:   entry.Start,
			End:     entry.End,
			Title:   entry.Title,
			Summary: entry.Summary,
			Left:    entry.Left,
			Top:     entry.Top,
			Width:   entry.Width,
			Height:  entry.Height,
		})
	}
	return events, nil
}

// LoadFile reads packed events from path.
func LoadFile(path string) ([]geometry.PackedEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseEventsJSON(data)
}
