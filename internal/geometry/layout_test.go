package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayout(t *testing.T) {
	assert := assert.New(t)

	l := DefaultLayout()
	assert.Equal(0, l.Start)
	assert.Equal(24, l.End)
	assert.Equal(60.0, l.PixelsPerHour)
	assert.Equal(1, l.Columns)
	assert.False(l.Format24h)
	assert.NoError(l.Validate())
	assert.Equal(1440.0, l.Height())
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Layout)
	}{
		{"reversed range", func(l *Layout) { l.Start, l.End = 18, 8 }},
		{"zero scale", func(l *Layout) { l.PixelsPerHour = 0 }},
		{"no columns", func(l *Layout) { l.Columns = 0 }},
		{"negative inset", func(l *Layout) { l.LeftInset = -1 }},
		{"columns without width", func(l *Layout) { l.Columns = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.modify(&l)
			if err := l.Validate(); err == nil {
				t.Errorf("Expected validation error for %+v", l)
			}
		})
	}
}

func TestLayoutTimeAt(t *testing.T) {
	l := Layout{Start: 8, End: 18, PixelsPerHour: 60, Columns: 1}

	tests := []struct {
		y        float64
		expected TimeOfDay
	}{
		{0, TimeOfDay{8, 0}},
		{90, TimeOfDay{9, 30}},
		{-10, TimeOfDay{8, 0}},
		{600, TimeOfDay{18, 0}},
		{10000, TimeOfDay{18, 0}},
	}

	for _, tt := range tests {
		got := l.TimeAt(tt.y)
		if got != tt.expected {
			t.Errorf("TimeAt(%v) = %v, expected %v", tt.y, got, tt.expected)
		}
		if tt.y >= 0 && tt.y <= l.Height() && l.OffsetOf(got) > tt.y {
			t.Errorf("OffsetOf(%v) = %v lies below y=%v", got, l.OffsetOf(got), tt.y)
		}
	}
}

func TestLayoutGridAndUnavailable(t *testing.T) {
	assert := assert.New(t)

	l := Layout{Start: 6, End: 20, PixelsPerHour: 30, Format24h: true, Columns: 1}
	grid := l.Grid()
	assert.Len(grid.Hours, 14)
	assert.Equal("6:00", grid.Hours[0].Label)
	assert.Equal(l.Height(), grid.Height())

	blocks := l.Unavailable([]UnavailableInterval{{0, 8}, {19, 23}})
	assert.Equal([]UnavailableBlock{{Top: 0, Height: 60}, {Top: 390, Height: 30}}, blocks)
}
