package geometry

// UnavailableInterval is a range of whole hours to paint as suppressed.
type UnavailableInterval struct {
	Start int
	End   int
}

// UnavailableBlock is the pixel rectangle of a clipped interval.
type UnavailableBlock struct {
	Top    float64
	Height float64
}

// Clip restricts i to [dayStart, dayEnd]. ok is false when nothing remains.
func (i UnavailableInterval) Clip(dayStart, dayEnd int) (UnavailableInterval, bool) {
	clipped := i
	if clipped.Start < dayStart {
		clipped.Start = dayStart
	}
	if clipped.End > dayEnd {
		clipped.End = dayEnd
	}
	return clipped, clipped.End > clipped.Start
}

// BuildUnavailableBlocks maps intervals to rectangles measured from
// dayStart. Output order follows input order; overlaps are kept.
func BuildUnavailableBlocks(intervals []UnavailableInterval, dayStart, dayEnd int, pixelsPerHour float64) []UnavailableBlock {
	var blocks []UnavailableBlock
	for _, interval := range intervals {
		clipped, ok := interval.Clip(dayStart, dayEnd)
		if !ok {
			continue
		}
		blocks = append(blocks, UnavailableBlock{
			Top:    pixelsPerHour * float64(clipped.Start-dayStart),
			Height: pixelsPerHour * float64(clipped.End-clipped.Start),
		})
	}
	return blocks
}
