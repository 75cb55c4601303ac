package model

// Selection bounds, in percent of the media duration
const (
	SelectionMin = 0.0
	SelectionMax = 100.0

	// SelectionNudge is how far the other slider moves to keep Start < End
	SelectionNudge = 1.0
)

// Selection is the start/end region chosen with the two sliders.
// Start is always strictly lower than End.
type Selection struct {
	Start float64
	End   float64
}

// NewSelection returns the full-length selection
func NewSelection() Selection {
	return Selection{Start: SelectionMin, End: SelectionMax}
}

// SetStart moves the start slider. When it reaches the end slider, the end
// slider is nudged forward; at the upper bound the start slider itself is
// pulled back instead.
func (s *Selection) SetStart(value float64) {
	s.Start = clampPercent(value)
	if s.Start >= s.End {
		s.End = min(s.Start+SelectionNudge, SelectionMax)
		if s.Start >= s.End {
			s.Start = s.End - SelectionNudge
		}
	}
}

// SetEnd moves the end slider, nudging the start slider back when needed.
func (s *Selection) SetEnd(value float64) {
	s.End = clampPercent(value)
	if s.End <= s.Start {
		s.Start = max(s.End-SelectionNudge, SelectionMin)
		if s.End <= s.Start {
			s.End = s.Start + SelectionNudge
		}
	}
}

// StartTime returns the start of the region in seconds
func (s Selection) StartTime(duration float64) float64 {
	return s.Start / 100 * duration
}

// EndTime returns the end of the region in seconds
func (s Selection) EndTime(duration float64) float64 {
	return s.End / 100 * duration
}

// ClipDuration returns the length of the region in seconds
func (s Selection) ClipDuration(duration float64) float64 {
	return s.EndTime(duration) - s.StartTime(duration)
}

func clampPercent(value float64) float64 {
	if value < SelectionMin {
		return SelectionMin
	}
	if value > SelectionMax {
		return SelectionMax
	}
	return value
}
