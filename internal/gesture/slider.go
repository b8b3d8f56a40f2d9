package gesture

import "math"

// Range is a closed numeric interval [Lo, Hi].
type Range struct {
	Lo, Hi float64
}

// Span returns Hi - Lo.
func (r Range) Span() float64 {
	return r.Hi - r.Lo
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Min(math.Max(v, r.Lo), r.Hi)
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// FloatSlider maps gestures on a track of Length pixels to a continuous
// value in Range. Drags are relative to the current value; taps are absolute.
type FloatSlider struct {
	Range  Range
	Length float64
}

// Drag moves value by delta pixels.
func (s FloatSlider) Drag(value, delta float64) float64 {
	if s.Length <= 0 {
		return s.Range.Clamp(value)
	}
	return s.Range.Clamp(value + delta/s.Length*s.Range.Span())
}

// Tap returns the value for an absolute track position, scaled by the span
// and clamped to the range.
func (s FloatSlider) Tap(pos float64) float64 {
	if s.Length <= 0 {
		return s.Range.Lo
	}
	return s.Range.Clamp(pos / s.Length * s.Range.Span())
}

// Dot returns the indicator offset along the track for value.
func (s FloatSlider) Dot(value float64) float64 {
	if s.Range.Span() == 0 {
		return 0
	}
	return (value - s.Range.Lo) / s.Range.Span() * s.Length
}

// IntSlider maps gestures to integer values. It keeps the pointer's
// continuous offset along the track so sub-pixel drags accumulate instead of
// being rounded away on every step.
type IntSlider struct {
	Range  Range
	Length float64

	offset float64
}

// NewIntSlider returns a slider whose pointer sits at value.
func NewIntSlider(r Range, length float64, value int) *IntSlider {
	s := &IntSlider{Range: r, Length: length}
	s.offset = s.offsetOf(value)
	return s
}

// Drag moves the pointer by delta pixels. It reports the new value only
// when it differs from value, the currently committed one.
func (s *IntSlider) Drag(value int, delta float64) (int, bool) {
	// The committed value can change behind the slider's back (another
	// slider, the hex field); restart from it when it no longer matches.
	if s.valueAt(s.offset) != value {
		s.offset = s.offsetOf(value)
	}
	s.offset = math.Min(math.Max(s.offset+delta, 0), s.Length)
	return s.emit(value)
}

// Tap moves the pointer to an absolute position, snapped to a whole pixel.
func (s *IntSlider) Tap(value int, pos float64) (int, bool) {
	s.offset = math.Round(math.Min(math.Max(pos, 0), s.Length))
	return s.emit(value)
}

// Dot returns the indicator offset along the track for value.
func (s *IntSlider) Dot(value int) float64 {
	return s.offsetOf(value)
}

func (s *IntSlider) emit(value int) (int, bool) {
	v := s.valueAt(s.offset)
	return v, v != value
}

func (s *IntSlider) valueAt(offset float64) int {
	if s.Length <= 0 {
		return int(math.Round(s.Range.Lo))
	}
	return int(math.Round(s.Range.Lo + offset/s.Length*s.Range.Span()))
}

func (s *IntSlider) offsetOf(value int) float64 {
	if s.Range.Span() == 0 {
		return 0
	}
	return (float64(value) - s.Range.Lo) / s.Range.Span() * s.Length
}
