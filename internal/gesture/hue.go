package gesture

import (
	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/hsb"
)

var (
	// HueRange is the plain hue track.
	HueRange = Range{Lo: float64(color.HueMin), Hi: float64(color.HueMax)}
	// ExtendedHueRange adds the white and black sentinel zones at either end.
	ExtendedHueRange = Range{Lo: float64(color.HueWhite), Hi: float64(color.HueBlack)}
)

// RainbowStops are the evenly spaced gradient stops of the hue track.
var RainbowStops = []color.Color{
	{R: 255},
	{R: 255, G: 255},
	{G: 255},
	{G: 255, B: 255},
	{B: 255},
	{R: 255, B: 255},
	{R: 255},
}

// HueTrack is the hue slider. When extended, moving below 0 selects white
// and moving above 360 selects black. The saturation and brightness in
// effect before entering either zone are remembered and restored when the
// pointer comes back to a real hue.
type HueTrack struct {
	Slider FloatSlider

	cachedSaturation color.SaturationB
	cachedBrightness color.Brightness
}

// Saturation and brightness restored when leaving a sentinel zone that was
// entered without a snapshot, as when the picker opens on white or black.
const (
	defaultSaturation color.SaturationB = 0.35
	defaultBrightness color.Brightness  = 0.65
)

// NewHueTrack returns a hue track of the given pixel length.
func NewHueTrack(extended bool, length float64) *HueTrack {
	r := HueRange
	if extended {
		r = ExtendedHueRange
	}
	return &HueTrack{
		Slider:           FloatSlider{Range: r, Length: length},
		cachedSaturation: defaultSaturation,
		cachedBrightness: defaultBrightness,
	}
}

// Extended reports whether the track carries the sentinel zones.
func (t *HueTrack) Extended() bool {
	return t.Slider.Range == ExtendedHueRange
}

// Gradient returns the track's color stops from start to end. An extended
// track starts at white and ends at black.
func (t *HueTrack) Gradient() []color.Color {
	if !t.Extended() {
		return RainbowStops
	}
	stops := make([]color.Color, 0, len(RainbowStops)+2)
	stops = append(stops, color.White)
	stops = append(stops, RainbowStops...)
	return append(stops, color.Black)
}

// Drag moves the hue by delta pixels from the current state.
func (t *HueTrack) Drag(cur hsb.State, delta float64) hsb.State {
	return t.Move(cur, color.Hue(t.Slider.Drag(float64(cur.Hue), delta)))
}

// Tap jumps the hue to an absolute track position.
func (t *HueTrack) Tap(cur hsb.State, pos float64) hsb.State {
	return t.Move(cur, color.Hue(t.Slider.Tap(pos)))
}

// Move resolves the state that results from placing the hue at h when the
// picker is currently at cur.
func (t *HueTrack) Move(cur hsb.State, h color.Hue) hsb.State {
	switch {
	case h < color.HueMin:
		t.remember(cur)
		return hsb.State{Hue: h, Saturation: 0, Brightness: 1}
	case h > color.HueMax:
		t.remember(cur)
		return hsb.State{Hue: h, Saturation: 0, Brightness: 0}
	case !cur.Hue.InRange():
		return hsb.State{Hue: h, Saturation: t.cachedSaturation, Brightness: t.cachedBrightness}
	default:
		return hsb.State{Hue: h, Saturation: cur.Saturation, Brightness: cur.Brightness}
	}
}

// remember snapshots cur on the transition from a real hue into a sentinel
// zone. Crossing straight from one zone to the other keeps the snapshot.
func (t *HueTrack) remember(cur hsb.State) {
	if !cur.Hue.InRange() {
		return
	}
	t.cachedSaturation = cur.Saturation
	t.cachedBrightness = cur.Brightness
}
