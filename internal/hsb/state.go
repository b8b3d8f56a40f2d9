// Package hsb holds the picker's single source of truth, the current hue,
// HSB saturation and brightness, and the read-only views derived from it.
package hsb

import (
	"github.com/jsvensson/chroma/internal/color"
)

// State owns the authoritative (hue, saturation, brightness) triple.
// Saturation and brightness are stored as given; callers clamp them.
type State struct {
	Hue        color.Hue
	Saturation color.SaturationB
	Brightness color.Brightness
}

// New seeds a State from a color. With extended set, pure white and pure
// black start on their sentinel hues instead of the arbitrary hue 0 that the
// HSB conversion reports for them.
func New(c color.Color, extended bool) *State {
	switch {
	case extended && c == color.White:
		return &State{Hue: color.HueWhite, Saturation: 0, Brightness: 1}
	case extended && c == color.Black:
		return &State{Hue: color.HueBlack, Saturation: 0, Brightness: 0}
	}
	h, s, b := c.HSB()
	return &State{Hue: h, Saturation: s, Brightness: b}
}

// Color derives the canonical color, rendering sentinel hues as plain
// white or black.
func (s *State) Color() color.Color {
	return color.FromHSB(s.Hue, s.Saturation, s.Brightness)
}

// SetColor replaces the triple with the HSB conversion of c.
//
// Achromatic colors have no hue, so the previous hue is kept. A sentinel hue
// is only kept while it still agrees with c (white below 0, black above 360);
// otherwise it is pulled back to the nearest real hue.
func (s *State) SetColor(c color.Color) {
	h, sat, b := c.HSB()
	if sat == 0 {
		h = s.Hue
		if (h < color.HueMin && c != color.White) || (h > color.HueMax && c != color.Black) {
			h = h.Clamp()
		}
	}
	s.Hue, s.Saturation, s.Brightness = h, sat, b
}

// SetRGB replaces the triple from integer channels.
func (s *State) SetRGB(rgb color.RGB) {
	s.SetColor(rgb.Color())
}

// SetSaturationBrightness sets both planar components at once.
func (s *State) SetSaturationBrightness(sat color.SaturationB, b color.Brightness) {
	s.Saturation, s.Brightness = sat, b
}

// Set replaces the whole triple.
func (s *State) Set(h color.Hue, sat color.SaturationB, b color.Brightness) {
	s.Hue, s.Saturation, s.Brightness = h, sat, b
}
