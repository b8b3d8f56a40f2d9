package hsb

import "github.com/jsvensson/chroma/internal/color"

// HSL is the HSL projection of a State. It is never stored; take a fresh one
// after every mutation.
type HSL struct {
	Hue        color.Hue
	Saturation color.SaturationL
	Lightness  color.Lightness
}

// HSL projects the state into HSL. The hue is clamped so sentinel values
// never reach HSL consumers.
func (s *State) HSL() HSL {
	sl, l := color.HSBToHSL(s.Saturation, s.Brightness)
	return HSL{Hue: s.Hue.Clamp(), Saturation: sl, Lightness: l}
}

// RGB projects the state into integer channels.
func (s *State) RGB() color.RGB {
	return s.Color().RGB()
}

// WithSaturation returns the HSB saturation and brightness that result from
// replacing the HSL saturation while keeping lightness.
func (v HSL) WithSaturation(sl color.SaturationL) (color.SaturationB, color.Brightness) {
	b := v.Lightness.Brightness(sl)
	return color.NewSaturationB(b, v.Lightness), b
}

// WithLightness returns the HSB saturation and brightness that result from
// replacing the lightness while keeping the HSL saturation.
func (v HSL) WithLightness(l color.Lightness) (color.SaturationB, color.Brightness) {
	b := l.Brightness(v.Saturation)
	return color.NewSaturationB(b, l), b
}
