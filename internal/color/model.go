package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hue is an angle in degrees. Real hues live in [0, 360]; an extended hue
// track additionally uses HueWhite and HueBlack to encode pure white and black.
type Hue float64

// SaturationB is saturation relative to brightness (the HSB/HSV saturation).
type SaturationB float64

// SaturationL is saturation relative to lightness (the HSL saturation).
type SaturationL float64

// Brightness is the HSB value component, in [0, 1].
type Brightness float64

// Lightness is the HSL lightness component, in [0, 1].
type Lightness float64

const (
	HueMin Hue = 0
	HueMax Hue = 360

	// HueWhite and HueBlack are the sentinel hues at either end of an
	// extended hue track.
	HueWhite Hue = -5
	HueBlack Hue = 365
)

// Clamp limits the hue to [0, 360].
func (h Hue) Clamp() Hue {
	if h < HueMin {
		return HueMin
	}
	if h > HueMax {
		return HueMax
	}
	return h
}

// Wrap returns the hue as degrees in [0, 360).
func (h Hue) Wrap() float64 {
	v := math.Mod(float64(h), 360)
	if v < 0 {
		v += 360
	}
	return v
}

// InRange reports whether the hue is a real hue rather than a sentinel.
func (h Hue) InRange() bool {
	return h >= HueMin && h <= HueMax
}

// Color renders the hue with the given HSL saturation and lightness,
// independent of any picker state.
func (h Hue) Color(s SaturationL, l Lightness) Color {
	return fromColorful(colorful.Hsl(h.Clamp().Wrap(), clamp01(float64(s)), clamp01(float64(l))))
}

// Swatch renders the fully saturated hue at half lightness.
func (h Hue) Swatch() Color {
	return h.Color(1, 0.5)
}

// Lightness converts brightness to lightness for the given HSB saturation.
func (b Brightness) Lightness(s SaturationB) Lightness {
	bv, sv := clamp01(float64(b)), clamp01(float64(s))
	return Lightness(bv * (1 - sv/2))
}

// Brightness converts lightness to brightness for the given HSL saturation.
func (l Lightness) Brightness(s SaturationL) Brightness {
	lv, sv := clamp01(float64(l)), clamp01(float64(s))
	return Brightness(lv + sv*math.Min(lv, 1-lv))
}

// NewSaturationL derives the HSL saturation from lightness and brightness.
// It is 0 at lightness 0 and 1, where it is otherwise undefined.
func NewSaturationL(l Lightness, b Brightness) SaturationL {
	lv, bv := clamp01(float64(l)), clamp01(float64(b))
	if lv == 0 || lv == 1 {
		return 0
	}
	return SaturationL(clamp01((bv - lv) / math.Min(lv, 1-lv)))
}

// NewSaturationB derives the HSB saturation from brightness and lightness.
// It is 0 at brightness 0, where it is otherwise undefined.
func NewSaturationB(b Brightness, l Lightness) SaturationB {
	bv, lv := clamp01(float64(b)), clamp01(float64(l))
	if bv == 0 {
		return 0
	}
	return SaturationB(clamp01(2 * (1 - lv/bv)))
}

// HSBToHSL converts the saturation/brightness pair of HSB into the
// saturation/lightness pair of HSL. Hue is shared and not involved.
func HSBToHSL(s SaturationB, b Brightness) (SaturationL, Lightness) {
	l := b.Lightness(s)
	return NewSaturationL(l, b), l
}

// HSLToHSB is the inverse of HSBToHSL.
func HSLToHSB(s SaturationL, l Lightness) (SaturationB, Brightness) {
	b := l.Brightness(s)
	return NewSaturationB(b, l), b
}
