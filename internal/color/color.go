package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the canonical opaque sRGB color. The R, G, B uint8 fields are the
// source of truth; every other representation is derived from them.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{}
)

// ParseHex parses a hex color string like "#3366CC" or "3366cc" into a Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as an uppercase hex string with leading #, e.g. "#3366CC".
func (c Color) Hex() string {
	return "#" + string(NewHex(c))
}

// RGB returns the integer channels of the color.
func (c Color) RGB() RGB {
	return RGB{Red: int(c.R), Green: int(c.G), Blue: int(c.B)}
}

// HSB converts the color with the standard HSV formulas. Achromatic colors
// report a hue of 0.
func (c Color) HSB() (Hue, SaturationB, Brightness) {
	h, s, v := c.colorful().Hsv()
	return Hue(h), SaturationB(s), Brightness(v)
}

// Lightness returns the HSL lightness of the color. It only drives foreground
// contrast decisions.
func (c Color) Lightness() Lightness {
	_, _, l := c.colorful().Hsl()
	return Lightness(l)
}

// ContentColor returns the foreground color readable on top of c: black on
// light colors, white on dark ones.
func (c Color) ContentColor() Color {
	if c.Lightness() >= 0.5 {
		return Black
	}
	return White
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromHSB builds a Color from HSB components. The hue is clamped to [0, 360]
// so sentinel hues render as the plain white or black they encode; saturation
// and brightness are clamped to [0, 1]. Channels are rounded, not truncated.
func FromHSB(h Hue, s SaturationB, b Brightness) Color {
	c := colorful.Hsv(h.Clamp().Wrap(), clamp01(float64(s)), clamp01(float64(b)))
	return fromColorful(c)
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// RGB holds three integer channels, each in [0, 255].
type RGB struct {
	Red, Green, Blue int
}

// Color returns the color denoted by the channels, clamping each into [0, 255].
func (rgb RGB) Color() Color {
	return Color{
		R: uint8(clampChannel(rgb.Red)),
		G: uint8(clampChannel(rgb.Green)),
		B: uint8(clampChannel(rgb.Blue)),
	}
}

// String returns the channels in rgb() function format, e.g. "rgb(51, 102, 204)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.Red, rgb.Green, rgb.Blue)
}

// RGBToHSB converts integer channels to HSB.
func RGBToHSB(rgb RGB) (Hue, SaturationB, Brightness) {
	return rgb.Color().HSB()
}

// HSBToRGB converts HSB to integer channels.
func HSBToRGB(h Hue, s SaturationB, b Brightness) RGB {
	return FromHSB(h, s, b).RGB()
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
