package chroma

import (
	"fmt"
	"strings"

	"github.com/jsvensson/chroma/internal/config"
	"github.com/jsvensson/chroma/internal/gesture"
)

// ColorSpace selects which input panel the picker shows below the area.
type ColorSpace int

const (
	HSL ColorSpace = iota
	RGB
	Hex
)

var colorSpaceNames = [...]string{HSL: "hsl", RGB: "rgb", Hex: "hex"}

func (s ColorSpace) String() string {
	if s < 0 || int(s) >= len(colorSpaceNames) {
		return fmt.Sprintf("ColorSpace(%d)", int(s))
	}
	return colorSpaceNames[s]
}

// ParseColorSpace accepts "hsl", "rgb" or "hex" in any case.
func ParseColorSpace(s string) (ColorSpace, error) {
	name, err := config.ParseColorSpace(s)
	if err != nil {
		return 0, err
	}
	for i, n := range colorSpaceNames {
		if n == name {
			return ColorSpace(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color space %q", s)
}

// Slider identifies one of the sliders on the HSL and RGB panels.
type Slider int

const (
	SliderHue Slider = iota
	SliderSaturation
	SliderLightness
	SliderRed
	SliderGreen
	SliderBlue
)

var sliderNames = [...]string{
	SliderHue:        "h",
	SliderSaturation: "s",
	SliderLightness:  "l",
	SliderRed:        "r",
	SliderGreen:      "g",
	SliderBlue:       "b",
}

func (k Slider) String() string {
	if k < 0 || int(k) >= len(sliderNames) {
		return fmt.Sprintf("Slider(%d)", int(k))
	}
	return sliderNames[k]
}

// ParseSlider accepts the single-letter slider labels h, s, l, r, g and b.
func ParseSlider(s string) (Slider, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range sliderNames {
		if n == name {
			return Slider(i), nil
		}
	}
	return 0, fmt.Errorf("unknown slider %q (valid: h, s, l, r, g, b)", s)
}

// Space returns the panel the slider belongs to.
func (k Slider) Space() ColorSpace {
	if k >= SliderRed {
		return RGB
	}
	return HSL
}

// Range returns the values the slider spans: degrees for hue, percent for
// saturation and lightness, channel values for red, green and blue.
func (k Slider) Range() gesture.Range {
	switch k {
	case SliderHue:
		return gesture.HueRange
	case SliderSaturation, SliderLightness:
		return gesture.Range{Lo: 0, Hi: 100}
	default:
		return gesture.Range{Lo: 0, Hi: 255}
	}
}

func (k Slider) integer() bool {
	return k.Space() == RGB
}
