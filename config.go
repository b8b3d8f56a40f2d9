package chroma

import (
	"fmt"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/config"
)

// Config controls a Picker. Start from DefaultConfig.
type Config struct {
	// ExtendHue adds white and black sentinel zones to both ends of the hue track.
	ExtendHue bool
	// ShowHue enables the hue track; when false its gestures are ignored.
	ShowHue    bool
	ColorSpace ColorSpace

	// Pixel sizes of the saturation/brightness area and of every slider track.
	AreaWidth   float64
	AreaHeight  float64
	TrackLength float64

	// OnPick receives the latest color after mutations. It runs on its own
	// goroutine and may be skipped for intermediate colors.
	OnPick func(color.Color)
	// OnContentColor receives black or white whenever the readable
	// foreground color flips. It runs synchronously.
	OnContentColor func(color.Color)
}

// DefaultConfig returns the configuration used for a picker file without
// settings.
func DefaultConfig() Config {
	return fromFile(config.Default())
}

func fromFile(p config.Picker) Config {
	space, err := ParseColorSpace(p.ColorSpace)
	if err != nil {
		space = HSL
	}
	return Config{
		ExtendHue:   p.IncludeBlackAndWhite,
		ShowHue:     p.ShowHue,
		ColorSpace:  space,
		AreaWidth:   p.AreaWidth,
		AreaHeight:  p.AreaHeight,
		TrackLength: p.SliderLength,
	}
}

// withDefaults fills in the sizes a zero Config leaves out.
func (c Config) withDefaults() Config {
	d := config.Default()
	if c.AreaWidth <= 0 {
		c.AreaWidth = d.AreaWidth
	}
	if c.AreaHeight <= 0 {
		c.AreaHeight = d.AreaHeight
	}
	if c.TrackLength <= 0 {
		c.TrackLength = d.SliderLength
	}
	return c
}

// Load reads an HCL picker file and returns its initial color and
// configuration.
func Load(path string) (color.Color, Config, error) {
	p, err := config.Load(path)
	if err != nil {
		return color.Color{}, Config{}, fmt.Errorf("loading picker: %w", err)
	}
	return p.InitialColor, fromFile(*p), nil
}
