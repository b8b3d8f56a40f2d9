// Package config loads picker settings from HCL files.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/chroma/internal/color"
	"github.com/zclconf/go-cty/cty"
)

// ColorSpaces lists the accepted color_space values.
var ColorSpaces = []string{"hsl", "rgb", "hex"}

// Picker holds the fully-resolved picker settings.
type Picker struct {
	InitialColor         color.Color
	ColorSpace           string
	ShowHue              bool
	IncludeBlackAndWhite bool
	AreaWidth            float64
	AreaHeight           float64
	SliderLength         float64
}

// Default returns the settings used for anything a file leaves out.
func Default() Picker {
	return Picker{
		InitialColor:         color.White,
		ColorSpace:           "hsl",
		ShowHue:              true,
		IncludeBlackAndWhite: true,
		AreaWidth:            320,
		AreaHeight:           192,
		SliderLength:         255,
	}
}

// File is the top-level structure of a picker file.
type File struct {
	Picker *PickerBlock `hcl:"picker,block"`
}

// PickerBlock is the picker block as written.
type PickerBlock struct {
	InitialColor *string      `hcl:"initial_color,optional"`
	ColorSpace   *string      `hcl:"color_space,optional"`
	Hue          *HueBlock    `hcl:"hue,block"`
	Area         *AreaBlock   `hcl:"area,block"`
	Slider       *SliderBlock `hcl:"slider,block"`
}

// HueBlock configures the hue track.
type HueBlock struct {
	Show                 *bool `hcl:"show,optional"`
	IncludeBlackAndWhite *bool `hcl:"include_black_and_white,optional"`
}

// AreaBlock sizes the saturation/brightness area in pixels.
type AreaBlock struct {
	Width  *float64 `hcl:"width,optional"`
	Height *float64 `hcl:"height,optional"`
}

// SliderBlock sizes the slider tracks in pixels.
type SliderBlock struct {
	Length *float64 `hcl:"length,optional"`
}

// Load reads and parses a picker file.
func Load(path string) (*Picker, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading picker file: %w", err)
	}
	return Parse(src, path)
}

// Parse parses picker file contents. filename is only used in messages.
func Parse(src []byte, filename string) (*Picker, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw File
	if diags := gohcl.DecodeBody(file.Body, EvalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding picker: %s", diags.Error())
	}

	p := Default()
	if raw.Picker == nil {
		return &p, nil
	}
	if err := raw.Picker.apply(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *PickerBlock) apply(p *Picker) error {
	if b.InitialColor != nil {
		c, err := color.ParseHex(*b.InitialColor)
		if err != nil {
			return fmt.Errorf("picker.initial_color: %w", err)
		}
		p.InitialColor = c
	}
	if b.ColorSpace != nil {
		space, err := ParseColorSpace(*b.ColorSpace)
		if err != nil {
			return fmt.Errorf("picker.color_space: %w", err)
		}
		p.ColorSpace = space
	}
	if b.Hue != nil {
		if b.Hue.Show != nil {
			p.ShowHue = *b.Hue.Show
		}
		if b.Hue.IncludeBlackAndWhite != nil {
			p.IncludeBlackAndWhite = *b.Hue.IncludeBlackAndWhite
		}
	}
	if b.Area != nil {
		if err := positive("picker.area.width", b.Area.Width, &p.AreaWidth); err != nil {
			return err
		}
		if err := positive("picker.area.height", b.Area.Height, &p.AreaHeight); err != nil {
			return err
		}
	}
	if b.Slider != nil {
		if err := positive("picker.slider.length", b.Slider.Length, &p.SliderLength); err != nil {
			return err
		}
	}
	return nil
}

func positive(name string, v *float64, dest *float64) error {
	if v == nil {
		return nil
	}
	if *v <= 0 {
		return fmt.Errorf("%s: must be positive, got %g", name, *v)
	}
	*dest = *v
	return nil
}

// ParseColorSpace normalizes and validates a color space name.
func ParseColorSpace(s string) (string, error) {
	space := strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(ColorSpaces, space) {
		return "", fmt.Errorf("unknown color space %q (valid: %s)", s, strings.Join(ColorSpaces, ", "))
	}
	return space, nil
}

// EvalColor evaluates a single HCL expression, such as `hsl(200, 0.5, 0.5)`,
// `named.tomato` or `"#3366CC"`, to a color. Bare hex strings without quotes
// are accepted as well.
func EvalColor(expr string) (color.Color, error) {
	if c, err := color.ParseHex(strings.TrimSpace(expr)); err == nil {
		return c, nil
	}

	parsed, diags := hclsyntax.ParseExpression([]byte(expr), "expression", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return color.Color{}, fmt.Errorf("parsing expression: %s", diags.Error())
	}
	val, diags := parsed.Value(EvalContext())
	if diags.HasErrors() {
		return color.Color{}, fmt.Errorf("evaluating expression: %s", diags.Error())
	}
	return ValueColor(val)
}

// ValueColor extracts a color from an evaluated value, which must be a known
// hex string.
func ValueColor(val cty.Value) (color.Color, error) {
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return color.Color{}, fmt.Errorf("expected a color string, got %s", val.Type().FriendlyName())
	}
	return color.ParseHex(val.AsString())
}
