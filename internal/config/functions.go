package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/chroma/internal/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"golang.org/x/image/colornames"
)

// EvalContext returns the HCL evaluation context for picker files: the
// color constructor functions and the named CSS colors under "named".
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"named": namedColors(),
		},
		Functions: map[string]function.Function{
			"rgb":      makeRGBFunc(),
			"hsb":      makeHSBFunc(),
			"hsl":      makeHSLFunc(),
			"brighten": makeAdjustFunc("Brightens", color.Brighten),
			"darken":   makeAdjustFunc("Darkens", color.Darken),
		},
	}
}

// namedColors converts the CSS color names to a cty object of hex strings.
func namedColors() cty.Value {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)

	vals := make(map[string]cty.Value, len(names))
	for _, name := range names {
		c := colornames.Map[name]
		vals[name] = cty.StringVal(color.Color{R: c.R, G: c.G, B: c.B}.Hex())
	}
	return cty.ObjectVal(vals)
}

func numberParams(names ...string) []function.Parameter {
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}
	return params
}

func floats(args []cty.Value) []float64 {
	out := make([]float64, len(args))
	for i, arg := range args {
		out[i], _ = arg.AsBigFloat().Float64()
	}
	return out
}

func unit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s %g out of range [0, 1]", name, v)
	}
	return nil
}

// makeRGBFunc creates an HCL function building a color from 0-255 channels.
// Usage: rgb(51, 102, 204)
func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green and blue channels (0 to 255)",
		Params:      numberParams("red", "green", "blue"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v := floats(args)
			channels := make([]int, 3)
			for i, ch := range v {
				if ch < 0 || ch > 255 || ch != float64(int(ch)) {
					return cty.NilVal, function.NewArgErrorf(i, "channel must be a whole number in [0, 255], got %g", ch)
				}
				channels[i] = int(ch)
			}
			rgb := color.RGB{Red: channels[0], Green: channels[1], Blue: channels[2]}
			return cty.StringVal(rgb.Color().Hex()), nil
		},
	})
}

// makeHSBFunc creates an HCL function building a color from HSB components.
// Usage: hsb(220, 0.75, 0.8)
func makeHSBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from hue (degrees), saturation and brightness (0 to 1)",
		Params:      numberParams("hue", "saturation", "brightness"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v := floats(args)
			if err := unit("saturation", v[1]); err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			if err := unit("brightness", v[2]); err != nil {
				return cty.NilVal, function.NewArgError(2, err)
			}
			c := color.FromHSB(color.Hue(v[0]), color.SaturationB(v[1]), color.Brightness(v[2]))
			return cty.StringVal(c.Hex()), nil
		},
	})
}

// makeHSLFunc creates an HCL function building a color from HSL components.
// Usage: hsl(220, 0.6, 0.5)
func makeHSLFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from hue (degrees), saturation and lightness (0 to 1)",
		Params:      numberParams("hue", "saturation", "lightness"),
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			v := floats(args)
			if err := unit("saturation", v[1]); err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			if err := unit("lightness", v[2]); err != nil {
				return cty.NilVal, function.NewArgError(2, err)
			}
			c := color.Hue(v[0]).Color(color.SaturationL(v[1]), color.Lightness(v[2]))
			return cty.StringVal(c.Hex()), nil
		},
	})
}

// makeAdjustFunc creates an HCL function shifting a color's lightness.
// Usage: brighten("#hex", 0.1) or darken(named.teal, 0.2)
func makeAdjustFunc(verb string, adjust func(color.Color, float64) color.Color) function.Function {
	return function.New(&function.Spec{
		Description: verb + " a color by the given amount of lightness (0.0 to 1.0)",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			amount, _ := args[1].AsBigFloat().Float64()
			return cty.StringVal(adjust(c, amount).Hex()), nil
		},
	})
}
