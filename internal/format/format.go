// Package format writes picker files in canonical HCL style.
package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/chroma/internal/config"
	"github.com/zclconf/go-cty/cty"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format returns HCL source formatted with hclwrite, with runs of blank
// lines collapsed and blank lines hugging braces removed.
//
// It works on partial or invalid HCL, so it can run while the user types.
func Format(content string) string {
	formatted := string(hclwrite.Format([]byte(content)))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	return blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
}

// Encode writes p as a formatted picker file.
func Encode(p config.Picker) string {
	f := hclwrite.NewEmptyFile()
	picker := f.Body().AppendNewBlock("picker", nil).Body()
	picker.SetAttributeValue("initial_color", cty.StringVal(p.InitialColor.Hex()))
	picker.SetAttributeValue("color_space", cty.StringVal(p.ColorSpace))

	picker.AppendNewline()
	hue := picker.AppendNewBlock("hue", nil).Body()
	hue.SetAttributeValue("show", cty.BoolVal(p.ShowHue))
	hue.SetAttributeValue("include_black_and_white", cty.BoolVal(p.IncludeBlackAndWhite))

	picker.AppendNewline()
	area := picker.AppendNewBlock("area", nil).Body()
	area.SetAttributeValue("width", cty.NumberFloatVal(p.AreaWidth))
	area.SetAttributeValue("height", cty.NumberFloatVal(p.AreaHeight))

	picker.AppendNewline()
	slider := picker.AppendNewBlock("slider", nil).Body()
	slider.SetAttributeValue("length", cty.NumberFloatVal(p.SliderLength))

	return Format(string(f.Bytes()))
}
