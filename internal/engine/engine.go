// Package engine renders a picked color through Go templates, so one pick
// can be exported to the config formats of other applications.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("chroma.engine")

// Engine loads and executes Go templates against a picked color.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Apps         []string // if non-empty, only render these template basenames
}

// Run loads all .tmpl files from the templates directory, executes them
// with the given color, and writes output files.
func (e *Engine) Run(c color.Color) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	data := NewData(c)

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		if err := e.renderTemplate(tmplPath, baseName, data); err != nil {
			return err
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no apps are specified, render all.
	if len(e.Apps) == 0 {
		return true
	}

	return slices.Contains(e.Apps, name)
}

func (e *Engine) renderTemplate(tmplPath, outputName string, data Data) error {
	tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(funcMap()).ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	outPath := filepath.Join(e.OutputDir, outputName)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template %s: %w", tmplPath, err)
	}

	log.Debugf("rendered %s", outPath)
	return nil
}

// Render executes a single inline template, such as `{{ hex .Color }}`.
func Render(text string, c color.Color) (string, error) {
	tmpl, err := template.New("inline").Funcs(funcMap()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, NewData(c)); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return b.String(), nil
}

// Data is what templates see as dot.
type Data struct {
	Color   color.Color
	Content color.Color // black or white, whichever reads on Color

	Hue        float64 // degrees
	Saturation float64 // HSB saturation, 0 to 1
	Brightness float64
	Lightness  float64 // HSL lightness, 0 to 1
}

// NewData derives the template data for c.
func NewData(c color.Color) Data {
	h, s, b := c.HSB()
	return Data{
		Color:      c,
		Content:    c.ContentColor(),
		Hue:        float64(h),
		Saturation: float64(s),
		Brightness: float64(b),
		Lightness:  float64(c.Lightness()),
	}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"hex": func(c color.Color) string {
			return c.Hex()
		},
		"hexBare": func(c color.Color) string {
			return strings.ToLower(string(color.NewHex(c)))
		},
		"rgb": func(c color.Color) string {
			return c.RGB().String()
		},
		"hsb": func(c color.Color) string {
			h, s, b := c.HSB()
			return fmt.Sprintf("hsb(%.0f, %.2f, %.2f)", float64(h), float64(s), float64(b))
		},
		"hsl": func(c color.Color) string {
			h, s, b := c.HSB()
			sl, l := color.HSBToHSL(s, b)
			return fmt.Sprintf("hsl(%.0f, %.2f, %.2f)", float64(h), float64(sl), float64(l))
		},
		"brighten": func(amount float64, c color.Color) color.Color {
			return color.Brighten(c, amount)
		},
		"darken": func(amount float64, c color.Color) color.Color {
			return color.Darken(c, amount)
		},
	}
}
