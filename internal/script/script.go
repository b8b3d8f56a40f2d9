// Package script drives a picker from a plain-text gesture script, one
// command per line. It backs the pick command and end-to-end tests.
//
//	area tap X Y        area drag DX DY
//	hue tap P           hue drag D          hue set H
//	slider K tap P      slider K drag D     slider K type TEXT    slider K blur
//	hex type TEXT       hex blur
//	space hsl|rgb|hex
//	rgb R G B
//	color EXPR
//	end
//	show
//
// Blank lines and everything after # are ignored.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jsvensson/chroma"
	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/config"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("chroma.script")

// Command is one parsed script line.
type Command struct {
	Line int
	Text string

	run runFunc
}

// Parse reads a whole script. Errors carry the offending line number.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(stripComment(scanner.Text()))
		if text == "" {
			continue
		}
		run, err := compile(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmds = append(cmds, Command{Line: line, Text: text, run: run})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return cmds, nil
}

// stripComment cuts text at the first # that does not start a hex literal
// such as the one in "hex type #FF0000".
func stripComment(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] == '#' && !isHexArg(text, i) {
			return text[:i]
		}
	}
	return text
}

func isHexArg(text string, i int) bool {
	if i == 0 || text[i-1] != ' ' && text[i-1] != '\t' {
		return false
	}
	return i+1 < len(text) && color.FilterHex(text[i+1:i+2]) != ""
}

// Run executes cmds against p in order, stopping at the first error.
func Run(ctx context.Context, p *chroma.Picker, cmds []Command, out *Printer) error {
	for _, c := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debugf("line %d: %s", c.Line, c.Text)
		if err := c.run(ctx, p, out); err != nil {
			return fmt.Errorf("line %d: %w", c.Line, err)
		}
	}
	return nil
}

type runFunc = func(ctx context.Context, p *chroma.Picker, out *Printer) error

func compile(f []string) (runFunc, error) {
	switch f[0] {
	case "area":
		return compileArea(f[1:])
	case "hue":
		return compileHue(f[1:])
	case "slider":
		return compileSlider(f[1:])
	case "hex":
		return compileHex(f[1:])
	case "space":
		if len(f) != 2 {
			return nil, fmt.Errorf("space: want 1 argument, got %d", len(f)-1)
		}
		space, err := chroma.ParseColorSpace(f[1])
		if err != nil {
			return nil, err
		}
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.SelectColorSpace(space)
			return nil
		}, nil
	case "rgb":
		n, err := numbers("rgb", f[1:], 3)
		if err != nil {
			return nil, err
		}
		rgb := color.RGB{Red: int(n[0]), Green: int(n[1]), Blue: int(n[2])}
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.SetFromRGB(rgb)
			return nil
		}, nil
	case "color":
		if len(f) < 2 {
			return nil, fmt.Errorf("color: missing expression")
		}
		c, err := config.EvalColor(strings.Join(f[1:], " "))
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.SetFromColor(c)
			return nil
		}, nil
	case "end":
		if len(f) != 1 {
			return nil, fmt.Errorf("end takes no arguments")
		}
		return func(ctx context.Context, p *chroma.Picker, _ *Printer) error {
			return p.EndGesture(ctx)
		}, nil
	case "show":
		if len(f) != 1 {
			return nil, fmt.Errorf("show takes no arguments")
		}
		return func(_ context.Context, p *chroma.Picker, out *Printer) error {
			out.Show(p)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unknown command %q", f[0])
}

func compileArea(f []string) (runFunc, error) {
	if len(f) == 0 {
		return nil, fmt.Errorf("area: missing tap or drag")
	}
	n, err := numbers("area "+f[0], f[1:], 2)
	if err != nil {
		return nil, err
	}
	switch f[0] {
	case "tap":
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.TapArea(n[0], n[1])
			return nil
		}, nil
	case "drag":
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.DragArea(n[0], n[1])
			return nil
		}, nil
	}
	return nil, fmt.Errorf("area: unknown gesture %q", f[0])
}

func compileHue(f []string) (runFunc, error) {
	if len(f) == 0 {
		return nil, fmt.Errorf("hue: missing tap, drag or set")
	}
	n, err := numbers("hue "+f[0], f[1:], 1)
	if err != nil {
		return nil, err
	}
	switch f[0] {
	case "tap":
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			if !p.TapHue(n[0]) {
				return fmt.Errorf("hue track is hidden")
			}
			return nil
		}, nil
	case "drag":
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			if !p.DragHue(n[0]) {
				return fmt.Errorf("hue track is hidden")
			}
			return nil
		}, nil
	case "set":
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.SetHue(color.Hue(n[0]))
			return nil
		}, nil
	}
	return nil, fmt.Errorf("hue: unknown gesture %q", f[0])
}

func compileSlider(f []string) (runFunc, error) {
	if len(f) < 2 {
		return nil, fmt.Errorf("slider: want a slider and a gesture")
	}
	k, err := chroma.ParseSlider(f[0])
	if err != nil {
		return nil, err
	}
	switch f[1] {
	case "tap", "drag":
		n, err := numbers("slider "+f[1], f[2:], 1)
		if err != nil {
			return nil, err
		}
		tap := f[1] == "tap"
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			if tap {
				p.TapSlider(k, n[0])
			} else {
				p.DragSlider(k, n[0])
			}
			return nil
		}, nil
	case "type":
		text := strings.Join(f[2:], "")
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.TypeSlider(k, text)
			return nil
		}, nil
	case "blur":
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.BlurSlider(k)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("slider: unknown gesture %q", f[1])
}

func compileHex(f []string) (runFunc, error) {
	if len(f) == 0 {
		return nil, fmt.Errorf("hex: missing type or blur")
	}
	switch f[0] {
	case "type":
		text := strings.Join(f[1:], "")
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.SetFromHex(text)
			return nil
		}, nil
	case "blur":
		return func(_ context.Context, p *chroma.Picker, _ *Printer) error {
			p.BlurHex()
			return nil
		}, nil
	}
	return nil, fmt.Errorf("hex: unknown gesture %q", f[0])
}

func numbers(cmd string, args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s: want %d arguments, got %d", cmd, want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", cmd, i+1, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: argument %d: %q is not a finite number", cmd, i+1, a)
		}
		out[i] = v
	}
	return out, nil
}
