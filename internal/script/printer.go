package script

import (
	"fmt"
	"io"
	"sync"

	"github.com/jsvensson/chroma"
	"github.com/jsvensson/chroma/internal/color"
)

// Printer writes picker events and state dumps as text lines. OnPick runs on
// its own goroutine, so writes are serialized.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Pick prints a delivered color. Use it as Config.OnPick.
func (p *Printer) Pick(c color.Color) {
	p.printf("pick %s\n", c.Hex())
}

// Content prints a content color change. Use it as Config.OnContentColor.
func (p *Printer) Content(c color.Color) {
	name := "white"
	if c == color.Black {
		name = "black"
	}
	p.printf("content %s\n", name)
}

// Show prints every view of the picker's current color.
func (p *Printer) Show(pk *chroma.Picker) {
	s := pk.HSB()
	hsl := pk.HSL()
	p.printf("hex %s\nrgb %s\nhsb %.2f %.4f %.4f\nhsl %.2f %.4f %.4f\n",
		pk.Color().Hex(), pk.RGB(),
		float64(s.Hue), float64(s.Saturation), float64(s.Brightness),
		float64(hsl.Hue), float64(hsl.Saturation), float64(hsl.Lightness))
}

func (p *Printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, format, args...)
}
