// Package gesture maps pointer input on the saturation/brightness area and
// on linear slider tracks to color-model values.
package gesture

import (
	"math"

	"github.com/jsvensson/chroma/internal/color"
)

// Point is a pointer position or movement in pixels, y growing downward.
type Point struct {
	X, Y float64
}

// MapPlane maps a position inside a width x height area to HSB saturation
// (left to right) and brightness (bottom to top). Positions outside the area
// are clamped to its edges.
func MapPlane(pos Point, width, height float64) (color.SaturationB, color.Brightness) {
	return color.SaturationB(ratio(pos.X, width)), color.Brightness(1 - ratio(pos.Y, height))
}

// Plane tracks the pointer over the saturation/brightness area. A tap sets
// the pointer, a drag moves it; both map the resulting pointer position.
type Plane struct {
	Width, Height float64

	pointer Point
}

// Tap maps an absolute press position.
func (p *Plane) Tap(pos Point) (color.SaturationB, color.Brightness) {
	p.pointer = pos
	return MapPlane(p.pointer, p.Width, p.Height)
}

// Drag moves the pointer by delta and maps the new position. s and b are the
// committed values; when the pointer no longer maps to them it restarts from
// their dot. The pointer itself is not clamped, so dragging back from beyond
// an edge only takes effect once it re-enters the area.
func (p *Plane) Drag(s color.SaturationB, b color.Brightness, delta Point) (color.SaturationB, color.Brightness) {
	if ps, pb := MapPlane(p.pointer, p.Width, p.Height); ps != s || pb != b {
		p.pointer = p.Dot(s, b)
	}
	p.pointer.X += delta.X
	p.pointer.Y += delta.Y
	return MapPlane(p.pointer, p.Width, p.Height)
}

// Dot returns where the area's indicator sits for the given values.
func (p *Plane) Dot(s color.SaturationB, b color.Brightness) Point {
	return Point{X: float64(s) * p.Width, Y: (1 - float64(b)) * p.Height}
}

func ratio(v, extent float64) float64 {
	if extent <= 0 || math.IsNaN(v) {
		return 0
	}
	r := v / extent
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
