package gesture

import (
	"math"
	"testing"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/hsb"
)

func TestMapPlane(t *testing.T) {
	tests := []struct {
		name  string
		pos   Point
		wantS color.SaturationB
		wantB color.Brightness
	}{
		{"top center", Point{100, 0}, 0.5, 1},
		{"bottom right", Point{200, 100}, 1, 0},
		{"left of area", Point{-10, 50}, 0, 0.5},
		{"below and right of area", Point{500, 400}, 1, 0},
		{"above area", Point{50, -30}, 0.25, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, b := MapPlane(tt.pos, 200, 100)
			if s != tt.wantS || b != tt.wantB {
				t.Errorf("MapPlane(%v, 200, 100) = (%v, %v), want (%v, %v)", tt.pos, s, b, tt.wantS, tt.wantB)
			}
		})
	}
}

func TestMapPlaneEmptyArea(t *testing.T) {
	s, b := MapPlane(Point{10, 10}, 0, 0)
	if s != 0 || b != 1 {
		t.Errorf("MapPlane on empty area = (%v, %v), want (0, 1)", s, b)
	}
}

func TestPlaneTapThenDrag(t *testing.T) {
	p := &Plane{Width: 200, Height: 100}

	s, b := p.Tap(Point{100, 50})
	if s != 0.5 || b != 0.5 {
		t.Fatalf("Tap = (%v, %v), want (0.5, 0.5)", s, b)
	}
	if s, b = p.Drag(s, b, Point{50, -50}); s != 0.75 || b != 1 {
		t.Errorf("Drag = (%v, %v), want (0.75, 1)", s, b)
	}

	// Overshoot the right edge, then come back: the pointer keeps moving
	// outside the area while the output stays clamped.
	if s, b = p.Drag(s, b, Point{100, 0}); s != 1 {
		t.Errorf("Drag past edge saturation = %v, want 1", s)
	}
	if s, b = p.Drag(s, b, Point{-50, 0}); s != 1 {
		t.Errorf("Drag back to edge saturation = %v, want 1", s)
	}
	if s, _ = p.Drag(s, b, Point{-50, 0}); s != 0.75 {
		t.Errorf("Drag back inside saturation = %v, want 0.75", s)
	}
}

func TestPlaneDragStartsFromCommittedValues(t *testing.T) {
	p := &Plane{Width: 200, Height: 100}

	// No tap yet: the drag starts from the committed dot at (100, 25).
	if s, b := p.Drag(0.5, 0.75, Point{20, 25}); s != 0.6 || b != 0.5 {
		t.Errorf("first Drag = (%v, %v), want (0.6, 0.5)", s, b)
	}

	// The values changed elsewhere; the pointer follows them.
	if s, b := p.Drag(0.25, 1, Point{50, 0}); s != 0.5 || b != 1 {
		t.Errorf("Drag after external change = (%v, %v), want (0.5, 1)", s, b)
	}
}

func TestMapPlaneNaN(t *testing.T) {
	s, b := MapPlane(Point{math.NaN(), math.NaN()}, 200, 100)
	if s != 0 || b != 1 {
		t.Errorf("MapPlane(NaN) = (%v, %v), want (0, 1)", s, b)
	}
}

func TestPlaneDot(t *testing.T) {
	p := &Plane{Width: 200, Height: 100}
	if got := p.Dot(0.25, 0.75); got != (Point{50, 25}) {
		t.Errorf("Dot(0.25, 0.75) = %v, want {50 25}", got)
	}
}

func TestFloatSlider(t *testing.T) {
	s := FloatSlider{Range: Range{Lo: 0, Hi: 255}, Length: 255}

	if got := s.Drag(100, 51); got != 151 {
		t.Errorf("Drag(100, 51) = %v, want 151", got)
	}
	if got := s.Drag(250, 51); got != 255 {
		t.Errorf("Drag(250, 51) = %v, want 255", got)
	}
	if got := s.Drag(10, -51); got != 0 {
		t.Errorf("Drag(10, -51) = %v, want 0", got)
	}

	percent := FloatSlider{Range: Range{Lo: 0, Hi: 100}, Length: 200}
	if got := percent.Tap(50); got != 25 {
		t.Errorf("Tap(50) = %v, want 25", got)
	}
	if got := percent.Tap(-3); got != 0 {
		t.Errorf("Tap(-3) = %v, want 0", got)
	}
	if got := percent.Dot(25); got != 50 {
		t.Errorf("Dot(25) = %v, want 50", got)
	}
}

func TestFloatSliderTapIsAbsolute(t *testing.T) {
	s := FloatSlider{Range: Range{Lo: 0, Hi: 360}, Length: 360}
	// A tap ignores the current value entirely; a drag builds on it.
	if got := s.Tap(90); got != 90 {
		t.Errorf("Tap(90) = %v, want 90", got)
	}
	if got := s.Drag(200, 90); got != 290 {
		t.Errorf("Drag(200, 90) = %v, want 290", got)
	}
}

func TestIntSliderDrag(t *testing.T) {
	s := NewIntSlider(Range{Lo: 0, Hi: 255}, 255, 100)

	v, ok := s.Drag(100, 51)
	if !ok || v != 151 {
		t.Fatalf("Drag(100, 51) = (%v, %v), want (151, true)", v, ok)
	}
	v, ok = s.Drag(151, 200)
	if !ok || v != 255 {
		t.Errorf("Drag(151, 200) = (%v, %v), want (255, true)", v, ok)
	}
	v, ok = s.Drag(255, 10)
	if ok || v != 255 {
		t.Errorf("Drag(255, 10) = (%v, %v), want (255, false)", v, ok)
	}
}

func TestIntSliderAccumulatesSubPixelDrags(t *testing.T) {
	s := NewIntSlider(Range{Lo: 0, Hi: 255}, 255, 100)

	if v, ok := s.Drag(100, 0.4); ok {
		t.Fatalf("first 0.4px drag emitted %v", v)
	}
	v, ok := s.Drag(100, 0.4)
	if !ok || v != 101 {
		t.Errorf("second 0.4px drag = (%v, %v), want (101, true)", v, ok)
	}
	if v, ok := s.Drag(101, 0.4); ok {
		t.Errorf("third 0.4px drag emitted %v", v)
	}
}

func TestIntSliderResyncsToCommittedValue(t *testing.T) {
	s := NewIntSlider(Range{Lo: 0, Hi: 255}, 255, 100)
	v, ok := s.Drag(50, 1)
	if !ok || v != 51 {
		t.Errorf("Drag(50, 1) after external change = (%v, %v), want (51, true)", v, ok)
	}
}

func TestIntSliderTap(t *testing.T) {
	s := NewIntSlider(Range{Lo: 0, Hi: 255}, 510, 0)

	v, ok := s.Tap(0, 255.4)
	if !ok || v != 128 {
		t.Errorf("Tap(0, 255.4) = (%v, %v), want (128, true)", v, ok)
	}
	v, ok = s.Tap(128, 255.2)
	if ok || v != 128 {
		t.Errorf("Tap at same pixel = (%v, %v), want (128, false)", v, ok)
	}
	v, ok = s.Tap(128, -20)
	if !ok || v != 0 {
		t.Errorf("Tap(128, -20) = (%v, %v), want (0, true)", v, ok)
	}
	if got := s.Dot(255); got != 510 {
		t.Errorf("Dot(255) = %v, want 510", got)
	}
}

func TestHueTrackHysteresis(t *testing.T) {
	start := hsb.State{Hue: 180, Saturation: 0.5, Brightness: 0.7}
	track := NewHueTrack(true, 370)

	white := track.Drag(start, -185)
	if white.Hue != -5 || white.Saturation != 0 || white.Brightness != 1 {
		t.Fatalf("drag below 0 = %+v, want white sentinel", white)
	}

	// Jitter inside the white zone must not overwrite the snapshot.
	white = track.Drag(white, 3)
	if white.Saturation != 0 || white.Brightness != 1 {
		t.Fatalf("jitter in white zone = %+v", white)
	}

	back := track.Drag(white, 12)
	if math.Abs(float64(back.Hue)-10) > 1e-9 {
		t.Errorf("hue after return = %v, want 10", back.Hue)
	}
	if back.Saturation != 0.5 || back.Brightness != 0.7 {
		t.Errorf("return from white = %+v, want saturation 0.5, brightness 0.7", back)
	}

	// Once back in range, movement passes saturation and brightness through.
	next := track.Drag(hsb.State{Hue: back.Hue, Saturation: 0.2, Brightness: 0.3}, 20)
	if next.Saturation != 0.2 || next.Brightness != 0.3 {
		t.Errorf("in-range drag = %+v, want saturation 0.2, brightness 0.3", next)
	}
}

func TestHueTrackBlackZone(t *testing.T) {
	start := hsb.State{Hue: 350, Saturation: 0.9, Brightness: 0.4}
	track := NewHueTrack(true, 370)

	black := track.Move(start, 363)
	if black.Saturation != 0 || black.Brightness != 0 {
		t.Fatalf("move above 360 = %+v, want black sentinel", black)
	}

	// Cross straight to the white zone and back: the pre-black snapshot wins.
	white := track.Move(black, -2)
	if white.Brightness != 1 {
		t.Fatalf("move below 0 = %+v, want white sentinel", white)
	}
	back := track.Move(white, 120)
	if back.Saturation != 0.9 || back.Brightness != 0.4 {
		t.Errorf("return = %+v, want saturation 0.9, brightness 0.4", back)
	}
}

func TestHueTrackPlainRange(t *testing.T) {
	start := hsb.State{Hue: 10, Saturation: 0.5, Brightness: 0.5}
	track := NewHueTrack(false, 360)
	if track.Extended() {
		t.Fatal("Extended() = true for plain track")
	}

	got := track.Drag(start, -50)
	if got.Hue != 0 || got.Saturation != 0.5 || got.Brightness != 0.5 {
		t.Errorf("drag below 0 on plain track = %+v, want hue clamped to 0", got)
	}
}

func TestHueTrackLeavingInitialSentinel(t *testing.T) {
	start := hsb.State{Hue: color.HueWhite, Saturation: 0, Brightness: 1}
	track := NewHueTrack(true, 370)

	got := track.Tap(start, 190)
	if math.Abs(float64(got.Hue)-190) > 1e-9 {
		t.Errorf("tap from white sentinel hue = %v, want 190", got.Hue)
	}
	if got.Saturation != 0.35 || got.Brightness != 0.65 {
		t.Errorf("tap from white sentinel = %+v, want saturation 0.35, brightness 0.65", got)
	}
}

func TestExtendedHueTapIgnoresRangeStart(t *testing.T) {
	track := NewHueTrack(true, 255)
	cur := hsb.State{Hue: 30, Saturation: 0.5, Brightness: 0.5}

	got := track.Tap(cur, 100)
	want := 100.0 / 255 * 370
	if math.Abs(float64(got.Hue)-want) > 1e-9 {
		t.Errorf("Tap(100) hue = %v, want %v", got.Hue, want)
	}
	if got := track.Tap(cur, 0); got.Hue != 0 {
		t.Errorf("Tap(0) hue = %v, want 0", got.Hue)
	}
}

func TestRainbowStopsMatchSwatches(t *testing.T) {
	for i, stop := range RainbowStops {
		h := color.Hue(60 * i)
		if got := h.Swatch(); got != stop {
			t.Errorf("RainbowStops[%d] = %v, want %v", i, stop, got)
		}
	}
}

func TestHueTrackGradient(t *testing.T) {
	plain := NewHueTrack(false, 360)
	if got := plain.Gradient(); len(got) != len(RainbowStops) {
		t.Errorf("plain Gradient() has %d stops, want %d", len(got), len(RainbowStops))
	}

	extended := NewHueTrack(true, 370)
	got := extended.Gradient()
	if len(got) != len(RainbowStops)+2 {
		t.Fatalf("extended Gradient() has %d stops, want %d", len(got), len(RainbowStops)+2)
	}
	if got[0] != color.White || got[len(got)-1] != color.Black {
		t.Errorf("extended Gradient() ends = %v, %v, want white and black", got[0], got[len(got)-1])
	}
}
