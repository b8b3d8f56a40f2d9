// Package chroma is the model behind an interactive color picker. A Picker
// owns the picked color as hue, saturation and brightness, turns area, slider
// and text input into updates of it, and reports every change.
package chroma

import (
	"context"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/field"
	"github.com/jsvensson/chroma/internal/gesture"
	"github.com/jsvensson/chroma/internal/hsb"
	"github.com/jsvensson/chroma/internal/notify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("chroma")

// Picker is a single picking session. It is not safe for concurrent use;
// drive it from one event loop.
type Picker struct {
	cfg   Config
	state *hsb.State
	space ColorSpace

	area   gesture.Plane
	hue    *gesture.HueTrack
	ints   map[Slider]*gesture.IntSlider
	values map[Slider]*field.Value
	hex    *field.Hex

	content  color.Color
	notifier *notify.Notifier
}

// New starts a session on initial. With cfg.ExtendHue, pure white and black
// start on the sentinel ends of the hue track.
func New(initial color.Color, cfg Config) *Picker {
	cfg = cfg.withDefaults()
	state := hsb.New(initial, cfg.ExtendHue)

	p := &Picker{
		cfg:    cfg,
		state:  state,
		space:  cfg.ColorSpace,
		area:   gesture.Plane{Width: cfg.AreaWidth, Height: cfg.AreaHeight},
		hue:    gesture.NewHueTrack(cfg.ExtendHue, cfg.TrackLength),
		ints:   make(map[Slider]*gesture.IntSlider),
		values: make(map[Slider]*field.Value),
		hex:    field.NewHex(state.Color()),
	}
	p.content = state.Color().ContentColor()

	for k := SliderHue; k <= SliderBlue; k++ {
		p.values[k] = &field.Value{Range: k.Range()}
		if k.integer() {
			p.ints[k] = gesture.NewIntSlider(k.Range(), cfg.TrackLength, int(p.SliderValue(k)))
		}
	}
	if cfg.OnPick != nil {
		p.notifier = notify.New(state.Color(), cfg.OnPick)
	}

	log.Debugf("picker opened on %s (hue %.2f, extended %t)", initial, float64(state.Hue), cfg.ExtendHue)
	return p
}

// Close ends the session, delivering any pending color first.
func (p *Picker) Close() {
	if p.notifier != nil {
		p.notifier.Close()
	}
}

// EndGesture marks the end of a drag or of typing. It waits until the final
// color has reached OnPick.
func (p *Picker) EndGesture(ctx context.Context) error {
	if p.notifier == nil {
		return nil
	}
	return p.notifier.Flush(ctx)
}

// Color returns the picked color.
func (p *Picker) Color() color.Color {
	return p.state.Color()
}

// HSB returns a copy of the authoritative state. Its hue may be a sentinel.
func (p *Picker) HSB() hsb.State {
	return *p.state
}

// HSL returns the HSL view of the current state.
func (p *Picker) HSL() hsb.HSL {
	return p.state.HSL()
}

// RGB returns the channels of the current color.
func (p *Picker) RGB() color.RGB {
	return p.state.RGB()
}

// ContentColor returns black or white, whichever reads better on Color.
func (p *Picker) ContentColor() color.Color {
	return p.content
}

// ColorSpace returns the selected input panel.
func (p *Picker) ColorSpace() ColorSpace {
	return p.space
}

// SelectColorSpace switches the input panel. Text fields of the new panel
// start over from the committed color.
func (p *Picker) SelectColorSpace(space ColorSpace) {
	if space == p.space {
		return
	}
	log.Debugf("color space %s -> %s", p.space, space)
	p.space = space
	p.hex = field.NewHex(p.state.Color())
	for k := range p.values {
		p.values[k] = &field.Value{Range: k.Range()}
	}
}

// SetFromPlane maps an absolute position inside a width x height area to
// saturation and brightness.
func (p *Picker) SetFromPlane(x, y, width, height float64) {
	s, b := gesture.MapPlane(gesture.Point{X: x, Y: y}, width, height)
	p.state.SetSaturationBrightness(s, b)
	p.commit("area")
}

// TapArea handles a press at an absolute position on the area.
func (p *Picker) TapArea(x, y float64) {
	s, b := p.area.Tap(gesture.Point{X: x, Y: y})
	p.state.SetSaturationBrightness(s, b)
	p.commit("area tap")
}

// DragArea moves the area pointer by (dx, dy).
func (p *Picker) DragArea(dx, dy float64) {
	s, b := p.area.Drag(p.state.Saturation, p.state.Brightness, gesture.Point{X: dx, Y: dy})
	p.state.SetSaturationBrightness(s, b)
	p.commit("area drag")
}

// AreaDot returns the position of the area's indicator.
func (p *Picker) AreaDot() gesture.Point {
	return p.area.Dot(p.state.Saturation, p.state.Brightness)
}

// TapHue handles a press on the hue track. It reports false when the track
// is hidden.
func (p *Picker) TapHue(pos float64) bool {
	if !p.cfg.ShowHue {
		log.Debug("hue track hidden, ignoring tap")
		return false
	}
	*p.state = p.hue.Tap(*p.state, pos)
	p.commit("hue tap")
	return true
}

// DragHue moves the hue pointer by delta pixels. It reports false when the
// track is hidden.
func (p *Picker) DragHue(delta float64) bool {
	if !p.cfg.ShowHue {
		log.Debug("hue track hidden, ignoring drag")
		return false
	}
	*p.state = p.hue.Drag(*p.state, delta)
	p.commit("hue drag")
	return true
}

// SetHue places the hue track at h. Sentinel hues select white or black
// just as dragging there would.
func (p *Picker) SetHue(h color.Hue) {
	h = color.Hue(p.hue.Slider.Range.Clamp(float64(h)))
	*p.state = p.hue.Move(*p.state, h)
	p.commit("hue")
}

// HueDot returns the offset of the hue track's indicator.
func (p *Picker) HueDot() float64 {
	return p.hue.Slider.Dot(float64(p.state.Hue))
}

// HueGradient returns the color stops painted along the hue track.
func (p *Picker) HueGradient() []color.Color {
	return p.hue.Gradient()
}

// AreaHue returns the fully saturated color at the right edge of the area.
// Sentinel hues paint the area with the nearest real hue.
func (p *Picker) AreaHue() color.Color {
	return p.state.Hue.Clamp().Swatch()
}

// SetFromRGB replaces the color with the given channels.
func (p *Picker) SetFromRGB(rgb color.RGB) {
	p.state.SetRGB(rgb)
	p.commit("rgb")
}

// SetFromColor replaces the color.
func (p *Picker) SetFromColor(c color.Color) {
	p.state.SetColor(c)
	p.commit("color")
}

// HexText returns what the hex field displays.
func (p *Picker) HexText() color.Hex {
	return p.hex.Text()
}

// SetFromHex handles new hex field contents. It reports whether a color was
// applied, which only happens for six valid digits on the hex panel.
func (p *Picker) SetFromHex(text string) bool {
	if p.space != Hex {
		log.Debugf("hex panel not selected, ignoring %q", text)
		return false
	}
	c, ok := p.hex.Type(text)
	if !ok {
		return false
	}
	p.state.SetColor(c)
	p.commit("hex")
	return true
}

// BlurHex handles the hex field losing focus.
func (p *Picker) BlurHex() {
	p.hex.Blur()
}

func (p *Picker) commit(source string) {
	c := p.state.Color()
	p.hex.Sync(c)

	log.Debugf("%s: %s (hue %.2f, saturation %.3f, brightness %.3f)",
		source, c, float64(p.state.Hue), float64(p.state.Saturation), float64(p.state.Brightness))

	if content := c.ContentColor(); content != p.content {
		p.content = content
		if p.cfg.OnContentColor != nil {
			p.cfg.OnContentColor(content)
		}
	}
	if p.notifier != nil {
		p.notifier.Publish(c)
	}
}
