package chroma

import (
	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/gesture"
)

// SliderValue returns the committed value a slider shows: HSL hue in
// degrees, HSL saturation and lightness in percent, or an RGB channel.
func (p *Picker) SliderValue(k Slider) float64 {
	switch k {
	case SliderHue:
		return float64(p.state.HSL().Hue)
	case SliderSaturation:
		return float64(p.state.HSL().Saturation) * 100
	case SliderLightness:
		return float64(p.state.HSL().Lightness) * 100
	}
	rgb := p.state.RGB()
	switch k {
	case SliderRed:
		return float64(rgb.Red)
	case SliderGreen:
		return float64(rgb.Green)
	default:
		return float64(rgb.Blue)
	}
}

// SliderText returns what the numeric field next to a slider displays.
func (p *Picker) SliderText(k Slider) string {
	return p.values[k].Text(p.SliderValue(k))
}

// SliderDot returns the offset of a slider's indicator.
func (p *Picker) SliderDot(k Slider) float64 {
	if s, ok := p.ints[k]; ok {
		return s.Dot(int(p.SliderValue(k)))
	}
	return p.floatSlider(k).Dot(p.SliderValue(k))
}

// TapSlider handles a press on a slider track. Sliders outside the selected
// color space ignore input and report false.
func (p *Picker) TapSlider(k Slider, pos float64) bool {
	if !p.accepts(k) {
		return false
	}
	if s, ok := p.ints[k]; ok {
		v, changed := s.Tap(int(p.SliderValue(k)), pos)
		if changed {
			p.applySlider(k, float64(v))
		}
		return true
	}
	p.applySlider(k, p.floatSlider(k).Tap(pos))
	return true
}

// DragSlider moves a slider by delta pixels.
func (p *Picker) DragSlider(k Slider, delta float64) bool {
	if !p.accepts(k) {
		return false
	}
	if s, ok := p.ints[k]; ok {
		v, changed := s.Drag(int(p.SliderValue(k)), delta)
		if changed {
			p.applySlider(k, float64(v))
		}
		return true
	}
	p.applySlider(k, p.floatSlider(k).Drag(p.SliderValue(k), delta))
	return true
}

// TypeSlider handles new contents of a slider's numeric field. It reports
// whether a value was applied.
func (p *Picker) TypeSlider(k Slider, text string) bool {
	if !p.accepts(k) {
		return false
	}
	v, ok := p.values[k].Type(text)
	if !ok {
		return false
	}
	p.applySlider(k, v)
	return true
}

// BlurSlider handles a slider's numeric field losing focus. An emptied field
// re-applies the committed value.
func (p *Picker) BlurSlider(k Slider) {
	if v, ok := p.values[k].Blur(p.SliderValue(k)); ok {
		p.applySlider(k, v)
	}
}

func (p *Picker) accepts(k Slider) bool {
	if k.Space() != p.space {
		log.Debugf("slider %s is not on the %s panel, ignoring input", k, p.space)
		return false
	}
	return true
}

func (p *Picker) floatSlider(k Slider) gesture.FloatSlider {
	return gesture.FloatSlider{Range: k.Range(), Length: p.cfg.TrackLength}
}

func (p *Picker) applySlider(k Slider, v float64) {
	hsl := p.state.HSL()
	switch k {
	case SliderHue:
		p.state.Hue = color.Hue(v)
	case SliderSaturation:
		p.state.SetSaturationBrightness(hsl.WithSaturation(color.SaturationL(v / 100)))
	case SliderLightness:
		p.state.SetSaturationBrightness(hsl.WithLightness(color.Lightness(v / 100)))
	default:
		rgb := p.state.RGB()
		switch k {
		case SliderRed:
			rgb.Red = int(v)
		case SliderGreen:
			rgb.Green = int(v)
		case SliderBlue:
			rgb.Blue = int(v)
		}
		p.state.SetRGB(rgb)
	}
	p.commit("slider " + k.String())
}
