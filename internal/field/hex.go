// Package field implements the text inputs of the picker: the hex field and
// the numeric fields next to each slider.
package field

import (
	"github.com/jsvensson/chroma/internal/color"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("chroma.field")

// Hex is the hex input field. It shows the committed color until the user
// types, and keeps partial input as typed without touching the color.
type Hex struct {
	text      color.Hex
	committed color.Color
}

// NewHex returns a field showing c.
func NewHex(c color.Color) *Hex {
	return &Hex{text: color.NewHex(c), committed: c}
}

// Text returns what the field displays.
func (f *Hex) Text() color.Hex {
	return f.text
}

// Sync tells the field about the committed color. A color different from the
// last one replaces whatever text is shown.
func (f *Hex) Sync(c color.Color) {
	if c == f.committed {
		return
	}
	f.committed = c
	f.text = color.NewHex(c)
}

// Type handles new field contents. Characters outside the hex alphabet are
// dropped and the text is cut to six digits. It returns a color only when
// the text is complete and parses.
func (f *Hex) Type(input string) (color.Color, bool) {
	f.text = color.FilterHex(input)
	if !f.text.Complete() {
		return color.Color{}, false
	}
	c, err := f.text.Color()
	if err != nil {
		log.Debugf("ignoring hex input %q: %s", input, err)
		return color.Color{}, false
	}
	return c, true
}

// Blur handles focus loss: incomplete text reverts to the committed color.
func (f *Hex) Blur() {
	if !f.text.Complete() {
		f.text = color.NewHex(f.committed)
	}
}
