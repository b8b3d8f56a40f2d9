package field

import (
	"math"
	"strconv"

	"github.com/jsvensson/chroma/internal/gesture"
)

// Value is the numeric input next to a slider. Only whole numbers inside
// Range are applied; anything else is ignored while the field has focus.
type Value struct {
	Range gesture.Range

	empty bool
}

// Text returns what the field displays for the committed value.
func (f *Value) Text(committed float64) string {
	if f.empty {
		return ""
	}
	return strconv.Itoa(int(math.Round(committed)))
}

// Type handles new field contents and returns the value to apply, if any.
// Clearing the field is allowed and shown as empty until focus moves away.
func (f *Value) Type(input string) (float64, bool) {
	if input == "" {
		f.empty = true
		return 0, false
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		log.Debugf("ignoring value input %q: %s", input, err)
		return 0, false
	}
	v := float64(n)
	if !f.Range.Contains(v) {
		log.Debugf("ignoring value input %d: outside [%g, %g]", n, f.Range.Lo, f.Range.Hi)
		return 0, false
	}
	f.empty = false
	return v, true
}

// Blur handles focus loss. A field left empty shows the committed value
// again and reports it for re-application.
func (f *Value) Blur(committed float64) (float64, bool) {
	if !f.empty {
		return 0, false
	}
	f.empty = false
	return committed, true
}
