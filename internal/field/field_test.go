package field

import (
	"testing"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/gesture"
)

func TestHexTyping(t *testing.T) {
	f := NewHex(color.Color{R: 51, G: 102, B: 204})
	if got := f.Text(); got != "3366CC" {
		t.Fatalf("Text() = %q, want %q", got, "3366CC")
	}

	if c, ok := f.Type("ff00g1"); ok {
		t.Errorf(`Type("ff00g1") emitted %v`, c)
	}
	if got := f.Text(); got != "FF001" {
		t.Errorf(`Text() after "ff00g1" = %q, want "FF001"`, got)
	}

	c, ok := f.Type("FF0011")
	if !ok {
		t.Fatal(`Type("FF0011") emitted nothing`)
	}
	if want := (color.Color{R: 255, G: 0, B: 17}); c != want {
		t.Errorf(`Type("FF0011") = %v, want %v`, c, want)
	}
}

func TestHexTruncates(t *testing.T) {
	f := NewHex(color.Black)
	c, ok := f.Type("abcdef99")
	if !ok || c != (color.Color{R: 0xAB, G: 0xCD, B: 0xEF}) {
		t.Errorf(`Type("abcdef99") = (%v, %v)`, c, ok)
	}
	if got := f.Text(); got != "ABCDEF" {
		t.Errorf("Text() = %q, want %q", got, "ABCDEF")
	}
}

func TestHexBlur(t *testing.T) {
	f := NewHex(color.White)
	f.Type("12")
	f.Blur()
	if got := f.Text(); got != "FFFFFF" {
		t.Errorf("Text() after blur = %q, want %q", got, "FFFFFF")
	}

	f.Type("123456")
	f.Blur()
	if got := f.Text(); got != "123456" {
		t.Errorf("complete text after blur = %q, want %q", got, "123456")
	}
}

func TestHexSync(t *testing.T) {
	f := NewHex(color.White)
	f.Type("12")

	// Same committed color: partial text survives.
	f.Sync(color.White)
	if got := f.Text(); got != "12" {
		t.Errorf("Text() after same-color sync = %q, want %q", got, "12")
	}

	f.Sync(color.Color{R: 1, G: 2, B: 3})
	if got := f.Text(); got != "010203" {
		t.Errorf("Text() after sync = %q, want %q", got, "010203")
	}
}

func TestValueTyping(t *testing.T) {
	f := &Value{Range: gesture.Range{Lo: 0, Hi: 255}}

	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"128", 128, true},
		{"0", 0, true},
		{"255", 255, true},
		{"256", 0, false},
		{"-1", 0, false},
		{"12a", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		got, ok := f.Type(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Type(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValueEmptyThenBlur(t *testing.T) {
	f := &Value{Range: gesture.Range{Lo: 0, Hi: 100}}

	if got := f.Text(42.6); got != "43" {
		t.Errorf("Text(42.6) = %q, want %q", got, "43")
	}
	if _, ok := f.Type(""); ok {
		t.Error(`Type("") applied a value`)
	}
	if got := f.Text(42.6); got != "" {
		t.Errorf("Text() while empty = %q, want empty", got)
	}

	// Out-of-range input does not end the empty state.
	f.Type("900")
	if got := f.Text(42.6); got != "" {
		t.Errorf("Text() after rejected input = %q, want empty", got)
	}

	v, ok := f.Blur(42.6)
	if !ok || v != 42.6 {
		t.Errorf("Blur(42.6) = (%v, %v), want (42.6, true)", v, ok)
	}
	if got := f.Text(42.6); got != "43" {
		t.Errorf("Text() after blur = %q, want %q", got, "43")
	}
	if _, ok := f.Blur(42.6); ok {
		t.Error("second Blur() re-applied the value")
	}
}
