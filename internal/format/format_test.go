package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/config"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already formatted stays same",
			input:    "picker {\n  color_space = \"hsl\"\n}\n",
			expected: "picker {\n  color_space = \"hsl\"\n}\n",
		},
		{
			name:     "indentation normalized",
			input:    "picker {\ncolor_space = \"hsl\"\n}\n",
			expected: "picker {\n  color_space = \"hsl\"\n}\n",
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "a = 1\n\n\n\nb = 2\n",
			expected: "a = 1\n\nb = 2\n",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "picker {\n\n  color_space = \"rgb\"\n}\n",
			expected: "picker {\n  color_space = \"rgb\"\n}\n",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "picker {\n  color_space = \"rgb\"\n\n}\n",
			expected: "picker {\n  color_space = \"rgb\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.input); got != tt.expected {
				t.Errorf("Format() =\n%q\nwant\n%q", got, tt.expected)
			}
		})
	}
}

func TestFormatPartialInput(t *testing.T) {
	got := Format("picker {\ncolor_space = ")
	if !strings.HasPrefix(got, "picker {") {
		t.Errorf("Format() on partial input = %q", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	want := config.Picker{
		InitialColor:         color.Color{R: 51, G: 102, B: 204},
		ColorSpace:           "hex",
		ShowHue:              false,
		IncludeBlackAndWhite: true,
		AreaWidth:            300,
		AreaHeight:           150.5,
		SliderLength:         200,
	}

	src := Encode(want)
	if !strings.Contains(src, `initial_color = "#3366CC"`) {
		t.Errorf("Encode() output missing initial_color:\n%s", src)
	}

	got, err := config.Parse([]byte(src), "encoded.hcl")
	if err != nil {
		t.Fatalf("Parse(Encode()) error: %v\n%s", err, src)
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeIsFormatted(t *testing.T) {
	src := Encode(config.Default())
	if got := Format(src); got != src {
		t.Errorf("Format(Encode()) changed the output:\n%s\nto\n%s", src, got)
	}
}
