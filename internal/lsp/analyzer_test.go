package lsp

import (
	"strings"
	"testing"

	"github.com/jsvensson/chroma/internal/color"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const validPicker = `picker {
  initial_color = "#3366CC"
  color_space   = "rgb"

  hue {
    show                    = true
    include_black_and_white = false
  }

  area {
    width  = 320
    height = 192
  }

  slider {
    length = 255
  }
}
`

func TestAnalyze_ValidPicker(t *testing.T) {
	result := Analyze("picker.hcl", validPicker)

	if len(result.Diagnostics) != 0 {
		for _, d := range result.Diagnostics {
			t.Logf("  diagnostic: [%v] %s", *d.Severity, d.Message)
		}
		t.Fatalf("expected 0 diagnostics, got %d", len(result.Diagnostics))
	}

	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color location, got %d", len(result.Colors))
	}
	cl := result.Colors[0]
	if cl.Color != (color.Color{R: 0x33, G: 0x66, B: 0xCC}) {
		t.Errorf("color = %v, want #3366CC", cl.Color)
	}
	if cl.IsRef {
		t.Error("hex literal reported as reference")
	}
	if cl.Range.Start.Line != 1 || cl.Range.Start.Character != 18 {
		t.Errorf("range start = %+v, want line 1 character 18", cl.Range.Start)
	}
}

func TestAnalyze_EmptyFile(t *testing.T) {
	result := Analyze("picker.hcl", "")
	if len(result.Diagnostics) != 0 {
		t.Errorf("expected 0 diagnostics for empty file, got %d", len(result.Diagnostics))
	}
}

func TestAnalyze_SyntaxError(t *testing.T) {
	result := Analyze("picker.hcl", "picker {\n  initial_color = \n")

	if len(result.Diagnostics) == 0 {
		t.Fatal("expected at least 1 diagnostic for syntax error")
	}
	for _, d := range result.Diagnostics {
		if *d.Severity != protocol.DiagnosticSeverityError {
			t.Errorf("expected error severity, got %v", *d.Severity)
		}
		if d.Source == nil || *d.Source != "chroma" {
			t.Errorf("diagnostic source = %v, want chroma", d.Source)
		}
	}
}

func TestAnalyze_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		severity protocol.DiagnosticSeverity
		want     string
	}{
		{
			name:     "invalid color space",
			content:  "picker {\n  color_space = \"lab\"\n}\n",
			severity: protocol.DiagnosticSeverityError,
			want:     "picker.color_space: unknown color space",
		},
		{
			name:     "short hex",
			content:  "picker {\n  initial_color = \"#12\"\n}\n",
			severity: protocol.DiagnosticSeverityError,
			want:     "picker.initial_color: invalid hex color",
		},
		{
			name:     "undefined named color",
			content:  "picker {\n  initial_color = named.nosuchcolor\n}\n",
			severity: protocol.DiagnosticSeverityError,
			want:     "evaluating picker.initial_color",
		},
		{
			name:     "bad function argument",
			content:  "picker {\n  initial_color = rgb(300, 0, 0)\n}\n",
			severity: protocol.DiagnosticSeverityError,
			want:     "evaluating picker.initial_color",
		},
		{
			name:     "bool expected",
			content:  "picker {\n  hue {\n    show = \"yes\"\n  }\n}\n",
			severity: protocol.DiagnosticSeverityError,
			want:     "picker.hue.show: expected a bool",
		},
		{
			name:     "negative size",
			content:  "picker {\n  area {\n    width = -1\n  }\n}\n",
			severity: protocol.DiagnosticSeverityError,
			want:     "picker.area.width: must be positive",
		},
		{
			name:     "unknown attribute",
			content:  "picker {\n  frobnicate = 1\n}\n",
			severity: protocol.DiagnosticSeverityWarning,
			want:     "unknown attribute picker.frobnicate",
		},
		{
			name:     "unknown nested block",
			content:  "picker {\n  wheel {}\n}\n",
			severity: protocol.DiagnosticSeverityWarning,
			want:     "unknown block picker.wheel",
		},
		{
			name:     "unknown top-level block",
			content:  "theme {}\n",
			severity: protocol.DiagnosticSeverityWarning,
			want:     `unknown block "theme"`,
		},
		{
			name:     "duplicate picker",
			content:  "picker {}\npicker {}\n",
			severity: protocol.DiagnosticSeverityError,
			want:     "duplicate picker block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze("picker.hcl", tt.content)
			if len(result.Diagnostics) != 1 {
				for _, d := range result.Diagnostics {
					t.Logf("  diagnostic: [%v] %s", *d.Severity, d.Message)
				}
				t.Fatalf("expected 1 diagnostic, got %d", len(result.Diagnostics))
			}
			d := result.Diagnostics[0]
			if *d.Severity != tt.severity {
				t.Errorf("severity = %v, want %v", *d.Severity, tt.severity)
			}
			if !strings.Contains(d.Message, tt.want) {
				t.Errorf("message = %q, want it to contain %q", d.Message, tt.want)
			}
		})
	}
}

func TestAnalyze_ColorLocations(t *testing.T) {
	content := `picker {
  initial_color = named.tomato
  unused        = hsl(0, 1, 0.5)
}
`
	result := Analyze("picker.hcl", content)

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 color locations, got %d", len(result.Colors))
	}

	byLine := make(map[uint32]ColorLocation)
	for _, cl := range result.Colors {
		byLine[cl.Range.Start.Line] = cl
	}

	tomato := byLine[1]
	if tomato.Color != (color.Color{R: 255, G: 99, B: 71}) {
		t.Errorf("named.tomato = %v, want #FF6347", tomato.Color)
	}
	if !tomato.IsRef {
		t.Error("named.tomato should be a reference")
	}

	red := byLine[2]
	if red.Color != (color.Color{R: 255}) {
		t.Errorf("hsl(0, 1, 0.5) = %v, want #FF0000", red.Color)
	}
	if red.IsRef {
		t.Error("function call should not be a reference")
	}
}
