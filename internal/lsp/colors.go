package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB) to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: 1.0,
	}
}

// colorFromLSP is the inverse of colorToLSP. Alpha is dropped.
func colorFromLSP(c protocol.Color) color.Color {
	channel := func(v float32) uint8 {
		return uint8(math.Round(math.Min(math.Max(float64(v), 0), 1) * 255))
	}
	return color.Color{R: channel(c.Red), G: channel(c.Green), B: channel(c.Blue)}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// notations renders c in every form a picker file accepts.
func notations(c color.Color) []string {
	h, s, b := c.HSB()
	sl, l := color.HSBToHSL(s, b)
	return []string{
		fmt.Sprintf("%q", c.Hex()),
		fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B),
		fmt.Sprintf("hsb(%.0f, %.2f, %.2f)", float64(h), float64(s), float64(b)),
		fmt.Sprintf("hsl(%.0f, %.2f, %.2f)", float64(h), float64(sl), float64(l)),
	}
}

// colorPresentation produces color presentation options for a given color and range:
// a quoted hex literal and the rgb, hsb and hsl constructor calls. Named color
// references (text starting with `named.`) get no presentations so the picker
// never replaces them with literals.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if strings.HasPrefix(text, "named.") {
		return []protocol.ColorPresentation{}
	}

	forms := notations(colorFromLSP(params.Color))
	out := make([]protocol.ColorPresentation, 0, len(forms))
	for _, form := range forms {
		out = append(out, protocol.ColorPresentation{
			Label: form,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: form,
			},
		})
	}
	return out
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	result := s.getResult(uri)
	return documentColors(result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
