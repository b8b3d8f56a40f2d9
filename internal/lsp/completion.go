package lsp

import (
	"sort"
	"strings"

	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/config"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/image/colornames"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// subBlocks lists the blocks allowed directly inside each block path.
var subBlocks = map[string][]string{
	"":       {"picker"},
	"picker": {"hue", "area", "slider"},
}

// functionSnippets are the color constructors and adjusters of picker files.
var functionSnippets = []struct {
	name, detail, snippet string
}{
	{"rgb", "rgb(red, green, blue)", "rgb(${1:255}, ${2:255}, ${3:255})"},
	{"hsb", "hsb(hue, saturation, brightness)", "hsb(${1:0}, ${2:1}, ${3:1})"},
	{"hsl", "hsl(hue, saturation, lightness)", "hsl(${1:0}, ${2:1}, ${3:0.5})"},
	{"brighten", "brighten(color, percentage)", "brighten(${1:color}, ${2:0.1})"},
	{"darken", "darken(color, percentage)", "darken(${1:color}, ${2:0.1})"},
}

// complete produces completion items given document content and cursor
// position. This is the core logic, decoupled from the LSP protocol handler
// for testability.
func complete(content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if strings.Contains(textBeforeCursor, "named.") {
		return namedCompletions()
	}

	path := blockPath(lines, int(pos.Line))

	if attr, ok := valuePosition(textBeforeCursor); ok {
		if path == "picker" && attr == "color_space" {
			return colorSpaceCompletions()
		}
		return valueCompletions()
	}

	return blockCompletions(path, findDefinedAttributes(lines, int(pos.Line)))
}

// valuePosition reports whether the cursor sits right after "name =" and
// returns the attribute name.
func valuePosition(textBeforeCursor string) (string, bool) {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return "", false
	}
	if strings.TrimSpace(trimmed[eqIdx+1:]) != "" {
		return "", false
	}
	return strings.TrimSpace(trimmed[:eqIdx]), true
}

// valueCompletions returns function snippets and the named color trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	items := make([]protocol.CompletionItem, 0, len(functionSnippets)+1)
	for _, fn := range functionSnippets {
		snippet := fn.snippet
		items = append(items, protocol.CompletionItem{
			Label:            fn.name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(fn.detail),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	namedSnippet := "named."
	items = append(items, protocol.CompletionItem{
		Label:      "named",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("CSS color names"),
		InsertText: &namedSnippet,
	})
	return items
}

// namedCompletions lists every CSS color name with its hex value.
func namedCompletions() []protocol.CompletionItem {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)

	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(names))
	for _, name := range names {
		c := colornames.Map[name]
		hex := color.Color{R: c.R, G: c.G, B: c.B}.Hex()
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: &hex,
		})
	}
	return items
}

func colorSpaceCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindEnumMember
	items := make([]protocol.CompletionItem, 0, len(config.ColorSpaces))
	for _, space := range config.ColorSpaces {
		text := `"` + space + `"`
		items = append(items, protocol.CompletionItem{
			Label:      space,
			Kind:       &kind,
			InsertText: &text,
		})
	}
	return items
}

// blockCompletions offers the attributes not yet defined in the block at
// path, followed by its sub-blocks as snippets.
func blockCompletions(path string, defined map[string]bool) []protocol.CompletionItem {
	var items []protocol.CompletionItem

	attrs := make([]string, 0, len(schema[path]))
	for name := range schema[path] {
		if !defined[name] {
			attrs = append(attrs, name)
		}
	}
	sort.Strings(attrs)
	for _, name := range attrs {
		items = append(items, protocol.CompletionItem{
			Label: name,
			Kind:  completionKindPtr(protocol.CompletionItemKindProperty),
		})
	}

	snippetFormat := protocol.InsertTextFormatSnippet
	for _, name := range subBlocks[path] {
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindSnippet),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// blockPath scans from the top of the file down to the cursor line and
// returns the dotted path of the block the cursor is in, using brace nesting.
// The root is "".
func blockPath(lines []string, cursorLine int) string {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		// The block name is the first word on the line
		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				name := parts[0]
				for range opens {
					stack = append(stack, name)
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	return strings.Join(stack, ".")
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return complete(content, params.Position), nil
}
