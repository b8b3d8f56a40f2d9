package lsp

import (
	"slices"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func labels(items []protocol.CompletionItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestCompletion_TopLevelBlocks(t *testing.T) {
	items := complete("", protocol.Position{Line: 0, Character: 0})
	if got := labels(items); !slices.Equal(got, []string{"picker"}) {
		t.Fatalf("labels = %v, want [picker]", got)
	}
	if items[0].InsertTextFormat == nil || *items[0].InsertTextFormat != protocol.InsertTextFormatSnippet {
		t.Error("expected snippet insert format")
	}
}

func TestCompletion_PickerBlock(t *testing.T) {
	content := "picker {\n  \n}\n"
	got := labels(complete(content, protocol.Position{Line: 1, Character: 2}))
	want := []string{"color_space", "initial_color", "hue", "area", "slider"}
	if !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestCompletion_SkipsDefinedAttributes(t *testing.T) {
	content := "picker {\n  initial_color = \"#FFFFFF\"\n  \n}\n"
	got := labels(complete(content, protocol.Position{Line: 2, Character: 2}))
	if slices.Contains(got, "initial_color") {
		t.Errorf("labels %v should not offer initial_color again", got)
	}
	if !slices.Contains(got, "color_space") {
		t.Errorf("labels %v should offer color_space", got)
	}
}

func TestCompletion_NestedBlock(t *testing.T) {
	content := "picker {\n  hue {\n    \n  }\n}\n"
	got := labels(complete(content, protocol.Position{Line: 2, Character: 4}))
	want := []string{"include_black_and_white", "show"}
	if !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestCompletion_ColorSpaceValues(t *testing.T) {
	content := "picker {\n  color_space = \n}\n"
	items := complete(content, protocol.Position{Line: 1, Character: 16})
	if got := labels(items); !slices.Equal(got, []string{"hsl", "rgb", "hex"}) {
		t.Fatalf("labels = %v, want [hsl rgb hex]", got)
	}
	if items[0].InsertText == nil || *items[0].InsertText != `"hsl"` {
		t.Errorf("insert text = %v, want quoted value", items[0].InsertText)
	}
}

func TestCompletion_Functions(t *testing.T) {
	content := "picker {\n  initial_color = \n}\n"
	got := labels(complete(content, protocol.Position{Line: 1, Character: 18}))
	want := []string{"rgb", "hsb", "hsl", "brighten", "darken", "named"}
	if !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestCompletion_NamedColors(t *testing.T) {
	content := "picker {\n  initial_color = named.\n}\n"
	items := complete(content, protocol.Position{Line: 1, Character: 24})

	var tomato *protocol.CompletionItem
	for i := range items {
		if items[i].Label == "tomato" {
			tomato = &items[i]
		}
	}
	if tomato == nil {
		t.Fatalf("named completions do not include tomato (%d items)", len(items))
	}
	if tomato.Detail == nil || *tomato.Detail != "#FF6347" {
		t.Errorf("tomato detail = %v, want #FF6347", tomato.Detail)
	}
	if !slices.IsSortedFunc(items, func(a, b protocol.CompletionItem) int {
		if a.Label < b.Label {
			return -1
		}
		if a.Label > b.Label {
			return 1
		}
		return 0
	}) {
		t.Error("named completions are not sorted")
	}
}

func TestCompletion_OutOfRange(t *testing.T) {
	if items := complete("picker {}", protocol.Position{Line: 5}); items != nil {
		t.Errorf("expected nil for position past the end, got %v", items)
	}
}
