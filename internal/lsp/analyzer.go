package lsp

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/chroma/internal/color"
	"github.com/jsvensson/chroma/internal/config"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/zclconf/go-cty/cty"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagSource = "chroma"

// attrKind is the value an attribute of the picker file expects.
type attrKind int

const (
	kindColor attrKind = iota
	kindColorSpace
	kindBool
	kindSize
)

// schema lists the attributes allowed in each block, keyed by block path.
var schema = map[string]map[string]attrKind{
	"picker": {
		"initial_color": kindColor,
		"color_space":   kindColorSpace,
	},
	"picker.hue": {
		"show":                    kindBool,
		"include_black_and_white": kindBool,
	},
	"picker.area": {
		"width":  kindSize,
		"height": kindSize,
	},
	"picker.slider": {
		"length": kindSize,
	},
}

// AnalysisResult holds all information produced by analyzing a picker file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	IsRef bool // true for references such as named.tomato
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze parses HCL content from memory and produces diagnostics and color
// locations. It collects all errors rather than stopping at the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		for _, d := range diags {
			result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
		}
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	for _, attr := range body.Attributes {
		result.addWarning(attr.SrcRange, fmt.Sprintf("unexpected top-level attribute %q", attr.Name))
	}

	seen := false
	for _, block := range body.Blocks {
		if block.Type != "picker" {
			result.addWarning(block.DefRange(), fmt.Sprintf("unknown block %q", block.Type))
			continue
		}
		if seen {
			result.addError(block.DefRange(), "duplicate picker block")
			continue
		}
		seen = true
		result.analyzeBody(block.Body, "picker", config.EvalContext())
	}

	return result
}

// analyzeBody checks the attributes of one block against the schema and
// recurses into its sub-blocks.
func (r *AnalysisResult) analyzeBody(body *hclsyntax.Body, path string, ctx *hcl.EvalContext) {
	allowed := schema[path]

	for _, attr := range body.Attributes {
		name := path + "." + attr.Name
		kind, known := allowed[attr.Name]
		if !known {
			r.addWarning(attr.SrcRange, fmt.Sprintf("unknown attribute %s", name))
		}

		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			r.addError(attr.SrcRange, fmt.Sprintf("evaluating %s: %s", name, diags.Error()))
			continue
		}

		if c, err := config.ValueColor(val); err == nil {
			r.Colors = append(r.Colors, ColorLocation{
				Range: hclRangeToLSP(attr.Expr.Range()),
				Color: c,
				IsRef: isReferenceExpr(attr.Expr),
			})
		}

		if known {
			if err := checkValue(kind, val); err != nil {
				r.addError(attr.SrcRange, fmt.Sprintf("%s: %s", name, err))
			}
		}
	}

	for _, block := range body.Blocks {
		sub := path + "." + block.Type
		if _, ok := schema[sub]; !ok {
			r.addWarning(block.DefRange(), fmt.Sprintf("unknown block %s", sub))
			continue
		}
		r.analyzeBody(block.Body, sub, ctx)
	}
}

// checkValue validates an evaluated attribute against what the loader will
// accept for it.
func checkValue(kind attrKind, val cty.Value) error {
	if val.IsNull() || !val.IsKnown() {
		return fmt.Errorf("value must be set")
	}
	switch kind {
	case kindColor:
		_, err := config.ValueColor(val)
		return err
	case kindColorSpace:
		if val.Type() != cty.String {
			return fmt.Errorf("expected a string, got %s", val.Type().FriendlyName())
		}
		_, err := config.ParseColorSpace(val.AsString())
		return err
	case kindBool:
		if val.Type() != cty.Bool {
			return fmt.Errorf("expected a bool, got %s", val.Type().FriendlyName())
		}
	case kindSize:
		if val.Type() != cty.Number {
			return fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
		}
		if f, _ := val.AsBigFloat().Float64(); f <= 0 {
			return fmt.Errorf("must be positive, got %g", f)
		}
	}
	return nil
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagError,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &DiagWarning,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. named.tomato) rather than a literal value.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
