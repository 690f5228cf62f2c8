package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/resource"
	"github.com/yaklabco/gofluent/pkg/runner"
)

const diagnosticSource = "gofluent"

func toSeverity(sev config.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case config.SeverityError:
		return protocol.DiagnosticSeverityError
	case config.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	case config.SeverityInfo:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityHint
	}
}

// toDiagnostics converts a checked file into editor diagnostics. A skipped
// file yields an empty, non-nil slice so that publishing it clears any
// earlier diagnostics.
func toDiagnostics(outcome runner.FileOutcome) []protocol.Diagnostic {
	diags := make([]protocol.Diagnostic, 0, len(outcome.Diagnostics))
	if outcome.Resource == nil {
		return diags
	}

	source := diagnosticSource
	for _, d := range outcome.Diagnostics {
		severity := toSeverity(d.Severity)
		diags = append(diags, protocol.Diagnostic{
			Range:    toRange(outcome.Resource, d.Span),
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: d.Kind},
			Source:   &source,
			Message:  d.Message,
		})
	}
	return diags
}

// documentSymbols lists messages and terms with their attributes as
// children.
func documentSymbols(res *resource.Resource) []protocol.DocumentSymbol {
	if res == nil {
		return nil
	}

	var symbols []protocol.DocumentSymbol
	for entry := range res.Entries() {
		var (
			kind  protocol.SymbolKind
			id    ast.Identifier
			attrs []ast.Attribute
		)
		switch e := entry.(type) {
		case *ast.Message:
			kind, id, attrs = protocol.SymbolKindString, e.ID, e.Attributes
		case *ast.Term:
			kind, id, attrs = protocol.SymbolKindConstant, e.ID, e.Attributes
		default:
			continue
		}

		sym := protocol.DocumentSymbol{
			Name:           res.ID(entry),
			Kind:           kind,
			Range:          toRange(res, entry.EntrySpan()),
			SelectionRange: toRange(res, id.Name),
		}
		for _, attr := range attrs {
			sym.Children = append(sym.Children, protocol.DocumentSymbol{
				Name:           "." + res.Text(attr.ID.Name),
				Kind:           protocol.SymbolKindProperty,
				Range:          toRange(res, attr.Span),
				SelectionRange: toRange(res, attr.ID.Name),
			})
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

// completions offers every distinct message and term identifier of the
// document, with a preview of its value.
func completions(res *resource.Resource) []protocol.CompletionItem {
	if res == nil {
		return nil
	}

	var (
		items []protocol.CompletionItem
		seen  = make(map[string]bool)
	)
	for entry := range res.Entries() {
		id := res.ID(entry)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		kind := protocol.CompletionItemKindText
		if _, term := entry.(*ast.Term); term {
			kind = protocol.CompletionItemKindConstant
		}
		detail := firstLine(res.Text(entryBody(entry)))
		items = append(items, protocol.CompletionItem{
			Label:  id,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
