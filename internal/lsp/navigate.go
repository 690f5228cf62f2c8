package lsp

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/resource"
)

// reference is a message or term reference under the cursor.
type reference struct {
	id   string
	span ast.Span
}

// referenceAt returns the message or term reference whose identifier
// covers offset.
func referenceAt(res *resource.Resource, offset int) (reference, bool) {
	for entry := range res.Entries() {
		span := entry.EntrySpan()
		if offset < span.Start || offset > span.End {
			continue
		}

		var found reference
		ok := false
		//nolint:errcheck // the walk function never fails
		ast.Walk(entry, func(n any) error {
			switch ref := n.(type) {
			case *ast.MessageReference:
				if covers(ref.ID.Name, offset) {
					found, ok = reference{id: res.Text(ref.ID.Name), span: ref.ID.Name}, true
				}
			case *ast.TermReference:
				if covers(ref.ID.Name, offset) {
					found, ok = reference{id: "-" + res.Text(ref.ID.Name), span: ref.ID.Name}, true
				}
			}
			return nil
		})
		if ok {
			return found, true
		}
	}
	return reference{}, false
}

// entryAt returns the message or term whose identifier covers offset.
func entryAt(res *resource.Resource, offset int) (ast.Entry, bool) {
	for entry := range res.Entries() {
		if id, ok := ast.ID(entry); ok && covers(id.Name, offset) {
			return entry, true
		}
	}
	return nil, false
}

// covers is like Span.Contains but includes the end offset, so a cursor
// placed right after an identifier still selects it.
func covers(s ast.Span, offset int) bool {
	return offset >= s.Start && offset <= s.End
}

func definition(doc *document, pos protocol.Position) []protocol.Location {
	res := doc.outcome.Resource
	if res == nil {
		return nil
	}

	ref, ok := referenceAt(res, toOffset(res, pos))
	if !ok {
		return nil
	}
	target, ok := res.Lookup(ref.id)
	if !ok {
		return nil
	}
	id, _ := ast.ID(target)
	return []protocol.Location{{URI: doc.uri, Range: toRange(res, id.Name)}}
}

func hover(doc *document, pos protocol.Position) *protocol.Hover {
	res := doc.outcome.Resource
	if res == nil {
		return nil
	}

	offset := toOffset(res, pos)

	var (
		target ast.Entry
		span   ast.Span
	)
	if ref, ok := referenceAt(res, offset); ok {
		entry, found := res.Lookup(ref.id)
		if !found {
			r := toRange(res, ref.span)
			return &protocol.Hover{
				Contents: protocol.MarkupContent{
					Kind:  protocol.MarkupKindMarkdown,
					Value: fmt.Sprintf("`%s` is not defined in this file", ref.id),
				},
				Range: &r,
			}
		}
		target, span = entry, ref.span
	} else if entry, ok := entryAt(res, offset); ok {
		id, _ := ast.ID(entry)
		target, span = entry, id.Name
	} else {
		return nil
	}

	r := toRange(res, span)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "```fluent\n" + res.Text(entryBody(target)) + "\n```",
		},
		Range: &r,
	}
}

// entryBody is the entry's span without an attached comment.
func entryBody(entry ast.Entry) ast.Span {
	span := entry.EntrySpan()
	if id, ok := ast.ID(entry); ok {
		start := id.Name.Start
		if _, term := entry.(*ast.Term); term {
			start--
		}
		span.Start = start
	}
	return span
}
