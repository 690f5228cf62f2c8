// Package catalog summarizes the messages and terms of a Fluent resource
// and renders the summary as Markdown or HTML, for translators and
// reviewers who do not read .ftl files directly.
package catalog

import (
	"slices"
	"strings"

	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/resource"
)

// maxPreview is the number of runes of a value shown in a catalog.
const maxPreview = 60

// Entry describes one message or term.
type Entry struct {
	// ID is the identifier, with a leading "-" for terms.
	ID   string
	Term bool

	// Line is the 1-based line of the identifier.
	Line int

	// Value is a single-line preview of the value, or "" for messages
	// that only have attributes.
	Value string

	Attributes []string

	// Variables and References are listed once each, in order of first
	// use. References name other messages and terms.
	Variables  []string
	References []string

	// Comment is the text of the attached comment, if the resource was
	// parsed with comments.
	Comment string
}

// Catalog is the ordered list of entries of one resource.
type Catalog struct {
	Title   string
	Entries []Entry
}

// Build collects the messages and terms of res in source order.
func Build(title string, res *resource.Resource) *Catalog {
	cat := &Catalog{Title: title}

	for entry := range res.Entries() {
		var (
			value   *ast.Pattern
			attrs   []ast.Attribute
			comment *ast.Comment
		)
		switch e := entry.(type) {
		case *ast.Message:
			value, attrs, comment = e.Value, e.Attributes, e.Comment
		case *ast.Term:
			value, attrs, comment = &e.Value, e.Attributes, e.Comment
		default:
			continue
		}

		id, _ := ast.ID(entry)
		item := Entry{
			ID:   res.ID(entry),
			Line: res.Position(id.Name.Start).Line,
		}
		_, item.Term = entry.(*ast.Term)

		if value != nil {
			item.Value = preview(res, value)
		}
		for _, attr := range attrs {
			item.Attributes = append(item.Attributes, res.Text(attr.ID.Name))
		}
		if comment != nil {
			lines := make([]string, 0, len(comment.Content))
			for _, line := range comment.Content {
				lines = append(lines, res.Text(line))
			}
			item.Comment = strings.TrimSpace(strings.Join(lines, " "))
		}

		item.Variables, item.References = references(res, entry)
		cat.Entries = append(cat.Entries, item)
	}

	return cat
}

// Messages returns the entries that are messages.
func (c *Catalog) Messages() []Entry {
	return slices.DeleteFunc(slices.Clone(c.Entries), func(e Entry) bool { return e.Term })
}

// Terms returns the entries that are terms.
func (c *Catalog) Terms() []Entry {
	return slices.DeleteFunc(slices.Clone(c.Entries), func(e Entry) bool { return !e.Term })
}

func references(res *resource.Resource, entry ast.Entry) ([]string, []string) {
	var vars, refs []string
	add := func(list []string, name string) []string {
		if slices.Contains(list, name) {
			return list
		}
		return append(list, name)
	}

	//nolint:errcheck // The callback never fails.
	ast.Walk(entry, func(n any) error {
		switch node := n.(type) {
		case *ast.VariableReference:
			vars = add(vars, "$"+res.Text(node.ID.Name))
		case *ast.MessageReference:
			refs = add(refs, res.Text(node.ID.Name))
		case *ast.TermReference:
			refs = add(refs, "-"+res.Text(node.ID.Name))
		}
		return nil
	})

	return vars, refs
}

// preview returns the source text of a pattern collapsed onto one line.
func preview(res *resource.Resource, p *ast.Pattern) string {
	if len(p.Elements) == 0 {
		return ""
	}
	span := ast.Span{Start: elementSpan(p.Elements[0]).Start, End: elementSpan(p.Elements[len(p.Elements)-1]).End}

	text := strings.Join(strings.Fields(res.Text(span)), " ")
	if runes := []rune(text); len(runes) > maxPreview {
		text = string(runes[:maxPreview-1]) + "…"
	}
	return text
}

func elementSpan(elem ast.PatternElement) ast.Span {
	switch el := elem.(type) {
	case *ast.TextElement:
		return el.Value
	case *ast.Placeable:
		return el.Span
	default:
		return ast.Span{}
	}
}
