// Package resource provides Resource, an immutable Fluent source together
// with the syntax tree parsed from it.
//
// A Resource owns its source string. The tree does not hold substrings of
// the source; every leaf is an ast.Span of byte offsets that is resolved
// against the owned source on demand with Text. Moving or copying a
// *Resource therefore moves the source and the tree as one unit, and no
// part of the tree can outlive the text it describes.
//
// A Resource is never modified after New returns, so it can be shared
// between goroutines without locking.
package resource

import (
	"iter"

	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/ftl/parser"
)

// Resource is a parsed Fluent source.
type Resource struct {
	source string
	body   []ast.Entry
	lines  *ast.LineIndex
	ids    map[string]int
}

// New parses source and returns the resulting Resource.
//
// The returned *Resource is never nil. If the parser reported syntax errors
// the error is a ParseErrors holding all of them in source order, and the
// Resource still holds every entry that could be recovered. Callers that
// only need the well-formed entries may ignore the error.
func New(source string, opts ...Option) (*Resource, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tree, errs := parser.Parse(source, o.mode)

	res := &Resource{
		source: source,
		body:   tree.Body,
		lines:  ast.BuildLines(source),
		ids:    make(map[string]int, len(tree.Body)),
	}

	for i, entry := range res.body {
		id := res.ID(entry)
		if id == "" {
			continue
		}
		if _, seen := res.ids[id]; !seen {
			res.ids[id] = i
		}
	}

	if len(errs) > 0 {
		return res, ParseErrors(errs)
	}
	return res, nil
}

// Source returns the text the Resource was built from, unchanged.
func (r *Resource) Source() string {
	return r.source
}

// Len returns the number of top-level entries.
func (r *Resource) Len() int {
	return len(r.body)
}

// Entries returns a sequence over the top-level entries in source order.
// Each call starts a new, independent traversal.
func (r *Resource) Entries() iter.Seq[ast.Entry] {
	return func(yield func(ast.Entry) bool) {
		for _, entry := range r.body {
			if !yield(entry) {
				return
			}
		}
	}
}

// All returns a sequence of index and entry pairs in source order.
func (r *Resource) All() iter.Seq2[int, ast.Entry] {
	return func(yield func(int, ast.Entry) bool) {
		for i, entry := range r.body {
			if !yield(i, entry) {
				return
			}
		}
	}
}

// Entry returns the entry at index i. It reports false when i is out of
// range.
func (r *Resource) Entry(i int) (ast.Entry, bool) {
	if i < 0 || i >= len(r.body) {
		return nil, false
	}
	return r.body[i], true
}

// Text resolves a span of this Resource's tree to the text it covers.
func (r *Resource) Text(s ast.Span) string {
	return s.Text(r.source)
}

// ID returns the identifier of a message, or of a term prefixed with "-".
// It returns "" for comments and junk.
func (r *Resource) ID(entry ast.Entry) string {
	switch e := entry.(type) {
	case *ast.Message:
		return r.Text(e.ID.Name)
	case *ast.Term:
		return "-" + r.Text(e.ID.Name)
	default:
		return ""
	}
}

// Lookup returns the first message or term with the given identifier.
// Terms are looked up with their leading "-".
func (r *Resource) Lookup(id string) (ast.Entry, bool) {
	i, ok := r.ids[id]
	if !ok {
		return nil, false
	}
	return r.body[i], true
}

// IDs returns the identifiers of all messages and terms in source order,
// including repeated ones.
func (r *Resource) IDs() []string {
	ids := make([]string, 0, len(r.ids))
	for _, entry := range r.body {
		if id := r.ID(entry); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Position converts a byte offset into a 1-based line and column.
func (r *Resource) Position(offset int) ast.Position {
	if r.lines == nil {
		return ast.Position{}
	}
	return r.lines.Position(offset)
}

// Line returns the text of a 1-based line without its line ending, or ""
// if there is no such line.
func (r *Resource) Line(n int) string {
	span, ok := r.LineSpan(n)
	if !ok {
		return ""
	}
	return r.Text(span)
}

// LineSpan returns the byte range of a 1-based line, excluding its line
// ending.
func (r *Resource) LineSpan(n int) (ast.Span, bool) {
	if r.lines == nil {
		return ast.Span{}, false
	}
	return r.lines.Line(n)
}

// LineCount returns the number of lines in the source.
func (r *Resource) LineCount() int {
	if r.lines == nil {
		return 0
	}
	return r.lines.LineCount()
}
