// Package parser implements a recovering parser for Fluent Translation
// List (FTL) sources.
//
// The parser never fails as a whole: entries that cannot be parsed are
// reported as *Error values and skipped up to the start of the next entry,
// and every successfully parsed entry is kept.
package parser

import (
	"github.com/yaklabco/gofluent/pkg/ftl/ast"
)

// Mode selects what the parser keeps besides messages and terms.
type Mode uint8

const (
	// ModeRuntime skips comments and drops unparsable regions.
	ModeRuntime Mode = iota

	// ModeFull keeps comments and records unparsable regions as Junk.
	ModeFull
)

type parser struct {
	src  string
	ptr  int
	mode Mode
}

// Parse parses source into a resource and the list of syntax errors found,
// in source order. The returned resource is never nil.
//
// Parse is deterministic, performs no I/O and is safe for concurrent use.
func Parse(source string, mode Mode) (*ast.Resource, []*Error) {
	p := &parser{src: source, mode: mode}
	res := &ast.Resource{}

	var errs []*Error
	var pending *ast.Comment
	blankLines := 0

	p.skipBlankBlock()

	for p.ptr < len(p.src) {
		entryStart := p.ptr
		entry, err := p.getEntry()

		// A regular comment directly above a message or term documents it.
		if pending != nil {
			attached := false
			if err == nil && blankLines == 0 {
				switch e := entry.(type) {
				case *ast.Message:
					e.Comment, attached = pending, true
				case *ast.Term:
					e.Comment, attached = pending, true
				}
			}
			if !attached {
				res.Body = append(res.Body, pending)
			}
			pending = nil
		}

		switch {
		case err != nil:
			p.skipToNextEntryStart()
			if p.ptr == entryStart {
				p.ptr++
				p.skipToNextEntryStart()
			}
			err.Slice = ast.Span{Start: entryStart, End: p.ptr}
			errs = append(errs, err)
			if p.mode == ModeFull {
				res.Body = append(res.Body, &ast.Junk{Content: err.Slice})
			}
		case entry == nil:
			// Comment skipped in runtime mode.
		default:
			if c, ok := entry.(*ast.Comment); ok && c.Level == ast.CommentRegular {
				pending = c
			} else {
				res.Body = append(res.Body, entry)
			}
		}

		blankLines = p.skipBlankBlock()
	}

	if pending != nil {
		res.Body = append(res.Body, pending)
	}

	return res, errs
}

func (p *parser) getEntry() (ast.Entry, *Error) {
	switch p.current() {
	case '#':
		if p.mode == ModeRuntime {
			p.skipLine()
			return nil, nil
		}
		return p.getComment()
	case '-':
		return p.getTerm()
	default:
		return p.getMessage()
	}
}

func (p *parser) getMessage() (ast.Entry, *Error) {
	start := p.ptr

	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipBlankInline()
	if err := p.expectByte('='); err != nil {
		return nil, err
	}

	value, err := p.getPattern()
	if err != nil {
		return nil, err
	}

	p.skipBlankBlock()
	attrs := p.getAttributes()

	if value == nil && len(attrs) == 0 {
		return nil, p.errorAt(ErrExpectedMessageField, ast.Span{Start: start, End: p.ptr}, id.Name.Text(p.src))
	}

	return &ast.Message{
		ID:         id,
		Value:      value,
		Attributes: attrs,
		Span:       p.spanFrom(start),
	}, nil
}

func (p *parser) getTerm() (ast.Entry, *Error) {
	start := p.ptr
	p.ptr++ // '-'

	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipBlankInline()
	if err := p.expectByte('='); err != nil {
		return nil, err
	}
	p.skipBlankInline()

	value, err := p.getPattern()
	if err != nil {
		return nil, err
	}

	p.skipBlankBlock()
	attrs := p.getAttributes()

	if value == nil {
		return nil, p.errorAt(ErrExpectedTermField, ast.Span{Start: start, End: p.ptr}, id.Name.Text(p.src))
	}

	return &ast.Term{
		ID:         id,
		Value:      *value,
		Attributes: attrs,
		Span:       p.spanFrom(start),
	}, nil
}

func (p *parser) getAttributes() []ast.Attribute {
	var attrs []ast.Attribute
	for {
		lineStart := p.ptr
		p.skipBlankInline()
		if p.current() != '.' {
			p.ptr = lineStart
			break
		}
		attr, err := p.getAttribute()
		if err != nil {
			// The line is reparsed as an entry and reported there.
			p.ptr = lineStart
			break
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func (p *parser) getAttribute() (ast.Attribute, *Error) {
	start := p.ptr
	p.ptr++ // '.'

	id, err := p.getIdentifier()
	if err != nil {
		return ast.Attribute{}, err
	}

	p.skipBlankInline()
	if err := p.expectByte('='); err != nil {
		return ast.Attribute{}, err
	}

	value, err := p.getPattern()
	if err != nil {
		return ast.Attribute{}, err
	}
	if value == nil {
		return ast.Attribute{}, p.errorHere(ErrMissingValue, "")
	}

	return ast.Attribute{ID: id, Value: *value, Span: p.spanFrom(start)}, nil
}

func (p *parser) getComment() (ast.Entry, *Error) {
	start := p.ptr
	end := p.ptr
	level := 0
	var content []ast.Span

	for p.ptr < len(p.src) {
		lineStart := p.ptr
		lineLevel := p.getCommentLevel()
		if lineLevel == 0 || (level != 0 && lineLevel != level) {
			p.ptr = lineStart
			break
		}
		level = lineLevel

		if p.ptr >= len(p.src) || p.isEOL() {
			content = append(content, ast.Span{Start: p.ptr, End: p.ptr})
		} else {
			if err := p.expectByte(' '); err != nil {
				return nil, err
			}
			textStart := p.ptr
			for p.ptr < len(p.src) && !p.isEOL() {
				p.ptr++
			}
			content = append(content, ast.Span{Start: textStart, End: p.ptr})
		}

		end = p.ptr
		if !p.skipEOL() {
			break
		}
	}

	return &ast.Comment{
		Level:   ast.CommentLevel(level),
		Content: content,
		Span:    ast.Span{Start: start, End: end},
	}, nil
}

func (p *parser) getCommentLevel() int {
	level := 0
	for level < 3 && p.current() == '#' {
		p.ptr++
		level++
	}
	return level
}

func (p *parser) getIdentifier() (ast.Identifier, *Error) {
	start := p.ptr
	if !isAlpha(p.current()) || p.ptr >= len(p.src) {
		return ast.Identifier{}, p.errorHere(ErrExpectedCharRange, "a-zA-Z")
	}
	p.ptr++
	for p.ptr < len(p.src) && isIdentChar(p.src[p.ptr]) {
		p.ptr++
	}
	return ast.Identifier{Name: ast.Span{Start: start, End: p.ptr}}, nil
}

// spanFrom returns the span from start to the current position, excluding
// trailing blank lines and whitespace consumed after the entry.
func (p *parser) spanFrom(start int) ast.Span {
	end := p.ptr
	for end > start && isTrailingSpace(p.src[end-1]) {
		end--
	}
	return ast.Span{Start: start, End: end}
}

func (p *parser) errorHere(kind ErrorKind, arg string) *Error {
	end := p.ptr + 1
	if end > len(p.src) {
		end = len(p.src)
	}
	return p.errorAt(kind, ast.Span{Start: min(p.ptr, end), End: end}, arg)
}

func (p *parser) errorAt(kind ErrorKind, pos ast.Span, arg string) *Error {
	return &Error{Kind: kind, Arg: arg, Pos: pos}
}

func (p *parser) expectByte(b byte) *Error {
	if p.ptr < len(p.src) && p.src[p.ptr] == b {
		p.ptr++
		return nil
	}
	return p.errorHere(ErrExpectedToken, string(b))
}

// current returns the byte at the cursor, or 0 at the end of input.
func (p *parser) current() byte {
	return p.byteAt(p.ptr)
}

func (p *parser) byteAt(i int) byte {
	if i < 0 || i >= len(p.src) {
		return 0
	}
	return p.src[i]
}

func (p *parser) isEOL() bool {
	switch p.current() {
	case '\n':
		return true
	case '\r':
		return p.byteAt(p.ptr+1) == '\n'
	default:
		return false
	}
}

func (p *parser) skipEOL() bool {
	switch {
	case p.current() == '\n':
		p.ptr++
		return true
	case p.current() == '\r' && p.byteAt(p.ptr+1) == '\n':
		p.ptr += 2
		return true
	default:
		return false
	}
}

func (p *parser) skipBlankInline() int {
	start := p.ptr
	for p.ptr < len(p.src) && p.src[p.ptr] == ' ' {
		p.ptr++
	}
	return p.ptr - start
}

func (p *parser) skipBlank() {
	for p.ptr < len(p.src) {
		if p.src[p.ptr] == ' ' || p.src[p.ptr] == '\n' {
			p.ptr++
			continue
		}
		if p.src[p.ptr] == '\r' && p.byteAt(p.ptr+1) == '\n' {
			p.ptr += 2
			continue
		}
		break
	}
}

// skipBlankBlock skips whole blank lines and returns how many were skipped.
func (p *parser) skipBlankBlock() int {
	count := 0
	for {
		start := p.ptr
		p.skipBlankInline()
		if !p.skipEOL() {
			p.ptr = start
			return count
		}
		count++
	}
}

func (p *parser) skipLine() {
	for p.ptr < len(p.src) && p.src[p.ptr] != '\n' {
		p.ptr++
	}
	if p.ptr < len(p.src) {
		p.ptr++
	}
}

// skipToNextEntryStart advances to the next line that can begin an entry.
func (p *parser) skipToNextEntryStart() {
	for p.ptr < len(p.src) {
		b := p.src[p.ptr]
		newLine := p.ptr == 0 || p.src[p.ptr-1] == '\n'
		if newLine && (isAlpha(b) || b == '-' || b == '#') {
			return
		}
		p.ptr++
	}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentChar(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_' || b == '-'
}

func isTrailingSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\r'
}
