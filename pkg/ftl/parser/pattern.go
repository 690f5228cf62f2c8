package parser

import "github.com/yaklabco/gofluent/pkg/ftl/ast"

type textRole uint8

const (
	roleInitialLineStart textRole = iota
	roleLineStart
	roleContinuation
)

type textTermination uint8

const (
	termLineFeed textTermination = iota
	termCRLF
	termPlaceableStart
	termEOF
)

// patternPart is a pattern element before common indentation is known.
type patternPart struct {
	placeable *ast.Placeable
	start     int
	end       int
	indent    int
	role      textRole
}

// getPattern parses a single or multiline pattern. It returns nil when no
// non-blank content is found.
func (p *parser) getPattern() (*ast.Pattern, *Error) {
	var parts []patternPart
	lastNonBlank := -1
	commonIndent := -1

	p.skipBlankInline()

	role := roleInitialLineStart
	if p.skipEOL() {
		p.skipBlankBlock()
		role = roleLineStart
	}

	for p.ptr < len(p.src) {
		if p.src[p.ptr] == '{' {
			if role == roleLineStart {
				commonIndent = 0
			}
			placeable, err := p.getPlaceable()
			if err != nil {
				return nil, err
			}
			lastNonBlank = len(parts)
			parts = append(parts, patternPart{placeable: placeable})
			role = roleContinuation
			continue
		}

		sliceStart := p.ptr
		indent := 0
		if role == roleLineStart {
			indent = p.skipBlankInline()
			if p.ptr >= len(p.src) {
				break
			}
			b := p.src[p.ptr]
			if indent == 0 {
				if !p.isEOL() {
					break
				}
			} else if !isPatternContinuation(b) {
				p.ptr = sliceStart
				break
			}
		}

		start, end, nonBlank, termination, err := p.getTextSlice()
		if err != nil {
			return nil, err
		}

		if start != end {
			if role == roleLineStart && nonBlank && (commonIndent < 0 || indent < commonIndent) {
				commonIndent = indent
			}
			if role != roleLineStart || nonBlank || termination == termLineFeed {
				if nonBlank {
					lastNonBlank = len(parts)
				}
				parts = append(parts, patternPart{start: sliceStart, end: end, indent: indent, role: role})
			}
		}

		if termination == termLineFeed {
			role = roleLineStart
		} else {
			role = roleContinuation
		}
	}

	if lastNonBlank < 0 {
		return nil, nil
	}

	elements := make([]ast.PatternElement, 0, lastNonBlank+1)
	for i, part := range parts[:lastNonBlank+1] {
		if part.placeable != nil {
			elements = append(elements, part.placeable)
			continue
		}

		start := part.start
		if part.role == roleLineStart {
			if commonIndent >= 0 {
				start += min(part.indent, commonIndent)
			} else {
				start += part.indent
			}
		}

		end := part.end
		if i == lastNonBlank {
			for end > start && isPatternTrailing(p.src[end-1]) {
				end--
			}
		}

		elements = append(elements, &ast.TextElement{Value: ast.Span{Start: start, End: end}})
	}

	return &ast.Pattern{Elements: elements}, nil
}

// getTextSlice consumes text up to a line end, a placeable or the end of
// input. A CRLF terminates the slice before the CR and leaves the cursor on
// the LF, which the caller reads as its own blank slice.
func (p *parser) getTextSlice() (int, int, bool, textTermination, *Error) {
	start := p.ptr
	nonBlank := false

	for p.ptr < len(p.src) {
		switch b := p.src[p.ptr]; {
		case b == ' ':
			p.ptr++
		case b == '\n':
			p.ptr++
			return start, p.ptr, nonBlank, termLineFeed, nil
		case b == '\r' && p.byteAt(p.ptr+1) == '\n':
			p.ptr++
			return start, p.ptr - 1, nonBlank, termCRLF, nil
		case b == '{':
			return start, p.ptr, nonBlank, termPlaceableStart, nil
		case b == '}':
			return 0, 0, false, termEOF, p.errorHere(ErrUnbalancedClosingBrace, "")
		default:
			nonBlank = true
			p.ptr++
		}
	}

	return start, p.ptr, nonBlank, termEOF, nil
}

// isPatternContinuation reports whether an indented line starting with b
// continues the current pattern.
func isPatternContinuation(b byte) bool {
	return b != '}' && b != '.' && b != '[' && b != '*'
}

func isPatternTrailing(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
