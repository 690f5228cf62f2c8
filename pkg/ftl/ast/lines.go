package ast

import "sort"

// LineInfo holds metadata for a single line of a source.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of source).
	EndOffset int
}

// LineIndex maps byte offsets of a source to line/column positions.
// It is immutable once built.
type LineIndex struct {
	size  int
	lines []LineInfo
}

// BuildLines constructs the line index of source.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(source string) *LineIndex {
	idx := &LineIndex{size: len(source)}
	if len(source) == 0 {
		return idx
	}

	lineStart := 0
	for i := range len(source) {
		if source[i] != '\n' {
			continue
		}

		newlineStart := i
		if i > 0 && source[i-1] == '\r' {
			newlineStart = i - 1
		}

		idx.lines = append(idx.lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    i + 1,
		})
		lineStart = i + 1
	}

	// Last line, possibly empty when the source ends with a newline.
	idx.lines = append(idx.lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(source),
		EndOffset:    len(source),
	})

	return idx
}

// LineCount returns the number of lines.
func (x *LineIndex) LineCount() int {
	return len(x.lines)
}

// Position converts a byte offset to a 1-based line and column.
// Offsets at or past the end map to the end of the last line.
// Returns the zero Position for negative offsets or an empty index.
func (x *LineIndex) Position(offset int) Position {
	if offset < 0 || len(x.lines) == 0 {
		return Position{}
	}

	if offset >= x.size {
		last := x.lines[len(x.lines)-1]
		return Position{Line: len(x.lines), Column: offset - last.StartOffset + 1}
	}

	lineIdx := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].EndOffset > offset
	})
	if lineIdx >= len(x.lines) {
		lineIdx = len(x.lines) - 1
	}

	return Position{Line: lineIdx + 1, Column: offset - x.lines[lineIdx].StartOffset + 1}
}

// Range converts a span to start and end positions.
func (x *LineIndex) Range(s Span) Range {
	return Range{Start: x.Position(s.Start), End: x.Position(s.End)}
}

// Line returns the 1-based line's span, excluding the newline.
func (x *LineIndex) Line(line int) (Span, bool) {
	if line < 1 || line > len(x.lines) {
		return Span{}, false
	}
	info := x.lines[line-1]
	return Span{Start: info.StartOffset, End: info.NewlineStart}, true
}
