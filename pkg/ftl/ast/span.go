package ast

// Span is a half-open byte range [Start, End) into the source a tree was
// parsed from. Spans never hold the text itself; callers resolve them
// against the owning source.
type Span struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset is within this span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Text resolves the span against source.
// Returns "" if the span does not fit inside source.
func (s Span) Text(source string) string {
	if s.Start < 0 || s.End > len(source) || s.Start > s.End {
		return ""
	}
	return source[s.Start:s.End]
}

// Position represents a 1-based line and column in a source.
// Columns count bytes, not runes.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Range is a span expressed as start and end positions.
type Range struct {
	Start Position
	End   Position
}

// IsSingleLine returns true if start and end are on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}
