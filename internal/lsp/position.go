package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/resource"
)

// Editors address text in zero-based lines and UTF-16 code units, while
// resources use byte offsets. The helpers below convert between the two.

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func toPosition(res *resource.Resource, offset int) protocol.Position {
	offset = max(0, min(offset, len(res.Source())))

	pos := res.Position(offset)
	line, ok := res.LineSpan(pos.Line)
	if !ok {
		return protocol.Position{}
	}

	end := min(offset, line.End)
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(utf16Len(res.Source()[line.Start:end])),
	}
}

func toRange(res *resource.Resource, span ast.Span) protocol.Range {
	return protocol.Range{
		Start: toPosition(res, span.Start),
		End:   toPosition(res, span.End),
	}
}

// toOffset converts an editor position back to a byte offset. Positions past
// the end of a line clamp to the line end; lines past the end of the source
// clamp to the source length.
func toOffset(res *resource.Resource, pos protocol.Position) int {
	line, ok := res.LineSpan(int(pos.Line) + 1)
	if !ok {
		return len(res.Source())
	}

	text := res.Source()[line.Start:line.End]
	units := 0
	for i, r := range text {
		if units >= int(pos.Character) {
			return line.Start + i
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return line.End
}
