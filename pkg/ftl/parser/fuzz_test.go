package parser

import (
	"testing"

	"github.com/yaklabco/gofluent/pkg/ftl/ast"
)

// FuzzParse fuzzes the parser in both modes with random input.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"key = value",
		"key = Hello, { $user }!",
		"-term = Term\n    .attr = A",
		"key = { $n ->\n    [one] one\n   *[other] other\n}",
		"key = { NUMBER($n, style: \"percent\") }",
		"key =\n    multi\n    line",
		"# comment\nkey = v",
		"## group\n### resource",
		"key = {",
		"key = }",
		"{",
		"-",
		"#",
		"key = { \"\\u",
		"key = { F(a: 1, a: 2) }",
		"key = a\r\nb = c\r\n",
		"key = a\r",
		"\x00\xff",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		for _, mode := range []Mode{ModeRuntime, ModeFull} {
			res, errs := Parse(src, mode)
			if res == nil {
				t.Fatal("Parse returned nil resource")
			}

			last := -1
			for _, err := range errs {
				if err.Pos.Start < 0 || err.Pos.End > len(src) {
					t.Errorf("error position %+v outside source of length %d", err.Pos, len(src))
				}
				if err.Slice.Start < last {
					t.Errorf("errors out of order: %+v", err)
				}
				last = err.Slice.Start
			}

			for _, entry := range res.Body {
				s := entry.EntrySpan()
				if s.Start < 0 || s.End > len(src) || s.Start > s.End {
					t.Errorf("entry span %+v outside source of length %d", s, len(src))
				}
				if _, junk := entry.(*ast.Junk); junk && mode == ModeRuntime {
					t.Error("runtime mode kept junk")
				}
			}
		}
	})
}
