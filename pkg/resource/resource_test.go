package resource_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofluent/pkg/ftl/ast"
	"github.com/yaklabco/gofluent/pkg/ftl/parser"
	"github.com/yaklabco/gofluent/pkg/resource"
)

func TestNew_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		source      string
		wantEntries int
		wantErr     bool
	}{
		{"simple message", "hello-world = Hello World!", 1, false},
		{"message with variable", "hello-world = Hello, { $user }!", 1, false},
		{"one good one broken", "good = fine\nbad = { $x\n", 1, true},
		{"empty", "", 0, false},
		{"only blank lines", "\n\n\n", 0, false},
		{"comments only", "# one\n## two\n", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := resource.New(tt.source)
			require.NotNil(t, res)

			if tt.wantErr {
				require.Error(t, err)
				assert.NotEmpty(t, resource.Diagnostics(err))
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.source, res.Source())
			assert.Equal(t, tt.wantEntries, res.Len())
		})
	}
}

func TestNew_SuccessReturnsUntypedNil(t *testing.T) {
	t.Parallel()

	_, err := resource.New("key = value")

	// A nil ParseErrors stored in the error interface would compare non-nil.
	assert.True(t, err == nil)
}

func TestNew_EntryAccess(t *testing.T) {
	t.Parallel()

	res, err := resource.New("hello-world = Hello, { $user }!")
	require.NoError(t, err)

	entry, ok := res.Entry(0)
	require.True(t, ok)
	_, isMessage := entry.(*ast.Message)
	assert.True(t, isMessage)

	entry, ok = res.Entry(1)
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestNew_BrokenEntryKeepsGoodOne(t *testing.T) {
	t.Parallel()

	src := "good = fine\nbad = { $x\n"
	res, err := resource.New(src)
	require.Error(t, err)

	var perr resource.ParseErrors
	require.ErrorAs(t, err, &perr)
	require.Len(t, perr, 1)

	broken := perr[0]
	assert.Equal(t, "bad = { $x\n", res.Text(broken.Slice))

	require.Equal(t, 1, res.Len())
	entry, ok := res.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "good", res.ID(entry))
}

func TestParseErrors_Unwrap(t *testing.T) {
	t.Parallel()

	_, err := resource.New("a = { }\nb = }\n")
	require.Error(t, err)

	var single *parser.Error
	require.ErrorAs(t, err, &single)
	assert.Equal(t, parser.ErrExpectedInlineExpression, single.Kind)

	diags := resource.Diagnostics(err)
	require.Len(t, diags, 2)
	assert.Equal(t, parser.ErrUnbalancedClosingBrace, diags[1].Kind)
	assert.Contains(t, err.Error(), "2 syntax errors")
}

func TestParseErrors_Error(t *testing.T) {
	t.Parallel()

	one := resource.ParseErrors{{Kind: parser.ErrMissingValue}}
	assert.Equal(t, "syntax error: Expected a value", one.Error())

	assert.Nil(t, resource.Diagnostics(errors.New("other")))
	assert.Nil(t, resource.Diagnostics(nil))
}

func TestResource_RoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"",
		"key = value",
		"  leading blank\n\tkey = x\r\n",
		"key = { $a ->\n   *[x] X\n}\n}}}\n",
		"ünïcödé = 日本語 { $x }\n",
		"\x00\xff broken",
	}

	for _, src := range sources {
		res, _ := resource.New(src)
		assert.Equal(t, src, res.Source())

		withComments, _ := resource.New(src, resource.WithComments())
		assert.Equal(t, src, withComments.Source())
	}
}

func TestResource_EntriesMatchIndex(t *testing.T) {
	t.Parallel()

	src := "a = A\n-b = B\nc = C\nbroken\nd = D\n"
	res, err := resource.New(src)
	require.Error(t, err)

	collected := slices.Collect(res.Entries())
	require.Len(t, collected, res.Len())
	require.Equal(t, 4, res.Len())

	for i, entry := range collected {
		got, ok := res.Entry(i)
		require.True(t, ok)
		assert.Same(t, entry, got)
	}

	for i, entry := range res.All() {
		got, _ := res.Entry(i)
		assert.Same(t, got, entry)
	}
}

func TestResource_EntryOutOfRange(t *testing.T) {
	t.Parallel()

	res, _ := resource.New("a = A\nb = B\n")

	for _, i := range []int{-1, -100, 2, 3, 1 << 30} {
		entry, ok := res.Entry(i)
		assert.False(t, ok, "index %d", i)
		assert.Nil(t, entry, "index %d", i)
	}
}

func TestResource_EntriesRestartable(t *testing.T) {
	t.Parallel()

	res, _ := resource.New("a = A\nb = B\nc = C\n")

	first := slices.Collect(res.Entries())
	second := slices.Collect(res.Entries())
	assert.Equal(t, first, second)

	// Stopping one traversal early does not affect the next one.
	for range res.Entries() {
		break
	}
	assert.Len(t, slices.Collect(res.Entries()), 3)

	count := 0
	for i := range res.All() {
		if i == 1 {
			break
		}
		count++
	}
	assert.Equal(t, 1, count)
}

func TestResource_WithComments(t *testing.T) {
	t.Parallel()

	src := "### Resource comment\n\n# About greeting\ngreeting = Hi\nbroken\n"

	runtime, err := resource.New(src)
	require.Error(t, err)
	assert.Equal(t, 1, runtime.Len())

	full, err := resource.New(src, resource.WithComments())
	require.Error(t, err)
	require.Equal(t, 3, full.Len())

	entry, _ := full.Entry(1)
	msg, ok := entry.(*ast.Message)
	require.True(t, ok)
	require.NotNil(t, msg.Comment)
	assert.Equal(t, "About greeting", full.Text(msg.Comment.Content[0]))

	entry, _ = full.Entry(2)
	_, ok = entry.(*ast.Junk)
	assert.True(t, ok)
}

func TestResource_Lookup(t *testing.T) {
	t.Parallel()

	res, err := resource.New("a = first\n-brand = B\na = second\n")
	require.NoError(t, err)

	entry, ok := res.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "a = first", res.Text(entry.EntrySpan()))

	_, ok = res.Lookup("-brand")
	assert.True(t, ok)

	_, ok = res.Lookup("brand")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "-brand", "a"}, res.IDs())
}

func TestResource_PositionAndLine(t *testing.T) {
	t.Parallel()

	src := "a = A\r\nbroken\n"
	res, err := resource.New(src)
	require.Error(t, err)

	diag := resource.Diagnostics(err)[0]
	pos := res.Position(diag.Pos.Start)
	assert.Equal(t, ast.Position{Line: 2, Column: 7}, pos)

	assert.Equal(t, "a = A", res.Line(1))
	assert.Equal(t, "broken", res.Line(2))
	assert.Empty(t, res.Line(3))
	assert.Empty(t, res.Line(0))
	assert.Equal(t, 3, res.LineCount())
}

func TestResource_ZeroValue(t *testing.T) {
	t.Parallel()

	var res resource.Resource

	assert.Empty(t, res.Source())
	assert.Zero(t, res.Len())
	_, ok := res.Entry(0)
	assert.False(t, ok)
	assert.Equal(t, ast.Position{}, res.Position(0))
	assert.Empty(t, res.Line(1))
	assert.Empty(t, slices.Collect(res.Entries()))
}

func TestResource_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	src := "a = { $x }\n-b = B\n    .attr = { a }\nc = { $n ->\n   *[other] many\n}\n"
	res, err := resource.New(src)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				n := 0
				for entry := range res.Entries() {
					assert.NotEmpty(t, res.Text(entry.EntrySpan()))
					n++
				}
				assert.Equal(t, 3, n)
				assert.Equal(t, src, res.Source())
				_, ok := res.Lookup("c")
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}

func TestResource_LineSpan(t *testing.T) {
	t.Parallel()

	res, _ := resource.New("a = A\r\nb = B\n")

	span, ok := res.LineSpan(2)
	require.True(t, ok)
	assert.Equal(t, ast.Span{Start: 7, End: 12}, span)

	_, ok = res.LineSpan(0)
	assert.False(t, ok)
}
