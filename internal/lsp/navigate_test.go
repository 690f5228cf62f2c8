package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/gofluent/pkg/runner"
)

const navSource = "-brand = Fluent\nhello = Hi { -brand } and { world }\nworld = World\n"

func newDoc(t *testing.T, src string) *document {
	t.Helper()

	uri := "file:///work/app.ftl"
	return &document{
		uri:     uri,
		outcome: runner.CheckSource(uriToPath(uri), []byte(src), nil),
	}
}

func TestDefinition(t *testing.T) {
	t.Parallel()

	doc := newDoc(t, navSource)

	tests := []struct {
		name string
		pos  protocol.Position
		want *protocol.Range
	}{
		{
			name: "term reference",
			pos:  protocol.Position{Line: 1, Character: 15},
			want: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 1},
				End:   protocol.Position{Line: 0, Character: 6},
			},
		},
		{
			name: "message reference",
			pos:  protocol.Position{Line: 1, Character: 30},
			want: &protocol.Range{
				Start: protocol.Position{Line: 2, Character: 0},
				End:   protocol.Position{Line: 2, Character: 5},
			},
		},
		{
			name: "plain text",
			pos:  protocol.Position{Line: 1, Character: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			locs := definition(doc, tt.pos)
			if tt.want == nil {
				assert.Empty(t, locs)
				return
			}
			require.Len(t, locs, 1)
			assert.Equal(t, doc.uri, locs[0].URI)
			assert.Equal(t, *tt.want, locs[0].Range)
		})
	}
}

func TestHover(t *testing.T) {
	t.Parallel()

	doc := newDoc(t, navSource)

	h := hover(doc, protocol.Position{Line: 1, Character: 15})
	require.NotNil(t, h)
	content, ok := h.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.MarkupKindMarkdown, content.Kind)
	assert.Equal(t, "```fluent\n-brand = Fluent\n```", content.Value)
	require.NotNil(t, h.Range)
	assert.Equal(t, protocol.Position{Line: 1, Character: 14}, h.Range.Start)

	h = hover(doc, protocol.Position{Line: 2, Character: 2})
	require.NotNil(t, h)
	assert.Equal(t, "```fluent\nworld = World\n```", h.Contents.(protocol.MarkupContent).Value)

	assert.Nil(t, hover(doc, protocol.Position{Line: 1, Character: 9}))
}

func TestHover_UndefinedReference(t *testing.T) {
	t.Parallel()

	doc := newDoc(t, "x = { missing }\n")

	h := hover(doc, protocol.Position{Line: 0, Character: 7})
	require.NotNil(t, h)
	assert.Equal(t, "`missing` is not defined in this file", h.Contents.(protocol.MarkupContent).Value)
}

func TestNavigation_SkippedDocument(t *testing.T) {
	t.Parallel()

	doc := newDoc(t, "<#if x>${x}</#if>\n")

	assert.Nil(t, hover(doc, protocol.Position{}))
	assert.Nil(t, definition(doc, protocol.Position{}))
}
