package lsp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/gofluent/pkg/config"
)

func TestDocuments_Lifecycle(t *testing.T) {
	t.Parallel()

	docs := newDocuments(nil)
	uri := "file:///work/app.ftl"

	doc := docs.update(uri, 1, "a = A\n")
	require.NotNil(t, doc.outcome.Resource)
	assert.Equal(t, 1, doc.outcome.Messages)

	got, ok := docs.get(uri)
	require.True(t, ok)
	assert.Same(t, doc, got)
	assert.Equal(t, 1, docs.len())

	next := docs.update(uri, 2, "a = A\nb = }\n")
	assert.NotSame(t, doc, next)
	assert.Len(t, next.outcome.Diagnostics, 1)
	// The earlier snapshot is unchanged.
	assert.Empty(t, doc.outcome.Diagnostics)

	docs.remove(uri)
	_, ok = docs.get(uri)
	assert.False(t, ok)
	assert.Zero(t, docs.len())
}

func TestDocuments_StaleVersionIgnored(t *testing.T) {
	t.Parallel()

	docs := newDocuments(nil)
	uri := "file:///work/app.ftl"

	current := docs.update(uri, 5, "new = New\n")
	stale := docs.update(uri, 3, "old = Old\n")

	assert.Same(t, current, stale)
	got, _ := docs.get(uri)
	assert.Equal(t, "new = New\n", got.outcome.Resource.Source())
}

func TestDocuments_UsesConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.DuplicateSeverity = config.SeverityError

	docs := newDocuments(cfg)
	doc := docs.update("file:///work/app.ftl", 1, "a = 1\na = 2\n")
	require.Len(t, doc.outcome.Diagnostics, 1)
	assert.Equal(t, config.SeverityError, doc.outcome.Diagnostics[0].Severity)
}

func TestDocuments_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	docs := newDocuments(nil)
	uri := "file:///work/app.ftl"

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				docs.update(uri, protocol.Integer(i), "a = { $x }\n")
				if doc, ok := docs.get(uri); ok {
					assert.Equal(t, 1, doc.outcome.Messages)
				}
			}
		}()
	}
	wg.Wait()
}

func TestURIToPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/tmp/a b.ftl", uriToPath("file:///tmp/a%20b.ftl"))
	assert.Equal(t, "/work/app.ftl", uriToPath("file:///work/./app.ftl"))
	assert.Equal(t, "untitled:1", uriToPath("untitled:1"))
}
