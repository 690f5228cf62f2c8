package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/gofluent/pkg/config"
	"github.com/yaklabco/gofluent/pkg/runner"
)

// document is one open editor buffer. It is replaced, never modified, when
// the buffer changes.
type document struct {
	uri     protocol.DocumentUri
	version protocol.Integer
	outcome runner.FileOutcome
}

// documents holds the open buffers keyed by URI.
type documents struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document
	cfg  *config.Config
}

func newDocuments(cfg *config.Config) *documents {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &documents{
		docs: make(map[protocol.DocumentUri]*document),
		cfg:  cfg,
	}
}

// update checks text and stores the result as the current state of uri.
func (d *documents) update(uri protocol.DocumentUri, version protocol.Integer, text string) *document {
	doc := &document{
		uri:     uri,
		version: version,
		outcome: runner.CheckSource(uriToPath(uri), []byte(text), d.cfg),
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.docs[uri]; ok && prev.version > version {
		return prev
	}
	d.docs[uri] = doc
	return doc
}

func (d *documents) get(uri protocol.DocumentUri) (*document, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc, ok := d.docs[uri]
	return doc, ok
}

func (d *documents) remove(uri protocol.DocumentUri) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.docs, uri)
}

func (d *documents) len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.docs)
}

func uriToPath(uri protocol.DocumentUri) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return filepath.Clean(filepath.FromSlash(parsed.Path))
}
