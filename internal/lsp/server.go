// Package lsp implements a language server for Fluent files. It publishes
// syntax and duplicate-identifier diagnostics as buffers change, and offers
// document symbols, hover, completion and go-to-definition for message and
// term references within a file.
package lsp

import (
	"github.com/charmbracelet/log"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	// Registers the commonlog backend glsp writes its own logs to.
	_ "github.com/tliron/commonlog/simple"

	"github.com/yaklabco/gofluent/internal/logging"
	"github.com/yaklabco/gofluent/pkg/config"
)

const serverName = "gofluent"

// Server is a stdio language server.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	docs    *documents
	logger  *log.Logger
	version string
}

// New creates a Server that checks documents with cfg. Logs go to logger,
// which must not write to stdout.
func New(cfg *config.Config, version string, logger *log.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	s := &Server{
		docs:    newDocuments(cfg),
		logger:  logger,
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.didOpen,
		TextDocumentDidChange:      s.didChange,
		TextDocumentDidClose:       s.didClose,
		TextDocumentDidSave:        s.didSave,
		TextDocumentDocumentSymbol: s.documentSymbol,
		TextDocumentHover:          s.hover,
		TextDocumentDefinition:     s.definition,
		TextDocumentCompletion:     s.completion,
	}
	s.server = server.NewServer(&s.handler, serverName, false)

	return s
}

// RunStdio serves requests on stdin and stdout until the client exits.
func (s *Server) RunStdio() error {
	s.logger.Info("language server starting", logging.FieldVersion, s.version)
	return s.server.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		s.logger.Debug("client connected", "client", params.ClientInfo.Name)
	}

	capabilities := s.handler.CreateServerCapabilities()

	change := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &change,
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"{", "-"},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	s.logger.Info("language server stopping", "open_documents", s.docs.len())
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.update(params.TextDocument.URI, params.TextDocument.Version, params.TextDocument.Text)
	s.publish(ctx, doc)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}

	// Full sync: the last change carries the whole buffer.
	change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		s.logger.Warn("ignoring incremental change", logging.FieldURI, params.TextDocument.URI)
		return nil
	}

	doc := s.docs.update(params.TextDocument.URI, params.TextDocument.Version, change.Text)
	s.publish(ctx, doc)
	return nil
}

func (s *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text == nil {
		return nil
	}

	var version protocol.Integer
	if prev, ok := s.docs.get(params.TextDocument.URI); ok {
		version = prev.version
	}
	doc := s.docs.update(params.TextDocument.URI, version, *params.Text)
	s.publish(ctx, doc)
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) publish(ctx *glsp.Context, doc *document) {
	diags := toDiagnostics(doc.outcome)

	s.logger.Debug("publishing diagnostics",
		logging.FieldURI, doc.uri,
		logging.FieldLanguage, doc.outcome.Language,
		logging.FieldDiagnosticsTotal, len(diags))

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Diagnostics: diags,
	})
}

func (s *Server) documentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return documentSymbols(doc.outcome.Resource), nil
}

func (s *Server) hover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return hover(doc, params.Position), nil
}

func (s *Server) definition(_ *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return definition(doc, params.Position), nil
}

func (s *Server) completion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, ok := s.docs.get(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return completions(doc.outcome.Resource), nil
}

func boolPtr(b bool) *bool {
	return &b
}
