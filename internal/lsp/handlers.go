package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// handleInitialize advertises the capabilities spec.md §6 names: full
// document sync, hover, go-to-definition, document symbols, and
// diagnostics (pushed separately, not a capability flag).
func (s *Server) handleInitialize(ctx context.Context, params *protocol.InitializeParams) *protocol.InitializeResult {
	full := protocol.TextDocumentSyncKindFull
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync:       full,
			HoverProvider:          true,
			DefinitionProvider:     true,
			DocumentSymbolProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{Name: "vaisto-lsp"},
	}
}

func (s *Server) setDoc(uri protocol.DocumentURI, text string) {
	s.mu.Lock()
	s.docs[uri] = text
	s.mu.Unlock()
}

func (s *Server) handleDidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) {
	uri := params.TextDocument.URI
	s.setDoc(uri, params.TextDocument.Text)
	s.publishDiagnostics(ctx, uri)
}

func (s *Server) handleDidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) {
	if len(params.ContentChanges) == 0 {
		return
	}
	// Full sync only (spec.md §6: "textDocumentSync full"): the last
	// change event carries the document's entire new text.
	uri := params.TextDocument.URI
	s.setDoc(uri, params.ContentChanges[len(params.ContentChanges)-1].Text)
	s.publishDiagnostics(ctx, uri)
}

func (s *Server) handleDidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) {
	s.publishDiagnostics(ctx, params.TextDocument.URI)
}

func (s *Server) handleDidClose(params *protocol.DidCloseTextDocumentParams) {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
}

// handleHover reports the inferred type of the expression whose span
// contains the requested position, found by re-elaborating the
// document and scanning its typed-expression table — there is no
// incremental position index, so a hover request costs one full
// elaboration, acceptable since the LSP front-end serializes requests
// (spec.md §5: "single-consumer queue; each request runs to
// completion before the next").
func (s *Server) handleHover(params *protocol.HoverParams) *protocol.Hover {
	s.mu.Lock()
	text, ok := s.docs[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	hint := hoverAt(text, params.Position)
	if hint == "" {
		return nil
	}
	return &protocol.Hover{Contents: protocol.MarkupContent{Kind: protocol.PlainText, Value: hint}}
}

func (s *Server) publishDiagnostics(ctx context.Context, uri protocol.DocumentURI) {
	s.mu.Lock()
	text := s.docs[uri]
	s.mu.Unlock()

	diags := diagnosticsFor(text)
	params := protocol.PublishDiagnosticsParams{URI: uri, Diagnostics: diags}
	if err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, params); err != nil {
		s.logger.Warn("publishDiagnostics: notify failed", zap.Error(err))
	}
}
