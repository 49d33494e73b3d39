// Package lsp implements the `lsp` subcommand (spec.md §6): a language
// server exposing the elaborator over stdin/stdout using
// `Content-Length`-framed JSON-RPC. It advertises full-document sync,
// hover, go-to-definition, and document-symbol capabilities, and pushes
// `publishDiagnostics` notifications on didOpen/didChange/didSave by
// re-elaborating the document's full text.
//
// Grounded on the pack's day39_k8s_language_server (internal/lsp:
// server.go's Handler/CreateRPCHandler dispatch over go.lsp.dev's
// jsonrpc2.Handler/Replier/Request, and its handlers.go's per-method
// unmarshal-and-dispatch shape), adapted from that example's Kubernetes
// YAML document model to vaisto source text, and logged with
// go.uber.org/zap instead of that example's log.Logger since vaisto's
// ambient stack uses zap elsewhere (see DESIGN.md).
package lsp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// Server holds the open-document state for one LSP session: the last
// full text seen for each URI, guarded by mu since didOpen/didChange/
// didSave notifications and any concurrent hover/definition request
// all touch it.
type Server struct {
	conn   jsonrpc2.Conn
	logger *zap.Logger

	mu   sync.Mutex
	docs map[protocol.DocumentURI]string
}

// Run serves the LSP protocol over rwc (ordinarily os.Stdin/os.Stdout)
// until the client disconnects or ctx is canceled.
func Run(ctx context.Context, rwc io.ReadWriteCloser, logger *zap.Logger) error {
	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)

	s := &Server{conn: conn, logger: logger, docs: make(map[protocol.DocumentURI]string)}
	conn.Go(ctx, s.handle)

	<-conn.Done()
	return conn.Err()
}

// handle dispatches one incoming jsonrpc2 request or notification to
// the matching LSP method handler.
func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.logger.Debug("lsp request", zap.String("method", req.Method()))

	switch req.Method() {
	case protocol.MethodInitialize:
		var params protocol.InitializeParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.ParseError, Message: err.Error()})
		}
		return reply(ctx, s.handleInitialize(ctx, &params), nil)

	case protocol.MethodInitialized:
		return nil

	case protocol.MethodShutdown:
		return reply(ctx, nil, nil)

	case protocol.MethodExit:
		return nil

	case protocol.MethodTextDocumentDidOpen:
		var params protocol.DidOpenTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			s.logger.Warn("didOpen: bad params", zap.Error(err))
			return nil
		}
		s.handleDidOpen(ctx, &params)
		return nil

	case protocol.MethodTextDocumentDidChange:
		var params protocol.DidChangeTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			s.logger.Warn("didChange: bad params", zap.Error(err))
			return nil
		}
		s.handleDidChange(ctx, &params)
		return nil

	case protocol.MethodTextDocumentDidSave:
		var params protocol.DidSaveTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			s.logger.Warn("didSave: bad params", zap.Error(err))
			return nil
		}
		s.handleDidSave(ctx, &params)
		return nil

	case protocol.MethodTextDocumentDidClose:
		var params protocol.DidCloseTextDocumentParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			s.logger.Warn("didClose: bad params", zap.Error(err))
			return nil
		}
		s.handleDidClose(&params)
		return nil

	case protocol.MethodTextDocumentHover:
		var params protocol.HoverParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.ParseError, Message: err.Error()})
		}
		return reply(ctx, s.handleHover(&params), nil)

	default:
		if _, ok := req.(*jsonrpc2.Call); ok {
			return reply(ctx, nil, &jsonrpc2.Error{Code: jsonrpc2.MethodNotFound, Message: fmt.Sprintf("method not supported: %s", req.Method())})
		}
		return nil
	}
}
