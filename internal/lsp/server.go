// Package lsp exposes the verifier as a language server. Every open .sjava
// document is re-verified on each change and its first violation is
// published as a diagnostic.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/mouse-blink/sjavac/internal/adapter"
	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/domain"
	m "github.com/mouse-blink/sjavac/internal/model"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "sjavac"

var log = commonlog.GetLogger("sjavac.lsp")

// Server is a stdio language server for S-Java documents.
type Server struct {
	handler   protocol.Handler
	server    *server.Server
	version   string
	fsAdapter adapter.SourceFSAdapter

	mu        sync.Mutex
	documents map[protocol.DocumentUri]string
}

// NewServer builds a Server. fsAdapter is used to read documents that are
// saved without their text.
func NewServer(version string, fsAdapter adapter.SourceFSAdapter) *Server {
	s := &Server{
		version:   version,
		fsAdapter: fsAdapter,
		documents: make(map[protocol.DocumentUri]string),
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

// RunStdio serves the protocol over stdin and stdout until the client exits.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, _ *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	log.Info("client initialized")
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	log.Info("shutting down")
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.store(params.TextDocument.URI, params.TextDocument.Text)
	s.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)

	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}

	change := params.ContentChanges[len(params.ContentChanges)-1]

	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		log.Warningf("ignoring incremental change for %s", params.TextDocument.URI)
		return nil
	}

	s.store(params.TextDocument.URI, textChange.Text)
	s.publish(ctx, params.TextDocument.URI, textChange.Text)

	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	notify(ctx, params.TextDocument.URI, []protocol.Diagnostic{})

	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI

	if params.Text != nil {
		s.store(uri, *params.Text)
		s.publish(ctx, uri, *params.Text)

		return nil
	}

	text, ok := s.text(uri)
	if !ok {
		content, err := s.fsAdapter.ReadFile(m.Path(uriToPath(uri)))
		if err != nil {
			log.Errorf("read %s: %v", uri, err)
			return nil
		}

		text = string(content)
	}

	s.publish(ctx, uri, text)

	return nil
}

func (s *Server) store(uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[uri] = text
}

func (s *Server) text(uri protocol.DocumentUri) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.documents[uri]

	return text, ok
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	if !strings.HasSuffix(uriToPath(uri), m.SourceExt) {
		log.Debugf("skipping %s: not an S-Java source", uri)
		return
	}

	notify(ctx, uri, Diagnostics(domain.Evaluate(strings.NewReader(text))))
}

// Diagnostics converts a verification outcome into at most one diagnostic.
func Diagnostics(out domain.Outcome) []protocol.Diagnostic {
	if out.Err == nil {
		return []protocol.Diagnostic{}
	}

	line := protocol.UInteger(0)
	if out.Line > 0 {
		line = protocol.UInteger(out.Line - 1)
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName

	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line + 1, Character: 0},
		},
		Severity: &severity,
		Source:   &source,
		Message:  out.Err.Error(),
	}

	if kind, ok := diag.KindOf(out.Err); ok {
		d.Code = &protocol.IntegerOrString{Value: kind.String()}
	}

	return []protocol.Diagnostic{d}
}

func notify(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func uriToPath(uri protocol.DocumentUri) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	return filepath.Clean(parsed.Path)
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
