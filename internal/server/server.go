// Package server wires the connector pipeline to an LSP client over
// stdio. The client reports cursor movement through document highlight
// requests; the server answers with connector/draw and connector/clear
// notifications.
package server

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/decoration"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/document"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/render"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/resolver"
)

const lsName = "line-to-defn"

// Server holds the per-connection state. The decoration machine and its
// collaborators are built during initialize, once the client has
// reported its editor metrics.
type Server struct {
	handler  *protocol.Handler
	settings config.Settings

	docs        *document.Manager
	style       *config.Store
	definitions *resolver.TreeSitter
	machine     *decoration.Machine

	notifyMu sync.Mutex
	notify   render.NotifyFunc
}

// NewServer creates the stdio LSP server.
func NewServer(settings config.Settings) (*server.Server, error) {
	s := &Server{
		settings: settings,
		docs:     document.NewManager(),
		style:    config.NewStore(),
	}
	s.style.Replace(settings.Style)

	s.handler = &protocol.Handler{
		Initialize:                      s.initialize,
		Initialized:                     s.initialized,
		TextDocumentDidOpen:             s.textDocumentDidOpen,
		TextDocumentDidChange:           s.textDocumentDidChange,
		TextDocumentDidSave:             s.textDocumentDidSave,
		TextDocumentDidClose:            s.textDocumentDidClose,
		TextDocumentDocumentHighlight:   s.textDocumentDocumentHighlight,
		TextDocumentDefinition:          s.textDocumentDefinition,
		WorkspaceDidChangeConfiguration: s.workspaceDidChangeConfiguration,
		SetTrace:                        s.setTrace,
		Shutdown:                        s.shutdown,
	}

	return server.NewServer(s.handler, lsName, false), nil
}

// bindNotify points the renderer at the live request context. Handles can
// be released by a later event than the one that drew them, so the
// renderer always goes through the most recent context.
func (s *Server) bindNotify(context *glsp.Context) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.notify = render.NotifyFunc(context.Notify)
}

func (s *Server) sendNotification(method string, params any) {
	s.notifyMu.Lock()
	notify := s.notify
	s.notifyMu.Unlock()
	if notify != nil {
		notify(method, params)
	}
}
