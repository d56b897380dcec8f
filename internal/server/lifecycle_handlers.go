package server

import (
	"encoding/json"
	"fmt"
	"log"
	"runtime"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/decoration"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/metrics"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/render"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/resolver"
)

// initOptions is what the client passes as initializationOptions. The
// font size is the one value the server cannot run without.
type initOptions struct {
	FontSize float64 `json:"fontSize"`
	Platform string  `json:"platform"`
	Style    any     `json:"style"`
}

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	var opts initOptions
	optsJSON, err := json.Marshal(params.InitializationOptions)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(optsJSON, &opts); err != nil {
		return nil, err
	}

	if opts.Platform == "" {
		opts.Platform = runtime.GOOS
	}

	// Missing font size is the one fatal startup condition: every pixel
	// metric derives from it.
	lineHeightPx, err := metrics.LineHeight(opts.FontSize, opts.Platform)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize without editor metrics: %w", err)
	}
	log.Printf("line height %dpx (font %g, platform %s)", lineHeightPx, opts.FontSize, opts.Platform)

	if opts.Style != nil {
		style, err := config.StyleFrom(opts.Style)
		if err != nil {
			return nil, err
		}
		s.style.Replace(style)
	}

	s.bindNotify(context)
	s.definitions = resolver.NewTreeSitter(s.docs, s.settings.ParserPool)
	renderer := render.NewNotifier(s.sendNotification, lineHeightPx)
	s.machine = decoration.NewMachine(
		resolver.NewWords(s.docs),
		s.definitions,
		renderer,
		s.style,
		lineHeightPx,
	)

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: &protocol.True},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name: lsName,
		},
	}, nil
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("client initialized")
	return nil
}

func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	if s.machine != nil {
		s.bindNotify(context)
		s.machine.Deactivate()
	}
	return nil
}
