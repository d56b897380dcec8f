package server

import (
	con "context"
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/decoration"
)

// textDocumentDocumentHighlight doubles as the cursor-moved signal:
// clients issue it on every cursor movement. No highlights are ever
// returned; the request only drives the connector state machine.
func (s *Server) textDocumentDocumentHighlight(
	context *glsp.Context,
	params *protocol.DocumentHighlightParams,
) ([]protocol.DocumentHighlight, error) {
	if s.machine == nil {
		return nil, nil
	}
	s.bindNotify(context)

	d, err := s.machine.CursorMoved(
		con.Background(),
		params.TextDocument.URI,
		params.Position,
	)
	if err != nil {
		// Per-event failures already degraded to a cleared display; the
		// missing line is the only user-visible signal.
		log.Printf("connector cleared: %v", err)
	}

	switch d.(type) {
	case decoration.Replace:
		log.Printf("connector replaced at %s %d:%d",
			params.TextDocument.URI, params.Position.Line, params.Position.Character)
	case decoration.KeepCurrent, decoration.Clear, nil:
		// Nothing to report; nil means a stale lookup was discarded.
	}

	return nil, nil
}
