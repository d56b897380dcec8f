package server

import (
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
)

// workspaceDidChangeConfiguration reloads the connector style wholesale.
// Clients either send the style section directly or nested under the
// extension's settings key.
func (s *Server) workspaceDidChangeConfiguration(
	context *glsp.Context,
	params *protocol.DidChangeConfigurationParams,
) error {
	source := params.Settings
	if m, ok := source.(map[string]any); ok {
		if nested, ok := m["lineToDefinition"]; ok {
			source = nested
		}
	}

	style, err := config.StyleFrom(source)
	if err != nil {
		log.Printf("ignoring malformed configuration: %v", err)
		return nil
	}
	s.style.Replace(style)
	log.Printf("style reloaded: %+v", style)
	return nil
}
