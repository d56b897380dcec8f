package server

import (
	con "context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// textDocumentDefinition serves regular go-to-definition from the same
// resolver the connector uses, so jumping and the drawn line always
// agree.
func (s *Server) textDocumentDefinition(
	context *glsp.Context,
	params *protocol.DefinitionParams,
) (any, error) {
	if s.definitions == nil {
		return nil, nil
	}

	targets, err := s.definitions.Resolve(
		con.Background(),
		params.TextDocument.URI,
		params.Position,
	)
	if err != nil || len(targets) == 0 {
		return nil, err
	}

	locations := make([]protocol.Location, 0, len(targets))
	for _, t := range targets {
		locations = append(locations, protocol.Location{
			URI:   t.URI,
			Range: t.AnchorRange(),
		})
	}
	return locations, nil
}
