// Package resolver answers "where is this symbol defined" and "what word
// is under the cursor" for open documents.
package resolver

import (
	"context"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Target is one definition candidate.
type Target struct {
	// URI of the document holding the definition.
	URI protocol.URI
	// Range covers the whole declaration and may span several lines.
	Range protocol.Range
	// SelectionRange, when present, is the symbol name itself and is the
	// range consumers should anchor to.
	SelectionRange *protocol.Range
}

// AnchorRange returns the range a connector should target: the precise
// selection range when the resolver produced one, the full range
// otherwise.
func (t Target) AnchorRange() protocol.Range {
	if t.SelectionRange != nil {
		return *t.SelectionRange
	}
	return t.Range
}

// Interface resolves definition candidates for a position. Zero
// candidates means "nothing to link"; more than one is ambiguity the
// caller must deal with.
type Interface interface {
	Resolve(ctx context.Context, uri protocol.URI, pos protocol.Position) ([]Target, error)
}
