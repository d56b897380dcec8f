package decoration

import protocol "github.com/tliron/glsp/protocol_3_16"

// Handle is an opaque, disposable reference to an on-screen connector
// owned by the render collaborator.
type Handle string

// Anchored is the currently visible connector. The word range is the
// de-duplication key for cursor events, not a cache of content; it always
// equals the word under the cursor as of the last recomputation.
type Anchored struct {
	WordRange protocol.Range
	Handle    Handle
}

// Decision is the outcome of one cursor-event evaluation. It is a closed
// set: KeepCurrent, Clear or Replace. Callers switch over the concrete
// types and must handle all three.
type Decision interface {
	decision()
}

// KeepCurrent leaves the displayed connector untouched.
type KeepCurrent struct{}

// Clear removes any displayed connector.
type Clear struct{}

// Replace swaps the displayed connector for a newly computed one.
type Replace struct {
	Decoration Anchored
}

func (KeepCurrent) decision() {}
func (Clear) decision()       {}
func (Replace) decision()     {}
