// Package document tracks the text of documents the client has open.
package document

import (
	"fmt"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Manager holds the current bytes of every open document, keyed by URI.
// It is the word-of-record the resolver and word lookup read from.
type Manager struct {
	mu   sync.Mutex
	docs map[protocol.URI][]byte
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{docs: make(map[protocol.URI][]byte)}
}

// Open stores the full text of a newly opened document.
func (m *Manager) Open(uri protocol.URI, text []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[uri] = text
}

// Close drops a document.
func (m *Manager) Close(uri protocol.URI) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, uri)
}

// Text returns the current bytes for a URI.
func (m *Manager) Text(uri protocol.URI) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[uri]
	if !ok {
		return nil, fmt.Errorf("document not open: %s", uri)
	}
	return doc, nil
}

// Apply applies one LSP content change. A change without a range replaces
// the whole document.
func (m *Manager) Apply(uri protocol.URI, change protocol.TextDocumentContentChangeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[uri]
	if !ok {
		return fmt.Errorf("document not open: %s", uri)
	}
	if change.Range == nil {
		m.docs[uri] = []byte(change.Text)
		return nil
	}
	m.docs[uri] = []byte(applyEdit(string(doc), *change.Range, change.Text))
	return nil
}

// ApplyWhole replaces the whole document.
func (m *Manager) ApplyWhole(uri protocol.URI, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[uri] = []byte(text)
}

func applyEdit(doc string, r protocol.Range, newText string) string {
	start := OffsetOf(doc, r.Start)
	end := OffsetOf(doc, r.End)
	// Offsets land on rune boundaries: LSP splits at code-unit boundaries
	// and OffsetOf respects that.
	return doc[:start] + newText + doc[end:]
}
