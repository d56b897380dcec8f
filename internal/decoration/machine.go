// Package decoration owns the connector display state: whether a
// connector is shown, which word range anchors it, and the render handle
// it holds. It is the only stateful part of the pipeline.
package decoration

import (
	"context"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/connector"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/geometry"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/resolver"
)

// WordRanger looks up the lexical token under a position.
type WordRanger interface {
	WordRangeAt(uri protocol.URI, pos protocol.Position) (protocol.Range, bool)
}

// Renderer turns a drawing box and line descriptor into an on-screen
// overlay and hands back a disposable handle for it.
type Renderer interface {
	Draw(box connector.Box, d connector.Descriptor) (Handle, error)
	Release(Handle)
}

// Machine decides, per cursor event, whether the displayed connector is
// kept, cleared or replaced. It owns at most one Anchored decoration and
// the render handle inside it; every transition that does not carry the
// handle forward releases it.
type Machine struct {
	words        WordRanger
	definitions  resolver.Interface
	renderer     Renderer
	style        *config.Store
	lineHeightPx int

	mu      sync.Mutex
	seq     uint64
	current *Anchored
}

// NewMachine wires a Machine to its collaborators. lineHeightPx is the
// startup-derived metric and stays fixed for the machine's lifetime.
func NewMachine(
	words WordRanger,
	definitions resolver.Interface,
	renderer Renderer,
	style *config.Store,
	lineHeightPx int,
) *Machine {
	return &Machine{
		words:        words,
		definitions:  definitions,
		renderer:     renderer,
		style:        style,
		lineHeightPx: lineHeightPx,
	}
}

// Current returns the word range anchoring the displayed connector, if
// one is shown.
func (m *Machine) Current() (protocol.Range, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return protocol.Range{}, false
	}
	return m.current.WordRange, true
}

// Deactivate clears the display; used when no editable document or
// cursor exists anymore.
func (m *Machine) Deactivate() Decision {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return m.clearLocked()
}

// CursorMoved evaluates one cursor-position event. The definition lookup
// in the middle is the only suspension point; a lookup superseded by a
// later event is discarded without side effects, in which case the
// returned Decision is nil. A non-nil error only ever accompanies a Clear
// decision and exists for logging; the user-visible signal is the absent
// connector.
func (m *Machine) CursorMoved(
	ctx context.Context,
	uri protocol.URI,
	pos protocol.Position,
) (Decision, error) {
	word, ok := m.words.WordRangeAt(uri, pos)

	// Every event advances the sequence, not just the ones that issue a
	// lookup: a clear or keep-current is also "the latest event" and must
	// invalidate whatever is still in flight.
	m.mu.Lock()
	m.seq++
	issued := m.seq

	if !ok {
		defer m.mu.Unlock()
		return m.clearLocked(), nil
	}
	if m.current != nil && m.current.WordRange == word {
		m.mu.Unlock()
		return KeepCurrent{}, nil
	}
	m.mu.Unlock()

	targets, err := m.definitions.Resolve(ctx, uri, pos)

	m.mu.Lock()
	defer m.mu.Unlock()

	// Lookup completions may arrive out of issuance order. Only the most
	// recently issued lookup may touch the display.
	if issued != m.seq {
		return nil, nil
	}

	if err != nil {
		return m.clearLocked(), err
	}
	// One unambiguous same-document candidate or nothing. Drawing a line
	// to an arbitrary pick among several candidates would mislead.
	if len(targets) != 1 || targets[0].URI != uri {
		return m.clearLocked(), nil
	}

	definitionCenter, err := geometry.CenterOfWordRange(targets[0].AnchorRange())
	if err != nil {
		return m.clearLocked(), err
	}
	cursorCenter, err := geometry.CenterOfWordRange(word)
	if err != nil {
		return m.clearLocked(), err
	}

	orientation := connector.Pick(definitionCenter, cursorCenter)
	box := connector.MakeBox(definitionCenter, cursorCenter, orientation, m.lineHeightPx)
	descriptor := connector.Describe(orientation, m.style.Current())

	handle, err := m.renderer.Draw(box, descriptor)
	if err != nil {
		return m.clearLocked(), err
	}

	if m.current != nil {
		m.renderer.Release(m.current.Handle)
	}
	m.current = &Anchored{WordRange: word, Handle: handle}
	return Replace{Decoration: *m.current}, nil
}

// clearLocked transitions to Idle, releasing the held handle if showing.
func (m *Machine) clearLocked() Decision {
	if m.current != nil {
		m.renderer.Release(m.current.Handle)
		m.current = nil
	}
	return Clear{}
}
