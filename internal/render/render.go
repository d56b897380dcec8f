// Package render pushes connector overlays to the client as custom LSP
// notifications. The client owns the pixels; this side only ships the
// declarative payload and tracks handle identity.
package render

import (
	"github.com/segmentio/ksuid"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/connector"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/decoration"
)

// Method names for the server -> client connector notifications.
const (
	DrawMethod  = "connector/draw"
	ClearMethod = "connector/clear"
)

// DrawParams is the connector/draw payload. BackgroundURI is the line
// already rendered as an SVG data URI so a client can apply it as a
// background image without understanding the descriptor.
type DrawParams struct {
	ID            string               `json:"id"`
	Rectangle     protocol.Range       `json:"rectangle"`
	LeftChars     uint32               `json:"leftChars"`
	WidthChars    uint32               `json:"widthChars"`
	TopInsetPx    int                  `json:"topInsetPx"`
	HeightPx      int                  `json:"heightPx"`
	LineHeightPx  int                  `json:"lineHeightPx"`
	Line          connector.Descriptor `json:"line"`
	BackgroundURI string               `json:"backgroundUri"`
}

// ClearParams is the connector/clear payload.
type ClearParams struct {
	ID string `json:"id"`
}

// NotifyFunc sends one notification to the client. glsp.Context.Notify
// satisfies it.
type NotifyFunc func(method string, params any)

// Notifier implements decoration.Renderer over a notification channel to
// the client.
type Notifier struct {
	notify       NotifyFunc
	lineHeightPx int
}

// NewNotifier creates a renderer sending draw/clear notifications through
// notify, with the fixed line height derived at startup.
func NewNotifier(notify NotifyFunc, lineHeightPx int) *Notifier {
	return &Notifier{notify: notify, lineHeightPx: lineHeightPx}
}

// Draw ships a connector to the client and returns the handle that
// clears it later.
func (n *Notifier) Draw(box connector.Box, d connector.Descriptor) (decoration.Handle, error) {
	id := ksuid.New().String()
	n.notify(DrawMethod, DrawParams{
		ID:            id,
		Rectangle:     box.Rect,
		LeftChars:     box.LeftChars,
		WidthChars:    box.WidthChars,
		TopInsetPx:    int(box.TopInsetLines) * n.lineHeightPx,
		HeightPx:      box.HeightPx,
		LineHeightPx:  n.lineHeightPx,
		Line:          d,
		BackgroundURI: connector.DataURI(d),
	})
	return decoration.Handle(id), nil
}

// Release tells the client to drop the overlay behind a handle.
func (n *Notifier) Release(h decoration.Handle) {
	n.notify(ClearMethod, ClearParams{ID: string(h)})
}
