// Package connector turns a pair of text positions into a drawable
// connector line: its orientation, the rectangle it occupies, and the
// declarative vector-line descriptor the client renders.
package connector

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/geometry"
)

// Orientation is the shape category of a connector line.
type Orientation int

const (
	// Descending runs top-left to bottom-right.
	Descending Orientation = iota
	// Ascending runs top-right to bottom-left.
	Ascending
	// Vertical runs straight down.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Descending:
		return "descending"
	case Ascending:
		return "ascending"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// Pick selects the line shape connecting the definition center to the
// cursor center. Total over all inputs.
func Pick(definitionCenter, cursorCenter protocol.Position) Orientation {
	switch {
	case definitionCenter.Character == cursorCenter.Character:
		return Vertical
	case definitionCenter.Character < cursorCenter.Character:
		return Descending
	default:
		return Ascending
	}
}

// Box is the visual drawing rectangle for a connector, derived from the
// raw bounding rectangle of the two centers. The trim corrections baked
// in here (one line of top inset, one character shaved off ascending
// lines, a two-character minimum width) are fixed contract constants
// tuned against the host's glyph metrics. They make the line meet glyph
// centers instead of cell edges and are not derivable from the geometry;
// a different rendering surface needs its own corrections, but corrections
// of this shape must exist.
type Box struct {
	// Rect is the untrimmed bounding rectangle of the two centers.
	Rect protocol.Range
	// LeftChars is the horizontal placement in character cells. The
	// horizontal axis is deliberately untrimmed.
	LeftChars uint32
	// WidthChars is the trimmed width in character cells, never below 2.
	WidthChars uint32
	// TopInsetLines is the vertical inset from the rectangle's top edge.
	TopInsetLines uint32
	// HeightPx is the CSS pixel height of the drawn line, never negative.
	HeightPx int
}

// MakeBox computes the drawing rectangle for two center positions at the
// given orientation and line height.
func MakeBox(definitionCenter, cursorCenter protocol.Position, o Orientation, lineHeightPx int) Box {
	rect := geometry.BoundingRange(definitionCenter, cursorCenter)

	width := int(rect.End.Character - rect.Start.Character)
	if o == Ascending {
		width--
	}
	if width < 2 {
		width = 2
	}

	heightLines := int(rect.End.Line - rect.Start.Line)
	heightPx := (heightLines - 1) * lineHeightPx
	if heightPx < 0 {
		heightPx = 0
	}

	return Box{
		Rect:          rect,
		LeftChars:     rect.Start.Character,
		WidthChars:    uint32(width),
		TopInsetLines: 1,
		HeightPx:      heightPx,
	}
}

// Point is a line endpoint in percent of the drawing rectangle.
type Point struct {
	XPercent int `json:"xPercent"`
	YPercent int `json:"yPercent"`
}

// Descriptor is the minimal declarative line-drawing primitive handed to
// the render collaborator. Fully derived from orientation and style;
// short-lived, one per display cycle.
type Descriptor struct {
	Orientation    Orientation `json:"-"`
	Start          Point       `json:"start"`
	End            Point       `json:"end"`
	Color          string      `json:"color"`
	Width          float64     `json:"width"`
	OpacityPercent float64     `json:"opacityPercent"`
}

// Describe builds the line descriptor for an orientation under the
// current style.
func Describe(o Orientation, style config.Style) Descriptor {
	d := Descriptor{
		Orientation:    o,
		Color:          style.LineColor,
		Width:          style.LineWidth,
		OpacityPercent: style.LineOpacity,
	}
	switch o {
	case Vertical:
		d.Start = Point{50, 0}
		d.End = Point{50, 100}
	case Descending:
		d.Start = Point{0, 0}
		d.End = Point{100, 100}
	case Ascending:
		d.Start = Point{100, 0}
		d.End = Point{0, 100}
	}
	return d
}
