// Package geometry provides the position arithmetic behind connector
// placement: range centers and bounding rectangles in document space.
package geometry

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ErrInvalidRangeShape indicates that a range assumed to span a single
// line spans multiple lines.
var ErrInvalidRangeShape = errors.New("range spans multiple lines")

// CenterOfSpan returns the midpoint of [start, end], biased toward start
// for even-width spans. The floor bias keeps even-width words centered on
// the same character cell the renderer aligns to; do not replace it with
// rounding.
func CenterOfSpan(start, end uint32) uint32 {
	return start + (end-start)/2
}

// CenterOfWordRange returns the position at the horizontal center of a
// single-line range. A multi-line input is a shape violation.
func CenterOfWordRange(r protocol.Range) (protocol.Position, error) {
	if r.Start.Line != r.End.Line {
		return protocol.Position{}, ErrInvalidRangeShape
	}
	return protocol.Position{
		Line:      r.Start.Line,
		Character: CenterOfSpan(r.Start.Character, r.End.Character),
	}, nil
}

// BoundingRange returns the axis-aligned rectangle spanned by two
// positions, taking the componentwise minimum and maximum over the line
// and character axes independently. Symmetric in its arguments.
func BoundingRange(a, b protocol.Position) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      min(a.Line, b.Line),
			Character: min(a.Character, b.Character),
		},
		End: protocol.Position{
			Line:      max(a.Line, b.Line),
			Character: max(a.Character, b.Character),
		},
	}
}
