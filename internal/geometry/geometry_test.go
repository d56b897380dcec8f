package geometry_test

import (
	"errors"
	"testing"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/geometry"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestCenterOfSpanFloors(t *testing.T) {
	cases := []struct{ start, end, want uint32 }{
		{0, 4, 2},
		{0, 5, 2}, // floor bias, not round
		{0, 0, 0},
		{3, 4, 3},
		{2, 8, 5},
		{10, 11, 10},
	}
	for _, c := range cases {
		if got := geometry.CenterOfSpan(c.start, c.end); got != c.want {
			t.Fatalf("CenterOfSpan(%d, %d) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestCenterOfWordRangeKeepsLine(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 7, Character: 2},
		End:   protocol.Position{Line: 7, Character: 9},
	}
	center, err := geometry.CenterOfWordRange(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if center.Line != 7 {
		t.Fatalf("center moved to line %d", center.Line)
	}
	if center.Character != 5 {
		t.Fatalf("center at character %d, want 5", center.Character)
	}
}

func TestCenterOfWordRangeRejectsMultiline(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 0},
		End:   protocol.Position{Line: 2, Character: 0},
	}
	if _, err := geometry.CenterOfWordRange(r); !errors.Is(err, geometry.ErrInvalidRangeShape) {
		t.Fatalf("expected ErrInvalidRangeShape, got %v", err)
	}
}

func TestBoundingRangeSymmetric(t *testing.T) {
	a := protocol.Position{Line: 10, Character: 2}
	b := protocol.Position{Line: 3, Character: 8}

	got := geometry.BoundingRange(a, b)
	want := protocol.Range{
		Start: protocol.Position{Line: 3, Character: 2},
		End:   protocol.Position{Line: 10, Character: 8},
	}
	if got != want {
		t.Fatalf("BoundingRange = %+v, want %+v", got, want)
	}
	if got != geometry.BoundingRange(b, a) {
		t.Fatal("BoundingRange is not symmetric")
	}
}
