package document

import (
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// OffsetOf converts an LSP position (line + UTF-16 code-unit column) into
// a byte offset into the UTF-8 document. Positions past the end of a line
// or the document clamp to the nearest valid offset.
func OffsetOf(doc string, pos protocol.Position) int {
	lines := strings.Split(doc, "\n")
	if int(pos.Line) >= len(lines) {
		pos.Line = uint32(len(lines) - 1)
	}

	offset := 0
	for i := uint32(0); i < pos.Line; i++ {
		offset += len(lines[i]) + 1
	}

	var units, bytes int
	for _, r := range lines[pos.Line] {
		unitCount := 1
		if r > 0xFFFF {
			unitCount = 2
		}
		if uint32(units+unitCount) > pos.Character {
			break
		}
		units += unitCount
		bytes += utf8.RuneLen(r)
	}
	return offset + bytes
}

// PositionOf converts a byte row/column pair (tree-sitter point
// convention) back into an LSP position within doc.
func PositionOf(doc string, row, byteColumn uint32) protocol.Position {
	lines := strings.Split(doc, "\n")
	if int(row) >= len(lines) {
		row = uint32(len(lines) - 1)
	}
	line := lines[row]
	if int(byteColumn) > len(line) {
		byteColumn = uint32(len(line))
	}

	var units uint32
	for _, r := range line[:byteColumn] {
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return protocol.Position{Line: row, Character: units}
}
