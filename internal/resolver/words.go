package resolver

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/document"
)

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// WordRangeAt returns the single-line span of the lexical token under
// pos, or false when the cursor sits on whitespace or punctuation.
// Columns are UTF-16 code units, matching LSP positions. A cursor
// immediately after the last character of a word still counts as on it,
// matching editor word lookup.
func WordRangeAt(doc string, pos protocol.Position) (protocol.Range, bool) {
	lines := strings.Split(doc, "\n")
	if int(pos.Line) >= len(lines) {
		return protocol.Range{}, false
	}
	line := lines[pos.Line]

	var col uint32
	inWord := false
	var start uint32
	for _, r := range line {
		units := uint32(1)
		if r > 0xFFFF {
			units = 2
		}
		if isWordRune(r) {
			if !inWord {
				inWord = true
				start = col
			}
		} else {
			if inWord && start <= pos.Character && pos.Character <= col {
				return wordRange(pos.Line, start, col), true
			}
			inWord = false
		}
		col += units
	}
	if inWord && start <= pos.Character && pos.Character <= col {
		return wordRange(pos.Line, start, col), true
	}
	return protocol.Range{}, false
}

// Words looks up word ranges in open documents.
type Words struct {
	docs *document.Manager
}

// NewWords creates a word lookup reading from docs.
func NewWords(docs *document.Manager) *Words {
	return &Words{docs: docs}
}

// WordRangeAt returns the word under pos in the document behind uri.
// Unknown documents have no words.
func (w *Words) WordRangeAt(uri protocol.URI, pos protocol.Position) (protocol.Range, bool) {
	text, err := w.docs.Text(uri)
	if err != nil {
		return protocol.Range{}, false
	}
	return WordRangeAt(string(text), pos)
}

func wordRange(line, start, end uint32) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: line, Character: start},
		End:   protocol.Position{Line: line, Character: end},
	}
}
