package resolver

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/document"
)

const captureName = "def"

// grammar couples a tree-sitter language with the query that captures
// declaration names in it.
type grammar struct {
	lang  *sitter.Language
	query []byte
}

var grammars = map[string]grammar{
	".go": {
		lang: golang.GetLanguage(),
		query: []byte(`
			(function_declaration name: (identifier) @def)
			(method_declaration name: (field_identifier) @def)
			(type_spec name: (type_identifier) @def)
			(const_spec name: (identifier) @def)
			(var_spec name: (identifier) @def)
			(short_var_declaration left: (expression_list (identifier) @def))
		`),
	},
	".js": {
		lang: javascript.GetLanguage(),
		query: []byte(`
			(function_declaration name: (identifier) @def)
			(class_declaration name: (identifier) @def)
			(method_definition name: (property_identifier) @def)
			(variable_declarator name: (identifier) @def)
		`),
	},
	".mjs": {
		lang: javascript.GetLanguage(),
		query: []byte(`
			(function_declaration name: (identifier) @def)
			(class_declaration name: (identifier) @def)
			(method_definition name: (property_identifier) @def)
			(variable_declarator name: (identifier) @def)
		`),
	},
}

// TreeSitter resolves same-document definitions by parsing the open
// document and querying declaration sites whose name matches the word
// under the cursor. Documents in languages without a grammar resolve to
// nothing.
type TreeSitter struct {
	docs *document.Manager
	pool chan *sitter.Parser
}

// NewTreeSitter creates a resolver reading documents from docs, with a
// pool of n parsers.
func NewTreeSitter(docs *document.Manager, n int) *TreeSitter {
	if n <= 0 {
		n = 1
	}
	ts := &TreeSitter{
		docs: docs,
		pool: make(chan *sitter.Parser, n),
	}
	for i := 0; i < n; i++ {
		ts.pool <- sitter.NewParser()
	}
	return ts
}

// Resolve implements Interface.
func (ts *TreeSitter) Resolve(
	ctx context.Context,
	uri protocol.URI,
	pos protocol.Position,
) ([]Target, error) {
	g, ok := grammarFor(uri)
	if !ok {
		return nil, nil
	}

	text, err := ts.docs.Text(uri)
	if err != nil {
		return nil, err
	}
	doc := string(text)

	word, ok := WordRangeAt(doc, pos)
	if !ok {
		return nil, nil
	}
	name := doc[document.OffsetOf(doc, word.Start):document.OffsetOf(doc, word.End)]

	tree, err := ts.parse(ctx, g.lang, text)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return collectTargets(tree.RootNode(), g, text, doc, uri, name)
}

func (ts *TreeSitter) parse(
	ctx context.Context,
	lang *sitter.Language,
	source []byte,
) (*sitter.Tree, error) {
	p := <-ts.pool
	defer func() { ts.pool <- p }()

	p.SetLanguage(lang)
	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return tree, nil
}

// collectTargets runs the declaration query and keeps captures whose text
// equals name. The full declaration node becomes the target range; the
// name node itself becomes the precise selection range.
func collectTargets(
	root *sitter.Node,
	g grammar,
	source []byte,
	doc string,
	uri protocol.URI,
	name string,
) ([]Target, error) {
	q, err := sitter.NewQuery(g.query, g.lang)
	if err != nil {
		return nil, err
	}
	defer q.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, root)

	var targets []Target
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		m = qc.FilterPredicates(m, source)

		for _, c := range m.Captures {
			if q.CaptureNameForId(c.Index) != captureName {
				continue
			}
			if c.Node.Content(source) != name {
				continue
			}

			decl := c.Node
			if parent := c.Node.Parent(); parent != nil {
				decl = parent
			}
			selection := nodeRange(c.Node, doc)
			targets = append(targets, Target{
				URI:            uri,
				Range:          nodeRange(decl, doc),
				SelectionRange: &selection,
			})
		}
	}
	return targets, nil
}

func nodeRange(n *sitter.Node, doc string) protocol.Range {
	start := n.StartPoint()
	end := n.EndPoint()
	return protocol.Range{
		Start: document.PositionOf(doc, start.Row, start.Column),
		End:   document.PositionOf(doc, end.Row, end.Column),
	}
}

func grammarFor(uri protocol.URI) (grammar, bool) {
	p := uri
	if parsed, err := url.Parse(uri); err == nil && parsed.Path != "" {
		p = parsed.Path
	}
	g, ok := grammars[strings.ToLower(path.Ext(p))]
	return g, ok
}
