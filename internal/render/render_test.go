package render_test

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/connector"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/render"
)

type sent struct {
	method string
	params any
}

func TestNotifierDrawAndRelease(t *testing.T) {
	var out []sent
	notifier := render.NewNotifier(func(method string, params any) {
		out = append(out, sent{method, params})
	}, 20)

	def := protocol.Position{Line: 2, Character: 1}
	cursor := protocol.Position{Line: 10, Character: 9}
	box := connector.MakeBox(def, cursor, connector.Descending, 20)
	d := connector.Describe(connector.Descending, config.DefaultStyle())

	h, err := notifier.Draw(box, d)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if h == "" {
		t.Fatal("empty handle")
	}

	if len(out) != 1 || out[0].method != render.DrawMethod {
		t.Fatalf("notifications = %+v", out)
	}
	params, ok := out[0].params.(render.DrawParams)
	if !ok {
		t.Fatalf("params type %T", out[0].params)
	}
	if params.ID != string(h) {
		t.Fatal("handle does not match notification id")
	}
	if params.TopInsetPx != 20 || params.LineHeightPx != 20 {
		t.Fatalf("pixel metrics = %+v", params)
	}
	if params.BackgroundURI == "" {
		t.Fatal("missing background uri")
	}

	notifier.Release(h)
	if len(out) != 2 || out[1].method != render.ClearMethod {
		t.Fatalf("notifications = %+v", out)
	}
	if out[1].params.(render.ClearParams).ID != string(h) {
		t.Fatal("release id mismatch")
	}
}

func TestHandlesAreUnique(t *testing.T) {
	notifier := render.NewNotifier(func(string, any) {}, 20)
	box := connector.Box{}
	d := connector.Descriptor{}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		h, err := notifier.Draw(box, d)
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
		if seen[string(h)] {
			t.Fatal("duplicate handle")
		}
		seen[string(h)] = true
	}
}
