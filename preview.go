package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/config"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/connector"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/decoration"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/document"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/render"
	"github.com/WesJD/vscode-ext-line-to-defn/internal/resolver"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// runPreview runs the connector pipeline once, offline: it loads a file,
// places the cursor, and prints the draw payload (or "clear") to stdout.
// arg is "path:line:column", zero-indexed.
func runPreview(arg string, settings config.Settings, lineHeightPx int) error {
	path, pos, err := parsePreviewSpec(arg)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	uri := protocol.URI("file://" + path)
	docs := document.NewManager()
	docs.Open(uri, data)

	style := config.NewStore()
	style.Replace(settings.Style)

	capture := &captureRenderer{lineHeightPx: lineHeightPx}
	machine := decoration.NewMachine(
		resolver.NewWords(docs),
		resolver.NewTreeSitter(docs, settings.ParserPool),
		capture,
		style,
		lineHeightPx,
	)

	d, err := machine.CursorMoved(context.Background(), uri, pos)
	if err != nil {
		return err
	}
	if _, ok := d.(decoration.Replace); !ok {
		fmt.Println("clear")
		return nil
	}

	out, err := json.MarshalIndent(capture.params, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parsePreviewSpec(arg string) (string, protocol.Position, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 3 {
		return "", protocol.Position{}, fmt.Errorf("preview wants path:line:column, got %q", arg)
	}
	line, err := strconv.ParseUint(parts[len(parts)-2], 10, 32)
	if err != nil {
		return "", protocol.Position{}, err
	}
	col, err := strconv.ParseUint(parts[len(parts)-1], 10, 32)
	if err != nil {
		return "", protocol.Position{}, err
	}
	path := strings.Join(parts[:len(parts)-2], ":")
	return path, protocol.Position{Line: uint32(line), Character: uint32(col)}, nil
}

// captureRenderer records the would-be draw payload instead of notifying
// a client.
type captureRenderer struct {
	lineHeightPx int
	params       render.DrawParams
}

func (c *captureRenderer) Draw(box connector.Box, d connector.Descriptor) (decoration.Handle, error) {
	c.params = render.DrawParams{
		ID:            "preview",
		Rectangle:     box.Rect,
		LeftChars:     box.LeftChars,
		WidthChars:    box.WidthChars,
		TopInsetPx:    int(box.TopInsetLines) * c.lineHeightPx,
		HeightPx:      box.HeightPx,
		LineHeightPx:  c.lineHeightPx,
		Line:          d,
		BackgroundURI: connector.DataURI(d),
	}
	return "preview", nil
}

func (c *captureRenderer) Release(decoration.Handle) {}
