package connector

import (
	"encoding/base64"
	"fmt"
)

// SVG renders a descriptor as a standalone SVG document. The percent
// coordinate system lets a single image stretch to whatever rectangle the
// client draws it into.
func SVG(d Descriptor) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="100%%">`+
			`<line x1="%d%%" y1="%d%%" x2="%d%%" y2="%d%%" stroke="%s" stroke-width="%g" opacity="%g"/>`+
			`</svg>`,
		d.Start.XPercent, d.Start.YPercent,
		d.End.XPercent, d.End.YPercent,
		d.Color, d.Width, d.OpacityPercent/100,
	)
}

// DataURI renders a descriptor as a base64 data URI, ready to apply as a
// background image on the drawing rectangle.
func DataURI(d Descriptor) string {
	return "data:image/svg+xml;base64," +
		base64.StdEncoding.EncodeToString([]byte(SVG(d)))
}
