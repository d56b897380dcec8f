// Package metrics derives fixed rendering metrics from the host editor.
package metrics

import (
	"errors"
	"math"
)

// ErrNoFontSize indicates the host did not report a usable editor font
// size. The server must not start without one.
var ErrNoFontSize = errors.New("editor font size unavailable")

const minLineHeightPx = 8

// LineHeight converts an editor font size into the pixel height of one
// rendered line. The golden ratio differs per platform family: macOS
// renders lines at 1.5x the font size, everything else at 1.35x. The
// result is computed once at startup and cached by the caller; runtime
// font-size changes are not tracked.
func LineHeight(fontSize float64, platform string) (int, error) {
	if fontSize <= 0 {
		return 0, ErrNoFontSize
	}

	ratio := 1.35
	if platform == "darwin" {
		ratio = 1.5
	}

	h := int(math.Round(ratio * fontSize))
	if h < minLineHeightPx {
		h = minLineHeightPx
	}
	return h, nil
}
