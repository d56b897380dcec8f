package metrics_test

import (
	"errors"
	"testing"

	"github.com/WesJD/vscode-ext-line-to-defn/internal/metrics"
)

func TestLineHeight(t *testing.T) {
	cases := []struct {
		fontSize float64
		platform string
		want     int
	}{
		{14, "darwin", 21},  // 1.5 * 14
		{14, "linux", 19},   // round(1.35 * 14) = round(18.9)
		{14, "windows", 19},
		{13, "darwin", 20},  // round(19.5) rounds half away from zero
		{4, "linux", 8},     // floored at the minimum
		{1, "darwin", 8},
	}
	for _, c := range cases {
		got, err := metrics.LineHeight(c.fontSize, c.platform)
		if err != nil {
			t.Fatalf("LineHeight(%v, %q): %v", c.fontSize, c.platform, err)
		}
		if got != c.want {
			t.Fatalf("LineHeight(%v, %q) = %d, want %d", c.fontSize, c.platform, got, c.want)
		}
	}
}

func TestLineHeightRequiresFontSize(t *testing.T) {
	for _, size := range []float64{0, -12} {
		if _, err := metrics.LineHeight(size, "linux"); !errors.Is(err, metrics.ErrNoFontSize) {
			t.Fatalf("LineHeight(%v) err = %v, want ErrNoFontSize", size, err)
		}
	}
}
