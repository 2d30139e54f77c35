package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/iburimskiy/wave-animation/internal/colors"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatPeriod formats a loop period given in ms, e.g. "10.0s".
func formatPeriod(ms float64) string {
	d := time.Duration(ms * float64(time.Millisecond))
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// opaque converts a "#rrggbb" color to an opaque color.RGBA.
func opaque(hex string) color.RGBA {
	r, g, b, _ := colors.ParseRGB(colors.HexToRGB(hex))
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
