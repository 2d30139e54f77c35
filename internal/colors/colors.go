// Package colors converts between the hex form used by color pickers and the
// "r, g, b" triple form the animation is configured with.
package colors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

const (
	// WhiteHex and WhiteRGB are returned for malformed input.
	WhiteHex = "#ffffff"
	WhiteRGB = "255, 255, 255"
)

var rgbPattern = regexp.MustCompile(`^\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*$`)

// RGBA is a stroke color with straight (non-premultiplied) alpha in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// String formats the color as a CSS rgba() value.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, Clamp01(c.A))
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := Clamp01(c.A)
	a = uint32(math.Round(alpha * 0xffff))
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// ParseRGB reads an "r, g, b" triple. Components above 255 are clamped.
// ok is false when s does not match the triple pattern, in which case white
// is returned.
func ParseRGB(s string) (r, g, b uint8, ok bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return 255, 255, 255, false
	}
	return channel(m[1]), channel(m[2]), channel(m[3]), true
}

// RGBToHex converts "r, g, b" to "#rrggbb", or WhiteHex when malformed.
func RGBToHex(rgb string) string {
	r, g, b, ok := ParseRGB(rgb)
	if !ok {
		return WhiteHex
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexToRGB converts "#rgb" or "#rrggbb" to "r, g, b", or WhiteRGB when
// malformed.
func HexToRGB(hex string) string {
	if len(hex) == 0 || hex[0] != '#' {
		return WhiteRGB
	}
	var digits string
	switch len(hex) {
	case 4:
		digits = string([]byte{hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	case 7:
		digits = hex[1:]
	default:
		return WhiteRGB
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return WhiteRGB
	}
	return fmt.Sprintf("%d, %d, %d", (v>>16)&0xff, (v>>8)&0xff, v&0xff)
}

func channel(s string) uint8 {
	v, err := strconv.Atoi(s)
	if err != nil || v > 255 {
		// Only overflow reaches here; the pattern admits digits alone.
		return 255
	}
	return uint8(v)
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
