package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (leading '#' optional,
// also accepts a 0x prefix) into an RGBA color. Alpha defaults to 0xff.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("core: invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return HexRGBA(uint32(v)), nil
}

// HexRGBA unpacks a 0xRRGGBBAA literal.
func HexRGBA(hx uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hx >> 24),
		G: uint8(hx >> 16),
		B: uint8(hx >> 8),
		A: uint8(hx),
	}
}

// InvertRGB flips the color channels and keeps alpha.
func InvertRGB(c color.RGBA) color.RGBA {
	return color.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}
