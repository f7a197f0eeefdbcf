package willowkit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Hex formats the color as an uppercase "#RRGGBBAA" string. Components are
// clamped to [0, 1] and rounded to the nearest 8-bit value.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// HexRGB formats the color as "#RRGGBB", dropping alpha.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// ColorFromHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is
// optional). Alpha defaults to 1 when omitted.
func ColorFromHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "FF"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("willowkit: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("willowkit: invalid hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xFF) / 255,
		G: float64(v>>16&0xFF) / 255,
		B: float64(v>>8&0xFF) / 255,
		A: float64(v&0xFF) / 255,
	}, nil
}

// ToRGBA converts to an 8-bit alpha-premultiplied color.RGBA, the form
// image/color and Ebitengine expect.
func (c Color) ToRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * a * 255)),
		G: uint8(math.Round(clamp01(c.G) * a * 255)),
		B: uint8(math.Round(clamp01(c.B) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
