package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// Swatches shown when the palette is collapsed.
var quickPalette = []PaletteColor{
	{"White", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	{"Red", color.RGBA{0xFF, 0x3D, 0x00, 0xFF}},
	{"Black", color.RGBA{0x00, 0x00, 0x00, 0xFF}},
	{"Blue", color.RGBA{0x19, 0x76, 0xD2, 0xFF}},
}

// Extra swatches shown when the palette is expanded, light to dark.
var expandedPalette = []PaletteColor{
	{"Cream", color.RGBA{0xFF, 0xFE, 0xCC, 0xFF}},
	{"Blush", color.RGBA{0xF8, 0xD3, 0xE3, 0xFF}},
	{"Peach", color.RGBA{0xFF, 0xD1, 0xA9, 0xFF}},
	{"Lilac", color.RGBA{0xED, 0xCA, 0xFF, 0xFF}},
	{"Ice", color.RGBA{0xCC, 0xF3, 0xFF, 0xFF}},
	{"Lemon", color.RGBA{0xF3, 0xED, 0x00, 0xFF}},
	{"Pink", color.RGBA{0xFF, 0x95, 0xD5, 0xFF}},
	{"Orange", color.RGBA{0xFA, 0x9A, 0x46, 0xFF}},
	{"Lavender", color.RGBA{0xB1, 0x8C, 0xFE, 0xFF}},
	{"Lime", color.RGBA{0xA8, 0xDB, 0x10, 0xFF}},
	{"Rose", color.RGBA{0xFB, 0x66, 0xA4, 0xFF}},
	{"Tangerine", color.RGBA{0xFC, 0x76, 0x00, 0xFF}},
	{"Violet", color.RGBA{0x97, 0x47, 0xFF, 0xFF}},
	{"Sky", color.RGBA{0x00, 0xC9, 0xFB, 0xFF}},
	{"Grass", color.RGBA{0x75, 0xBB, 0x41, 0xFF}},
	{"Crimson", color.RGBA{0xDC, 0x00, 0x57, 0xFF}},
	{"Salmon", color.RGBA{0xED, 0x74, 0x6C, 0xFF}},
	{"Indigo", color.RGBA{0x4D, 0x21, 0xB2, 0xFF}},
	{"Cornflower", color.RGBA{0x73, 0xA8, 0xFC, 0xFF}},
	{"Moss", color.RGBA{0x4E, 0x7A, 0x25, 0xFF}},
	{"Wine", color.RGBA{0x9D, 0x23, 0x4C, 0xFF}},
	{"Plum", color.RGBA{0x64, 0x15, 0x80, 0xFF}},
}

// paletteFor returns the swatches visible for the palette state.
func paletteFor(expanded bool) []PaletteColor {
	if !expanded {
		return quickPalette
	}
	all := make([]PaletteColor, 0, len(quickPalette)+len(expandedPalette))
	all = append(all, quickPalette...)
	return append(all, expandedPalette...)
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

func toHex(c color.RGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func writeClipboardText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available")
	}
	return clipboard.WriteAll(text)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
