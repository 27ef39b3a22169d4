package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned by ParseColor for names outside the palette.
var ErrUnknownColor = errors.New("core: unknown color")

// Color identifies one of the nine named colors a tile can carry.
// The zero value is not a valid color.
type Color uint8

// The game palette, in display order.
const (
	ColorNone Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorOrange
	ColorPurple
	ColorPink
	ColorCyan
	ColorLime
)

// PaletteSize is the number of playable colors.
const PaletteSize = 9

type colorInfo struct {
	name string
	hex  string
}

var palette = [...]colorInfo{
	ColorNone:   {"", ""},
	ColorRed:    {"RED", "#FF0000"},
	ColorBlue:   {"BLUE", "#0000FF"},
	ColorGreen:  {"GREEN", "#008000"},
	ColorYellow: {"YELLOW", "#FFD700"},
	ColorOrange: {"ORANGE", "#FF8C00"},
	ColorPurple: {"PURPLE", "#800080"},
	ColorPink:   {"PINK", "#FF1493"},
	ColorCyan:   {"CYAN", "#00FFFF"},
	ColorLime:   {"LIME", "#32CD32"},
}

// AllColors returns the full palette in display order.
// A fresh slice is returned on every call.
func AllColors() []Color {
	colors := make([]Color, 0, PaletteSize)
	for c := ColorRed; c <= ColorLime; c++ {
		colors = append(colors, c)
	}
	return colors
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	return c >= ColorRed && c <= ColorLime
}

// Name returns the upper-case display name, e.g. "RED".
func (c Color) Name() string {
	if !c.Valid() {
		return ""
	}
	return palette[c].name
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return palette[c].name
}

// Hex returns the display value as "#RRGGBB".
func (c Color) Hex() string {
	if !c.Valid() {
		return ""
	}
	return palette[c].hex
}

// RGB returns the red, green and blue channels of the display value.
func (c Color) RGB() (r, g, b uint8) {
	r, g, b, _ = parseHexRGB(c.Hex())
	return r, g, b
}

// Spoken returns the lower-case form used when the name is read aloud.
func (c Color) Spoken() string {
	return strings.ToLower(c.Name())
}

// ParseColor resolves a color by name, case-insensitively.
func ParseColor(name string) (Color, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for c := ColorRed; c <= ColorLime; c++ {
		if palette[c].name == name {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// parseHexRGB splits "#RRGGBB" into its channels.
func parseHexRGB(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
