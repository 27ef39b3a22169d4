package core

import (
	"errors"
	"testing"
)

func TestAllColors(t *testing.T) {
	colors := AllColors()
	if len(colors) != PaletteSize {
		t.Fatalf("AllColors() returned %d colors, expected %d", len(colors), PaletteSize)
	}

	seen := make(map[Color]bool)
	for _, c := range colors {
		if !c.Valid() {
			t.Errorf("AllColors() contains invalid color %v", c)
		}
		if seen[c] {
			t.Errorf("AllColors() contains duplicate %v", c)
		}
		seen[c] = true
	}

	// Mutating the result must not affect later calls
	colors[0] = ColorNone
	if AllColors()[0] != ColorRed {
		t.Error("AllColors() should return a fresh slice")
	}
}

func TestColorHexAndRGB(t *testing.T) {
	tests := []struct {
		color   Color
		hex     string
		r, g, b uint8
	}{
		{ColorRed, "#FF0000", 255, 0, 0},
		{ColorBlue, "#0000FF", 0, 0, 255},
		{ColorGreen, "#008000", 0, 128, 0},
		{ColorYellow, "#FFD700", 255, 215, 0},
		{ColorLime, "#32CD32", 50, 205, 50},
	}

	for _, tc := range tests {
		t.Run(tc.color.Name(), func(t *testing.T) {
			if tc.color.Hex() != tc.hex {
				t.Errorf("Hex() = %q, expected %q", tc.color.Hex(), tc.hex)
			}
			r, g, b := tc.color.RGB()
			if r != tc.r || g != tc.g || b != tc.b {
				t.Errorf("RGB() = (%d, %d, %d), expected (%d, %d, %d)", r, g, b, tc.r, tc.g, tc.b)
			}
		})
	}
}

func TestColorNone(t *testing.T) {
	if ColorNone.Valid() {
		t.Error("ColorNone should not be valid")
	}
	if ColorNone.Name() != "" || ColorNone.Hex() != "" {
		t.Error("ColorNone should have no name or hex")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" cyan ")
	if err != nil {
		t.Fatalf("ParseColor() failed: %v", err)
	}
	if c != ColorCyan {
		t.Errorf("ParseColor(cyan) = %v, expected CYAN", c)
	}

	for _, c := range AllColors() {
		parsed, err := ParseColor(c.Name())
		if err != nil || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.Name(), parsed, err)
		}
	}

	if _, err := ParseColor("mauve"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("ParseColor(mauve) error = %v, expected ErrUnknownColor", err)
	}
}

func TestParseHexRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#FF8C00", 0xFF, 0x8C, 0x00, true},
		{"#32cd32", 0x32, 0xCD, 0x32, true},
		{"#GG0000", 0, 0, 0, false},
		{"#FF00", 0, 0, 0, false},
		{"FF00000", 0, 0, 0, false},
		{"#+F0000", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}

	for _, tc := range tests {
		r, g, b, ok := parseHexRGB(tc.in)
		if ok != tc.ok || r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("parseHexRGB(%q) = (%d, %d, %d, %v), expected (%d, %d, %d, %v)",
				tc.in, r, g, b, ok, tc.r, tc.g, tc.b, tc.ok)
		}
	}
}
