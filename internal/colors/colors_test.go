package colors

import (
	"math"
	"strings"
	"testing"
)

func near(t *testing.T, hex string, want RGB) {
	t.Helper()
	got := ParseHex(hex)
	if abs(got.R-want.R) > 2 || abs(got.G-want.G) > 2 || abs(got.B-want.B) > 2 {
		t.Errorf("%s: got %+v, want about %+v", hex, got, want)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#1db954", RGB{0x1d, 0xb9, 0x54}},
		{"1DB954", RGB{0x1d, 0xb9, 0x54}},
		{"#fff", RGB{255, 255, 255}},
		{"#0a0", RGB{0, 0xaa, 0}},
		{"#11223380", RGB{0x11, 0x22, 0x33}},
		{"", RGB{255, 255, 255}},
		{"#zzzzzz", RGB{255, 255, 255}},
	}

	for _, tt := range tests {
		if got := ParseHex(tt.in); got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexClamps(t *testing.T) {
	if got := (RGB{300, -5, 16}).Hex(); got != "#FF0010" {
		t.Errorf("got %s", got)
	}
}

func TestFade(t *testing.T) {
	if got := Fade("#1db954", "#000000", 1); got != "#1DB954" {
		t.Errorf("full opacity should keep the color, got %s", got)
	}
	if got := Fade("#1db954", "#000000", 0); got != "#000000" {
		t.Errorf("zero opacity should be the background, got %s", got)
	}

	half := ParseHex(Fade("#ffffff", "#000000", 0.5))
	if half.R <= 0 || half.R >= 255 || abs(half.R-half.G) > 1 || abs(half.G-half.B) > 1 {
		t.Errorf("half fade of white on black should be a gray, got %+v", half)
	}
}

func TestFadeIsMonotonic(t *testing.T) {
	prev := -1
	for _, opacity := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		got := ParseHex(Fade("#ffffff", "#000000", opacity))
		if got.R < prev {
			t.Errorf("opacity %v got darker: %d after %d", opacity, got.R, prev)
		}
		prev = got.R
	}
}

func TestMixRoundTripsEndpoints(t *testing.T) {
	red, blue := RGB{255, 0, 0}, RGB{0, 0, 255}
	near(t, mix(red, blue, 0).Hex(), red)
	near(t, mix(red, blue, 1).Hex(), blue)
	near(t, Fade("#1db954", "#121212", 0.999), RGB{0x1d, 0xb9, 0x54})
}

func TestGradient(t *testing.T) {
	if Gradient("", "#fff", "#000", false) != "" {
		t.Error("empty text should render empty")
	}
	if got := Gradient("abc", "#ff0000", "#0000ff", true); stripANSI(got) != "abc" {
		t.Errorf("text lost in %q", got)
	}
}

func stripANSI(s string) string {
	var out strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			esc = false
		case !esc:
			out.WriteRune(r)
		}
	}
	return out.String()
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{5.9, "0:05"},
		{65, "1:05"},
		{600, "10:00"},
		{-3, "0:00"},
		{math.Inf(1), "0:00"},
		{math.NaN(), "0:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
