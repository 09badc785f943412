// Package colors renders overlay opacity on a terminal. Colors are mixed
// toward the background in CIE LCh so a faded line keeps its hue.
package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type RGB struct {
	R, G, B int
}

// ParseHex reads #rrggbb, #rgb or #rrggbbaa (alpha is dropped). Anything
// else is white.
func ParseHex(hex string) RGB {
	white := RGB{255, 255, 255}

	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 8:
		hex = hex[:6]
	case 6:
	default:
		return white
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return white
	}
	return RGB{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
}

// Hex formats the color as #RRGGBB, clamping each channel.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v int) int {
	return max(0, min(255, v))
}

// Fade mixes fg toward bg so that fg keeps the given opacity.
func Fade(fg string, bg string, opacity float64) string {
	switch {
	case opacity >= 1:
		return ParseHex(fg).Hex()
	case opacity <= 0:
		return ParseHex(bg).Hex()
	}
	return mix(ParseHex(bg), ParseHex(fg), opacity).Hex()
}

// Gradient colors each rune of text along the blend from one color to the
// other.
func Gradient(text string, from string, to string, bold bool) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	start, end := ParseHex(from), ParseHex(to)

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(mix(start, end, t).Hex())).Bold(bold)
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// FormatTime renders seconds as m:ss. Negative or non-finite values render
// as 0:00.
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "0:00"
	}
	total := int64(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

type lch struct {
	l, c, h float64
}

// mix interpolates a to b in LCh along the shorter way around the hue
// circle.
func mix(a RGB, b RGB, t float64) RGB {
	p, q := toLCH(a), toLCH(b)

	dh := q.h - p.h
	switch {
	case dh > 180:
		dh -= 360
	case dh < -180:
		dh += 360
	}

	return fromLCH(lch{
		l: p.l + (q.l-p.l)*t,
		c: p.c + (q.c-p.c)*t,
		h: math.Mod(p.h+dh*t+360, 360),
	})
}

// sRGB to XYZ and back, D65 white.
var (
	rgbToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToRGB = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
	whiteD65 = [3]float64{0.95047, 1, 1.08883}
)

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

func apply(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64
	for i := range m {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return out
}

func toLinear(v int) float64 {
	f := float64(v) / 255
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

func fromLinear(v float64) int {
	if v > 0.0031308 {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	} else {
		v *= 12.92
	}
	return channel(int(math.Round(v * 255)))
}

func toLCH(c RGB) lch {
	xyz := apply(rgbToXYZ, [3]float64{toLinear(c.R), toLinear(c.G), toLinear(c.B)})

	var f [3]float64
	for i := range xyz {
		t := xyz[i] / whiteD65[i]
		if t > labEpsilon {
			f[i] = math.Cbrt(t)
		} else {
			f[i] = labKappa*t + labOffset
		}
	}

	a := 500 * (f[0] - f[1])
	b := 200 * (f[1] - f[2])

	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return lch{l: 116*f[1] - 16, c: math.Hypot(a, b), h: h}
}

func fromLCH(p lch) RGB {
	rad := p.h * math.Pi / 180
	fy := (p.l + 16) / 116
	f := [3]float64{
		fy + p.c*math.Cos(rad)/500,
		fy,
		fy - p.c*math.Sin(rad)/200,
	}

	var xyz [3]float64
	for i, v := range f {
		if cube := v * v * v; cube > labEpsilon {
			xyz[i] = cube
		} else {
			xyz[i] = (v - labOffset) / labKappa
		}
		xyz[i] *= whiteD65[i]
	}

	lin := apply(xyzToRGB, xyz)
	return RGB{fromLinear(lin[0]), fromLinear(lin[1]), fromLinear(lin[2])}
}
