package plot

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"

	"github.com/gogpu/plot/gpucore"
)

// RGBA is an 8-bit straight-alpha color.
type RGBA struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xFF
	g = uint32(c.G) * a / 0xFF
	b = uint32(c.B) * a / 0xFF
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// float returns the color with components scaled to [0, 1].
func (c RGBA) float() gpucore.Color {
	return gpucore.Color{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'.
func Hex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var short bool
	switch len(s) {
	case 3, 4:
		short = true
	case 6, 8:
	default:
		return RGBA{}, fmt.Errorf("plot: hex color %q: bad length", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("plot: hex color %q: %w", hex, err)
	}

	if short {
		digits := len(s)
		c := RGBA{A: 0xFF}
		parts := []*uint8{&c.R, &c.G, &c.B, &c.A}
		for i := 0; i < digits; i++ {
			d := uint8(v >> (4 * uint(digits-1-i)) & 0xF) //nolint:gosec // masked to 4 bits
			*parts[i] = d * 17
		}
		return c, nil
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA{
		R: uint8(v >> 24), //nolint:gosec // byte extraction
		G: uint8(v >> 16), //nolint:gosec // byte extraction
		B: uint8(v >> 8),  //nolint:gosec // byte extraction
		A: uint8(v),       //nolint:gosec // byte extraction
	}, nil
}

// String returns the color as "#RRGGBBAA".
func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 0xFF}
	White       = RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Red         = RGBA{0xFF, 0, 0, 0xFF}
	Green       = RGBA{0, 0xFF, 0, 0xFF}
	Blue        = RGBA{0, 0, 0xFF, 0xFF}
	Yellow      = RGBA{0xFF, 0xFF, 0, 0xFF}
	Cyan        = RGBA{0, 0xFF, 0xFF, 0xFF}
	Magenta     = RGBA{0xFF, 0, 0xFF, 0xFF}
	Transparent = RGBA{}
)

// heatStops is the ramp used by HeatColor, from cold to hot.
var heatStops = [...]RGBA{Blue, Cyan, Green, Yellow, Red}

// HeatColor maps value within [lo, hi] onto a blue-cyan-green-yellow-red
// ramp. Values outside the range are clamped; an empty range maps to the
// cold end.
func HeatColor(value, lo, hi float32) RGBA {
	var t float32
	if hi != lo {
		t = (value - lo) / (hi - lo)
	}
	switch {
	case math32.IsNaN(t) || t <= 0:
		return heatStops[0]
	case t >= 1:
		return heatStops[len(heatStops)-1]
	}

	pos := t * float32(len(heatStops)-1)
	i := int(pos)
	f := pos - float32(i)
	a, b := heatStops[i], heatStops[i+1]
	return RGBA{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
		A: 0xFF,
	}
}

func lerp8(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
}
