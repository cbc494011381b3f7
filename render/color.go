package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lerp blends two colors in RGB space, t clamped to [0, 1]
func Lerp(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	c := toColorful(a).BlendRgb(toColorful(b), t)
	r, g, bl := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// Ramp returns n colors stepping from a to b inclusive
func Ramp(a, b tcell.Color, n int) []tcell.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []tcell.Color{a}
	}
	out := make([]tcell.Color, n)
	for i := range out {
		out[i] = Lerp(a, b, float64(i)/float64(n-1))
	}
	return out
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.TrueColor().RGB()
	if r < 0 {
		r, g, b = 0, 0, 0
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
