package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// kn is the Lab/LCh step applied per unit of brighten or saturate, in
// go-colorful's 0..1 lightness scale.
const kn = 0.18

// Color is an immutable colour value with straight (non-premultiplied)
// alpha. Every adjustment returns a new Color.
type Color struct {
	rgb colorful.Color
	a   float64
}

// RGB returns an opaque colour from components in [0,1].
func RGB(r, g, b float64) Color {
	return Color{rgb: colorful.Color{R: r, G: g, B: b}.Clamped(), a: 1}
}

// Parse reads a "#rrggbb" or "#rgb" hex string.
func Parse(hex string) (Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, err
	}
	return Color{rgb: c, a: 1}, nil
}

// Brighten raises Lab lightness by 18 units per amount.
func (c Color) Brighten(amount float64) Color {
	l, a, b := c.rgb.Lab()
	return Color{rgb: colorful.Lab(l+kn*amount, a, b).Clamped(), a: c.a}
}

// Darken lowers Lab lightness by 18 units per amount.
func (c Color) Darken(amount float64) Color {
	return c.Brighten(-amount)
}

// Saturate raises LCh chroma by 18 units per amount. Chroma never drops
// below zero.
func (c Color) Saturate(amount float64) Color {
	h, ch, l := c.rgb.Hcl()
	ch += kn * amount
	if ch < 0 {
		ch = 0
	}
	if math.IsNaN(h) {
		h = 0
	}
	return Color{rgb: colorful.Hcl(h, ch, l).Clamped(), a: c.a}
}

// Desaturate lowers LCh chroma by 18 units per amount.
func (c Color) Desaturate(amount float64) Color {
	return c.Saturate(-amount)
}

// Alpha returns the colour with its alpha replaced, clamped to [0,1].
func (c Color) Alpha(a float64) Color {
	switch {
	case math.IsNaN(a) || a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	return Color{rgb: c.rgb, a: a}
}

// A reports the alpha component.
func (c Color) A() float64 { return c.a }

// lightness reports the Lab lightness in [0,1].
func (c Color) lightness() float64 {
	l, _, _ := c.rgb.Lab()
	return l
}

// chroma reports the LCh chroma.
func (c Color) chroma() float64 {
	_, ch, _ := c.rgb.Hcl()
	return ch
}

// Lerp interpolates linearly in RGB and alpha.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		rgb: c.rgb.BlendRgb(other.rgb, t).Clamped(),
		a:   c.a + (other.a-c.a)*t,
	}
}

// NRGBA converts to an 8-bit straight-alpha colour.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.rgb.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(c.a * 255))}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex formats the colour as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return c.rgb.Clamped().Hex()
}
