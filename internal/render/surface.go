// Package render holds the drawing surfaces a scene is painted onto: a
// raster canvas backed by gg, a recorder used to compare frames, and the
// ebiten painter used by the viewer.
package render

import (
	"image/color"
	"math"

	"rise/internal/core"
)

// Paint is the fill and stroke applied to a shape. A zero alpha or a
// non-positive stroke width disables that half of the draw.
type Paint struct {
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64
}

// Fade is a straight segment whose stroke colour moves from FromColor to
// ToColor. Alpha is interpolated separately from FromAlpha to ToAlpha; the
// alpha channel of the two colours is ignored. Segments > 1 splits the line
// into that many solid pieces.
type Fade struct {
	From, To           core.Point
	FromColor, ToColor color.NRGBA
	FromAlpha, ToAlpha float64
	Width              float64
	Segments           int
}

// At returns the stroke colour at t in [0,1] along the segment.
func (f Fade) At(t float64) color.NRGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	alpha := clamp01(f.FromAlpha + (f.ToAlpha-f.FromAlpha)*t)
	return color.NRGBA{
		R: lerp(f.FromColor.R, f.ToColor.R),
		G: lerp(f.FromColor.G, f.ToColor.G),
		B: lerp(f.FromColor.B, f.ToColor.B),
		A: uint8(math.Round(alpha * 255)),
	}
}

// Surface receives the draw calls of a frame. Coordinates are pixels.
// Methods never fail: degenerate geometry is skipped.
type Surface interface {
	Clear(c color.NRGBA)
	FillQuad(q [4]core.Point, p Paint)
	Circle(center core.Point, radius float64, p Paint)
	Fade(f Fade)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
