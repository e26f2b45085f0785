// Package projection provides the 3D to screen projectors used to place
// tiles. Both projectors are pure functions of their inputs and are
// registered by name in the core registry.
package projection

import (
	"math"

	"rise/internal/core"
)

// Default is the projector name used when none is configured.
const Default = "perspective"

// minDepth keeps points behind the eye from dividing by zero.
const minDepth = 1e-3

// Perspective is a one-point perspective looking down the rows of the grid
// towards a vanishing point behind the last row.
type Perspective struct {
	CenterX     float64
	Horizon     float64
	Eye         float64
	Focal       float64
	Distance    float64
	HeightScale float64
}

// NewPerspective fits a perspective to the grid so the front row spans the
// canvas width.
func NewPerspective(g core.Grid) Perspective {
	cols := math.Max(1, float64(g.Columns))
	p := Perspective{
		CenterX:     0.5,
		Horizon:     0.38,
		Distance:    1.5,
		HeightScale: 3,
	}
	p.Focal = 1.1 * p.Distance / cols
	p.Eye = (0.92 - p.Horizon) * p.Distance / p.Focal
	return p
}

// Project implements core.Projector.
func (p Perspective) Project(x, y, z float64) core.Point {
	d := y + p.Distance
	if d < minDepth {
		d = minDepth
	}
	k := p.Focal / d
	return core.Point{
		X: p.CenterX + x*k,
		Y: p.Horizon + (p.Eye-z*p.HeightScale)*k,
	}
}

// Oblique is a parallel projection: rows recede straight up the canvas at
// a fixed rate with no foreshortening.
type Oblique struct {
	CenterX     float64
	Base        float64
	Cell        float64
	Depth       float64
	Shear       float64
	HeightScale float64
}

// NewOblique fits an oblique projection to the grid.
func NewOblique(g core.Grid) Oblique {
	cols := math.Max(1, float64(g.Columns))
	rows := math.Max(1, float64(g.Rows))
	o := Oblique{
		CenterX:     0.5,
		Base:        0.92,
		Cell:        0.9 / cols,
		Depth:       0.5,
		HeightScale: 1,
	}
	if span := rows * o.Depth * o.Cell; span > 0.75 {
		o.Depth *= 0.75 / span
	}
	return o
}

// Project implements core.Projector.
func (o Oblique) Project(x, y, z float64) core.Point {
	return core.Point{
		X: o.CenterX + (x+y*o.Shear)*o.Cell,
		Y: o.Base - (y*o.Depth+z*o.HeightScale)*o.Cell,
	}
}

func override(dst *float64, opts map[string]float64, key string) {
	if v, ok := opts[key]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
		*dst = v
	}
}

func init() {
	core.RegisterProjection("perspective", func(g core.Grid, opts map[string]float64) core.Projector {
		p := NewPerspective(g)
		override(&p.CenterX, opts, "center_x")
		override(&p.Horizon, opts, "horizon")
		override(&p.Distance, opts, "distance")
		override(&p.Focal, opts, "focal")
		override(&p.Eye, opts, "eye")
		override(&p.HeightScale, opts, "height_scale")
		return p
	}, "center_x", "horizon", "distance", "focal", "eye", "height_scale")
	core.RegisterProjection("oblique", func(g core.Grid, opts map[string]float64) core.Projector {
		o := NewOblique(g)
		override(&o.CenterX, opts, "center_x")
		override(&o.Base, opts, "base")
		override(&o.Cell, opts, "cell")
		override(&o.Depth, opts, "depth")
		override(&o.Shear, opts, "shear")
		override(&o.HeightScale, opts, "height_scale")
		return o
	}, "center_x", "base", "cell", "depth", "shear", "height_scale")
}
