package scene

import (
	"fmt"
	"math"

	"rise/internal/core"
	"rise/internal/ease"
	"rise/internal/palette"
	"rise/internal/render"
)

// sample is one point of a tile's height field.
type sample struct {
	i, j   int
	point  core.Point
	col    palette.Color
	height float64
	offset float64
}

// plan is everything drawn or derived once per tile before the passes run.
type plan struct {
	tile core.Tile
	res  int
	q0   core.Point

	depth     float64
	rowFactor float64

	baseCol  palette.Color
	col      palette.Color
	height   float64
	modifier float64
	stroke   float64

	bubbleChance    float64
	bubbleRowFactor float64
	bubbleAlpha     float64
	ripple          float64

	samples []sample
}

// pass is one full sweep over a tile's sub-grid.
type pass struct {
	name string
	run  func(s *Scene, p *plan)
}

// tilePasses run in order; each draws over the previous ones.
var tilePasses = []pass{
	{"bubbles", (*Scene).bubbles},
	{"tops", (*Scene).tops},
	{"curtains", (*Scene).curtains},
}

// PassNames lists the tile passes in draw order.
func PassNames() []string {
	names := make([]string, len(tilePasses))
	for i, p := range tilePasses {
		names[i] = p.name
	}
	return names
}

func tileLabel(t core.Tile) string { return fmt.Sprintf("tile %d,%d", t.Col, t.Row) }

// RenderTile draws one structure immediately, with no seam deferral.
func (s *Scene) RenderTile(t core.Tile) {
	s.tag(tileLabel(t))
	p := s.plan(t)
	s.baseQuad(p)
	for _, ps := range tilePasses {
		ps.run(s, p)
	}
}

func (s *Scene) plan(t core.Tile) *plan {
	rows := float64(s.grid.Rows)
	p := &plan{
		tile:      t,
		res:       Resolution(t.Row, s.grid.Rows, s.tuning.Detail),
		q0:        t.Quad[0],
		depth:     t.Y / rows,
		rowFactor: (rows - t.Y) / rows,
	}
	p.baseCol = s.src.Ramp(s.src.Float())

	h := Remap(HeightBase(t.X, t.Y), -3, 1, s.params.Height.Min, s.params.Height.Max)
	h += s.src.Between(0.02, 0.15) * ease.Building.Eval(1-t.Y)
	p.height = h

	p.modifier = s.src.In(s.params.HeightVariance)
	if t.Border {
		p.modifier *= s.src.In(s.params.BorderHeight)
	}

	p.col = p.baseCol.
		Desaturate(Remap(p.q0.Y, 0, 1, 2, 0)).
		Darken(Remap(p.q0.Y, 0, 1, 3, 0))

	p.stroke = (1 - p.depth) * 5 * s.sizeVar
	if t.Row < 4 {
		p.stroke = s.s / 250
	}

	bubbleRows := float64(s.tuning.BubbleRows)
	if t.Y < bubbleRows {
		p.bubbleChance = s.src.Between(0.025, 0.125) * (1 - t.Y/bubbleRows)
	}
	if bubbleRows > 0 {
		p.bubbleRowFactor = (bubbleRows - t.Y) / bubbleRows
	}
	p.bubbleAlpha = s.src.Between(0.2, 1)
	p.ripple = s.src.Between(0.92, 1.08)

	p.samples = make([]sample, 0, (p.res+1)*(p.res+1))
	for j := 0; j <= p.res; j++ {
		for i := 0; i <= p.res; i++ {
			p.samples = append(p.samples, s.sample(p, i, j))
		}
	}
	return p
}

// sample evaluates the height field at sub-grid point (i, j).
func (s *Scene) sample(p *plan, i, j int) sample {
	res := float64(p.res)
	fi, fj := float64(i), float64(j)
	edge := j < 2 || j > p.res-1 || i < 2 || i > p.res-1

	h := p.height + p.modifier + Remap(math.Sin(p.q0.X*4), -1, 1, 0, 0.2)
	if p.tile.Border {
		h += s.tuning.BorderHeight
	}

	adjuster := res / 32
	offset := math.Sin(fi/s.params.SurfaceSin/adjuster*p.ripple) *
		math.Cos(fj/s.params.SurfaceCos/adjuster*p.ripple)
	h += Remap(offset, -1, 1, -s.params.Amplitude, s.params.Amplitude)

	shade := (res - fj) / res
	col := p.col.Darken(shade)
	if s.params.LightMode {
		col = p.col.Brighten(shade)
	}
	col = col.Desaturate(math.Abs(0.75-p.height) / 2)
	if edge {
		col = col.Darken(0.2)
	}

	return sample{
		i:      i,
		j:      j,
		point:  s.proj.Project(p.tile.X+fi/res, p.tile.Y+fj/res, h),
		col:    col,
		height: h,
		offset: offset,
	}
}

// baseQuad paints the tile's ground quad, fainter further back.
func (s *Scene) baseQuad(p *plan) {
	var q [4]core.Point
	for k, pt := range p.tile.Quad {
		q[k] = s.px(pt)
	}
	rf := p.rowFactor
	s.surface.FillQuad(q, render.Paint{
		Fill:        p.baseCol.Brighten(1).Desaturate(1 - rf).Alpha(rf * 3).NRGBA(),
		Stroke:      p.baseCol.Desaturate((1 - rf) * 3).Alpha(rf).NRGBA(),
		StrokeWidth: 1,
	})
}

// bubbles spawns rising chains of circles from random sub-grid points.
func (s *Scene) bubbles(p *plan) {
	res := float64(p.res)
	brf := p.bubbleRowFactor
	for j := 0; j <= p.res; j++ {
		for i := 0; i <= p.res; i++ {
			if s.src.Float() >= p.bubbleChance {
				continue
			}
			darken := s.src.Float() * (1 - brf)
			desat := s.src.Between(0, float64(j)/res*2) * (1 - brf)
			sizeMin, sizeMax := s.src.Between(0.2, 0.5), s.src.Between(0.5, 3.5)

			h := 0.0
			if p.tile.Border {
				h = s.tuning.BorderHeight
			}
			base := s.proj.Project(p.tile.X+float64(i)/res, p.tile.Y+float64(j)/res, 0)
			riseMin, riseMax := s.src.Between(-0.0002, -0.001), s.src.Between(0.002, 0.015)

			n := s.src.IntBetween(15, 30)
			for k := 0; k < n; k++ {
				fk := float64(k)
				h += math.Pow(fk*0.0002, 1.05) + s.src.Between(riseMin, riseMax)
				c := p.col.
					Darken(darken + fk*0.05).
					Alpha((25 - fk) / 25 * brf * p.bubbleAlpha).
					Desaturate(desat)
				jitter := s.src.Between(-fk*0.0002, fk*0.0002)
				d := s.src.Between(sizeMin, sizeMax) * p.rowFactor * s.sizeVar
				s.surface.Circle(s.px(core.Point{X: base.X + jitter, Y: base.Y - h}), d/2, render.Paint{
					Fill:        c.Darken(1).NRGBA(),
					Stroke:      c.NRGBA(),
					StrokeWidth: 1,
				})
			}
		}
	}
}

// tops dots every height-field sample.
func (s *Scene) tops(p *plan) {
	width := 3.5 * s.sizeVar * p.rowFactor
	for _, sm := range p.samples {
		s.surface.Circle(s.px(sm.point), p.rowFactor/2, render.Paint{
			Stroke:      sm.col.Brighten(sm.offset / 4).NRGBA(),
			StrokeWidth: width,
		})
	}
}

// curtain carries the hanging length from one edge point to the next.
type curtain struct {
	length float64
	first  float64
}

// next returns the length for point (i, j), starting a new curtain when
// none is hanging.
func (c *curtain) next(s *Scene, sm sample) float64 {
	if c.length == 0 {
		c.length = s.src.Between(sm.height*0.5, sm.height*0.75)
		c.first = c.length
	}
	if sm.j == 1 && sm.i == 0 {
		c.length = c.first
	}
	if c.length < 0 {
		c.length = 0
	}
	return c.length
}

// hangs reports whether a curtain drops from sample (i, j). Lateral edges
// are skipped on seam tiles.
func hangs(p *plan, i, j int) bool {
	if j == 0 {
		return true
	}
	if p.tile.Seam() {
		return false
	}
	return (p.q0.X < 0.5 && i == p.res) || (p.q0.X > 0.5 && i == 0)
}

// curtains hangs fading lines from the front and outer side edges.
func (s *Scene) curtains(p *plan) {
	res := float64(p.res)
	width := p.stroke * p.rowFactor
	shine := math.Sin(p.q0.X*4) * math.Cos(p.q0.Y*8) / 3
	var c curtain
	for _, sm := range p.samples {
		if !hangs(p, sm.i, sm.j) {
			continue
		}
		col := sm.col.Desaturate(math.Abs(0.75-p.height) / 2)
		if sm.j != 0 && (sm.i == 0 || sm.i == p.res) {
			col = col.Darken(1 + float64(sm.j)/res*2)
		}
		col = col.Brighten(shine)

		drift := s.src.In(s.params.CurtainDrift)
		length := c.next(s, sm)

		x := p.tile.X + float64(sm.i)/res + 1/res/4
		y := p.tile.Y + float64(sm.j)/res
		s.surface.Fade(render.Fade{
			From:      s.px(s.proj.Project(x, y, sm.height)),
			To:        s.px(s.proj.Project(x, y, sm.height-length)),
			FromColor: col.NRGBA(),
			ToColor:   col.Saturate(2).NRGBA(),
			FromAlpha: 1,
			ToAlpha:   0,
			Width:     width,
		})
		c.length += drift
	}
}
