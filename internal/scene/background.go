package scene

import (
	"math"

	"rise/internal/core"
	"rise/internal/ease"
	"rise/internal/palette"
	"rise/internal/render"
)

// Background paints the backdrop: radial rings around the vanishing point,
// a horizon glow and a fan of rays suggesting a hill.
func (s *Scene) Background() {
	s.tag("background")
	light := s.params.LightMode

	var (
		idx  float64
		base palette.Color
	)
	if light {
		idx = 0.5
		if s.src.Float() > 0.5 {
			idx = 1
		}
		base = s.src.Ramp(idx).Desaturate(0.2)
	} else {
		idx = 0.5
		if s.src.Float() > 0.5 {
			idx = 0
		}
		base = s.src.Ramp(idx).Darken(0.25).Desaturate(0.5)
	}

	center := s.proj.Project(0, float64(s.grid.Rows), 0.1)
	c := s.px(center)

	for d := 2 * int(s.s); d > 0; d -= s.tuning.RingStep {
		amt := float64(d) / s.s * 2
		ring := base.Darken(amt)
		if light {
			ring = base.Brighten(amt)
		}
		col := ring.NRGBA()
		s.surface.Circle(c, float64(d)/2, render.Paint{Fill: col, Stroke: col, StrokeWidth: 1})
	}

	glow := s.src.Ramp(0.5).Brighten(1).NRGBA()
	deep := s.src.Ramp(0.75).Darken(1).NRGBA()
	width := s.sizeVar
	s.surface.Fade(render.Fade{
		From:      s.px(core.Point{X: center.X - 0.4, Y: center.Y}),
		To:        c,
		FromColor: glow,
		ToColor:   deep,
		FromAlpha: 0,
		ToAlpha:   1,
		Width:     width,
	})
	s.surface.Fade(render.Fade{
		From:      c,
		To:        s.px(core.Point{X: center.X + 0.4, Y: center.Y}),
		FromColor: deep,
		ToColor:   glow,
		FromAlpha: 1,
		ToAlpha:   0,
		Width:     width,
	})

	angle := math.Pi*1.25 + s.src.Between(0, math.Pi*0.5)
	reach := s.src.Between(0.2, 0.4)
	peak := core.Point{X: center.X + math.Cos(angle)*reach, Y: center.Y + math.Sin(angle)*reach}
	total := s.src.IntBetween(175, 500)

	from, to := s.src.Ramp(0.2).Darken(1), s.src.Ramp(0.8).Brighten(1)
	if idx <= 0.5 {
		from, to = s.src.Ramp(0.8).Darken(1), s.src.Ramp(0.2).Brighten(1)
	}
	fromCol, toCol := from.NRGBA(), to.NRGBA()
	for i := 0; i < total; i++ {
		diff := (float64(i) - float64(total)/2) / (float64(total) * 0.5)
		dist := math.Abs(diff) * 2
		shift := core.Point{X: diff}
		s.surface.Fade(render.Fade{
			From:      s.px(center.Add(shift)),
			To:        s.px(peak.Add(shift)),
			FromColor: fromCol,
			ToColor:   toCol,
			FromAlpha: ease.Backdrop.Eval(dist),
			ToAlpha:   0,
			Width:     2 * s.sizeVar,
		})
	}
}
