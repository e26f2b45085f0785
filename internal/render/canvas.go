package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"rise/internal/core"

	"github.com/gogpu/gg"
)

// ErrInvalidSize is returned for canvases smaller than one pixel.
var ErrInvalidSize = errors.New("canvas must be at least 1x1 pixels")

// Canvas rasterises draw calls with gg's software renderer.
type Canvas struct {
	dc       *gg.Context
	w, h     int
	failures int
}

// NewCanvas allocates a w*h canvas.
func NewCanvas(w, h int) (*Canvas, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return &Canvas{dc: gg.NewContext(w, h), w: w, h: h}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// Failures counts rasteriser errors swallowed since the canvas was created.
func (c *Canvas) Failures() int { return c.failures }

// Clear paints the whole canvas.
func (c *Canvas) Clear(col color.NRGBA) {
	c.dc.ClearPath()
	c.dc.ClearWithColor(straight(col))
}

// FillQuad implements Surface.
func (c *Canvas) FillQuad(q [4]core.Point, p Paint) {
	for _, pt := range q {
		if !finite(pt.X, pt.Y) {
			return
		}
	}
	c.dc.MoveTo(q[0].X, q[0].Y)
	for _, pt := range q[1:] {
		c.dc.LineTo(pt.X, pt.Y)
	}
	c.dc.ClosePath()
	c.paintPath(p)
}

// Circle implements Surface.
func (c *Canvas) Circle(center core.Point, radius float64, p Paint) {
	if !finite(center.X, center.Y, radius) || radius <= 0 {
		return
	}
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.paintPath(p)
}

// Fade implements Surface.
func (c *Canvas) Fade(f Fade) {
	if !finite(f.From.X, f.From.Y, f.To.X, f.To.Y, f.Width) || f.Width <= 0 {
		return
	}
	if f.From == f.To {
		return
	}
	c.dc.SetLineWidth(f.Width)
	if f.Segments > 1 {
		n := float64(f.Segments)
		for i := 0; i < f.Segments; i++ {
			t0, t1 := float64(i)/n, float64(i+1)/n
			c.setRGBA(f.At((t0 + t1) / 2))
			c.dc.MoveTo(f.From.X+(f.To.X-f.From.X)*t0, f.From.Y+(f.To.Y-f.From.Y)*t0)
			c.dc.LineTo(f.From.X+(f.To.X-f.From.X)*t1, f.From.Y+(f.To.Y-f.From.Y)*t1)
			c.check(c.dc.Stroke())
		}
		return
	}
	brush := gg.NewLinearGradientBrush(f.From.X, f.From.Y, f.To.X, f.To.Y).
		AddColorStop(0, straight(f.At(0))).
		AddColorStop(1, straight(f.At(1)))
	c.dc.SetStrokeBrush(brush)
	c.dc.MoveTo(f.From.X, f.From.Y)
	c.dc.LineTo(f.To.X, f.To.Y)
	c.check(c.dc.Stroke())
}

func (c *Canvas) paintPath(p Paint) {
	stroke := p.Stroke.A > 0 && p.StrokeWidth > 0
	if p.Fill.A > 0 {
		c.setRGBA(p.Fill)
		if stroke {
			c.check(c.dc.FillPreserve())
		} else {
			c.check(c.dc.Fill())
		}
	}
	if stroke {
		c.setRGBA(p.Stroke)
		c.dc.SetLineWidth(p.StrokeWidth)
		c.check(c.dc.Stroke())
	}
	c.dc.ClearPath()
}

func (c *Canvas) setRGBA(col color.NRGBA) {
	c.dc.SetRGBA(unit(col.R), unit(col.G), unit(col.B), unit(col.A))
}

func (c *Canvas) check(err error) {
	if err != nil {
		c.failures++
	}
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the gg context.
func (c *Canvas) Close() error { return c.dc.Close() }

func unit(v uint8) float64 { return float64(v) / 255 }

// straight converts without the premultiplication color.Color.RGBA applies.
func straight(c color.NRGBA) gg.RGBA {
	return gg.RGBA{R: unit(c.R), G: unit(c.G), B: unit(c.B), A: unit(c.A)}
}
