//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a rendered frame into a single ebiten image.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a w*h frame.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Upload copies src into the painter image. Frames of the wrong size are
// ignored.
func (p *Painter) Upload(src image.Image) {
	b := src.Bounds()
	if b.Dx() != p.w || b.Dy() != p.h {
		return
	}
	fillImageRGBA(p.buf, src)
	p.img.WritePixels(p.buf)
}

// Blit draws the painter image onto dst.
func (p *Painter) Blit(dst *ebiten.Image) {
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
