//go:build ebiten

package ui

import (
	"image/color"

	"rise/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	lineHeight   = 16
	firstLine    = panelPadding + 13
)

// HUD renders the parameter panel over the top-left of the frame.
type HUD struct {
	width int
	panel *ebiten.Image
	lines []string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	return &HUD{width: max(width, 0)}
}

// SetSnapshot replaces the parameters shown.
func (h *HUD) SetSnapshot(snap core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.lines = append([]string{"rise"}, Lines(snap)...)
	h.panel = nil
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || len(h.lines) == 0 {
		return
	}
	height := 2*panelPadding + len(h.lines)*lineHeight
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, height)
		h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
		face := basicfont.Face7x13
		for i, line := range h.lines {
			col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
			if i == 0 {
				col = color.RGBA{R: 200, G: 200, B: 210, A: 255}
			}
			text.Draw(h.panel, line, face, panelPadding, firstLine+i*lineHeight, col)
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// Overlay draws tile outlines over the frame, seam tiles highlighted.
type Overlay struct {
	show bool
	segs []Segment
}

// NewOverlay returns a hidden overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.show = !o.show }

// SetTiles replaces the outlined tiles.
func (o *Overlay) SetTiles(tiles []core.Tile, toPixels func(core.Point) core.Point) {
	o.segs = Outline(tiles, toPixels)
}

// Draw strokes the outlines when the overlay is shown.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show {
		return
	}
	grid := color.RGBA{R: 80, G: 200, B: 255, A: 160}
	seam := color.RGBA{R: 255, G: 70, B: 70, A: 220}
	for _, s := range o.segs {
		col := grid
		if s.Seam {
			col = seam
		}
		vector.StrokeLine(screen, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), 1, col, true)
	}
}
