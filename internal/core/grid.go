package core

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned for grids smaller than one tile.
var ErrInvalidGrid = errors.New("grid must be at least 1x1")

// BorderMode selects which tiles are flagged as border tiles.
type BorderMode string

const (
	// BorderNone flags no tiles.
	BorderNone BorderMode = "none"
	// BorderFront flags the nearest row.
	BorderFront BorderMode = "front"
	// BorderFrame flags the nearest row and the outermost columns.
	BorderFrame BorderMode = "frame"
)

// ParseBorderMode validates a border mode name. The empty string selects
// BorderFront.
func ParseBorderMode(s string) (BorderMode, error) {
	switch BorderMode(s) {
	case "":
		return BorderFront, nil
	case BorderNone, BorderFront, BorderFrame:
		return BorderMode(s), nil
	}
	return "", fmt.Errorf("unknown border mode %q", s)
}

// Tile is one grid cell handed to the renderer. X and Y are tile-space
// coordinates: X is centred on the grid's middle column, Y is the row with
// 0 nearest to the viewer.
type Tile struct {
	Col, Row int
	X, Y     float64
	Quad     [4]Point
	Border   bool
}

// Seam reports whether the tile sits in the centre column whose draw is
// deferred until the rest of the frame is finished.
func (t Tile) Seam() bool { return t.X == 0 || t.X == -0.5 }

// Grid is the fixed-size tile grid and its traversal order.
type Grid struct {
	Columns int
	Rows    int
	Border  BorderMode
}

// NewGrid validates the dimensions and returns a grid.
func NewGrid(columns, rows int, border BorderMode) (Grid, error) {
	if columns < 1 || rows < 1 {
		return Grid{}, fmt.Errorf("%w: got %dx%d", ErrInvalidGrid, columns, rows)
	}
	if border == "" {
		border = BorderFront
	}
	return Grid{Columns: columns, Rows: rows, Border: border}, nil
}

// TileX converts a column index to its tile-space coordinate.
func (g Grid) TileX(col int) float64 {
	return float64(col) - float64(g.Columns)/2
}

// IsBorder reports whether the cell at (col, row) is a border tile.
func (g Grid) IsBorder(col, row int) bool {
	switch g.Border {
	case BorderFront:
		return row == 0
	case BorderFrame:
		return row == 0 || col == 0 || col == g.Columns-1
	}
	return false
}

// Tile builds the tile at (col, row), projecting its ground quad.
func (g Grid) Tile(p Projector, col, row int) Tile {
	x := g.TileX(col)
	y := float64(row)
	return Tile{
		Col: col,
		Row: row,
		X:   x,
		Y:   y,
		Quad: [4]Point{
			p.Project(x, y, 0),
			p.Project(x+1, y, 0),
			p.Project(x+1, y+1, 0),
			p.Project(x, y+1, 0),
		},
		Border: g.IsBorder(col, row),
	}
}

// Tiles returns every tile in traversal order: rows from the back of the
// grid to the front, columns left to right within a row.
func (g Grid) Tiles(p Projector) []Tile {
	if g.Columns < 1 || g.Rows < 1 {
		return nil
	}
	tiles := make([]Tile, 0, g.Columns*g.Rows)
	for row := g.Rows - 1; row >= 0; row-- {
		for col := 0; col < g.Columns; col++ {
			tiles = append(tiles, g.Tile(p, col, row))
		}
	}
	return tiles
}

// FrameHooks is the contract between a grid driver and whatever draws the
// tiles: BeforeDraw once, DrawTile once per tile, AfterDraw once.
type FrameHooks interface {
	BeforeDraw()
	DrawTile(t Tile)
	AfterDraw()
}

// Drive runs one frame of h over the grid in traversal order.
func (g Grid) Drive(p Projector, h FrameHooks) {
	h.BeforeDraw()
	for _, t := range g.Tiles(p) {
		h.DrawTile(t)
	}
	h.AfterDraw()
}
