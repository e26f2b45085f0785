// Package scene synthesises a frame: the backdrop, the structure on every
// tile and the deferred redraw of the seam column.
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"rise/internal/core"
	"rise/internal/render"
	"rise/internal/style"
)

// Detail selects the sub-grid resolution of a tile from its depth.
type Detail struct {
	// FrontRows is the last row drawn at NearRes.
	FrontRows int
	// Far and Mid are depth thresholds in [0,1].
	Far, Mid float64

	FarRes, MidRes, BaseRes, NearRes int
}

// DefaultDetail returns the stock level-of-detail table.
func DefaultDetail() Detail {
	return Detail{FrontRows: 4, Far: 0.8, Mid: 0.5, FarRes: 4, MidRes: 8, BaseRes: 16, NearRes: 32}
}

// Validate checks the table for resolutions below one and unordered
// thresholds.
func (d Detail) Validate() error {
	for _, r := range []int{d.FarRes, d.MidRes, d.BaseRes, d.NearRes} {
		if r < 1 {
			return fmt.Errorf("detail: resolution %d must be at least 1", r)
		}
	}
	if d.Mid < 0 || d.Far > 1 || d.Mid > d.Far {
		return fmt.Errorf("detail: thresholds must satisfy 0 <= mid (%v) <= far (%v) <= 1", d.Mid, d.Far)
	}
	if d.FarRes > d.MidRes || d.MidRes > d.BaseRes || d.BaseRes > d.NearRes {
		return errors.New("detail: resolutions must not grow with depth")
	}
	return nil
}

// Tuning carries the knobs that are not drawn from the seed.
type Tuning struct {
	Detail Detail
	// BubbleRows is the first row that never spawns bubbles.
	BubbleRows int
	// RingStep is the pixel step between backdrop rings.
	RingStep int
	// BorderHeight is added to every sample of a border tile.
	BorderHeight float64
}

// DefaultTuning returns the stock tuning.
func DefaultTuning() Tuning {
	return Tuning{Detail: DefaultDetail(), BubbleRows: 15, RingStep: 4, BorderHeight: 0.04}
}

// Validate checks every field.
func (t Tuning) Validate() error {
	if err := t.Detail.Validate(); err != nil {
		return err
	}
	if t.BubbleRows < 0 {
		return fmt.Errorf("bubble rows %d must not be negative", t.BubbleRows)
	}
	if t.RingStep < 1 {
		return fmt.Errorf("ring step %d must be at least 1", t.RingStep)
	}
	return nil
}

// Options configures a Scene.
type Options struct {
	Params    style.Params
	Source    *style.Source
	Projector core.Projector
	Surface   render.Surface
	Grid      core.Grid
	Size      core.Size
	Tuning    Tuning
	Logger    *slog.Logger
}

// Scene draws into one surface. It is not safe for concurrent use.
type Scene struct {
	params  style.Params
	src     *style.Source
	proj    core.Projector
	surface render.Surface
	grid    core.Grid
	tuning  Tuning
	log     *slog.Logger

	// s is the side of the square drawing area in pixels; ox and oy centre
	// it on the canvas.
	s, ox, oy float64
	sizeVar   float64
}

// New validates opts and returns a Scene.
func New(opts Options) (*Scene, error) {
	switch {
	case opts.Source == nil:
		return nil, errors.New("scene: nil source")
	case opts.Projector == nil:
		return nil, errors.New("scene: nil projector")
	case opts.Surface == nil:
		return nil, errors.New("scene: nil surface")
	}
	if opts.Grid.Columns < 1 || opts.Grid.Rows < 1 {
		return nil, fmt.Errorf("scene: %w", core.ErrInvalidGrid)
	}
	if opts.Size.W < 1 || opts.Size.H < 1 {
		return nil, fmt.Errorf("scene: canvas %dx%d: %w", opts.Size.W, opts.Size.H, render.ErrInvalidSize)
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := float64(min(opts.Size.W, opts.Size.H))
	return &Scene{
		params:  opts.Params,
		src:     opts.Source,
		proj:    opts.Projector,
		surface: opts.Surface,
		grid:    opts.Grid,
		tuning:  opts.Tuning,
		log:     log,
		s:       s,
		ox:      (float64(opts.Size.W) - s) / 2,
		oy:      (float64(opts.Size.H) - s) / 2,
		sizeVar: s / 1000,
	}, nil
}

// Params returns the run's style parameters.
func (s *Scene) Params() style.Params { return s.params }

// px maps a unit-space point onto the canvas.
func (s *Scene) px(p core.Point) core.Point {
	return core.Point{X: s.ox + p.X*s.s, Y: s.oy + p.Y*s.s}
}

// Projector returns the scene's projector.
func (s *Scene) Projector() core.Projector { return s.proj }

// Pixel maps a unit-space point onto the canvas.
func (s *Scene) Pixel(p core.Point) core.Point { return s.px(p) }

func (s *Scene) tag(label string) {
	if t, ok := s.surface.(render.Tagger); ok {
		t.Tag(label)
	}
}

// Remap maps v linearly from [inMin, inMax] to [outMin, outMax] without
// clamping.
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// HeightBase is the raw height of the structure at tile (x, y). Callers
// remap it from [-3, 1] into the run's height range.
func HeightBase(x, y float64) float64 {
	return math.Sin(x) + math.Cos(y*4) - math.Sin(math.Mod(x+1, y+1))
}

// Resolution picks the sub-grid resolution of a tile in row of a grid with
// rows rows.
func Resolution(row, rows int, d Detail) int {
	if row <= d.FrontRows {
		return d.NearRes
	}
	depth := float64(row) / float64(max(rows, 1))
	switch {
	case depth > d.Far:
		return d.FarRes
	case depth > d.Mid:
		return d.MidRes
	}
	return d.BaseRes
}
