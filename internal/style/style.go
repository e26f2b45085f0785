// Package style draws the run-wide style parameters from a seed and wraps
// the seeded stream and the chosen palette for the scene.
package style

import (
	"errors"
	"fmt"
	"strconv"

	"rise/internal/core"
	"rise/internal/palette"
	rng "rise/pkg/core"
)

// Range is a closed interval [Min, Max] that per-tile values are drawn from.
type Range struct {
	Min, Max float64
}

func (r Range) String() string {
	return fmt.Sprintf("[%.4f, %.4f]", r.Min, r.Max)
}

// Params holds the values drawn once per run. It is never modified after
// Draw returns.
type Params struct {
	Seed int64

	CurtainDrift   Range
	Height         Range
	HeightVariance Range
	BorderHeight   Range

	SurfaceSin float64
	SurfaceCos float64
	Amplitude  float64

	LightMode    bool
	PaletteIndex int
	PaletteName  string
}

// Draw consumes the global draws from r in their fixed order.
func Draw(r *rng.RNG, catalogue []palette.Palette) (Params, error) {
	if len(catalogue) == 0 {
		return Params{}, palette.ErrEmptyPalette
	}
	p := Params{Seed: r.Seed()}
	p.CurtainDrift = Range{r.Between(-0.005, -0.001), r.Between(0.001, 0.005)}
	p.Height = Range{r.Between(0.005, 0.04), r.Between(0.04, 0.15)}
	p.HeightVariance = Range{r.Between(0.01, 0.05), r.Between(0.05, 0.25)}
	p.BorderHeight = Range{r.Between(2, 4), r.Between(4, 7)}
	p.SurfaceSin = r.Between(1, 4)
	p.SurfaceCos = r.Between(1, 4)
	p.Amplitude = r.Between(0.001, 0.003)
	p.LightMode = r.Between(0, 1) > 0.5
	p.PaletteIndex = r.IntBetween(0, len(catalogue))
	p.PaletteName = catalogue[p.PaletteIndex].Name
	return p, nil
}

// Mode names the lighting mode.
func (p Params) Mode() string {
	if p.LightMode {
		return "light"
	}
	return "dark"
}

// Snapshot implements core.ParameterProvider.
func (p Params) Snapshot() core.ParameterSnapshot {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(p.Seed, 10)},
				{Key: "palette", Label: "Palette", Type: core.ParamTypeString, Value: p.PaletteName},
				{Key: "mode", Label: "Mode", Type: core.ParamTypeString, Value: p.Mode()},
			},
		},
		{
			Name:    "Heights",
			Summary: "base height, per-structure variance and border multiplier",
			Params: []core.Parameter{
				{Key: "height", Label: "Height", Type: core.ParamTypeFloat, Value: p.Height.String()},
				{Key: "height_variance", Label: "Variance", Type: core.ParamTypeFloat, Value: p.HeightVariance.String()},
				{Key: "border_height", Label: "Border", Type: core.ParamTypeFloat, Value: p.BorderHeight.String()},
			},
		},
		{
			Name: "Surface",
			Params: []core.Parameter{
				{Key: "surface_sin", Label: "Sin freq", Type: core.ParamTypeFloat, Value: f(p.SurfaceSin)},
				{Key: "surface_cos", Label: "Cos freq", Type: core.ParamTypeFloat, Value: f(p.SurfaceCos)},
				{Key: "amplitude", Label: "Amplitude", Type: core.ParamTypeFloat, Value: f(p.Amplitude)},
				{Key: "curtain_drift", Label: "Curtain drift", Type: core.ParamTypeFloat, Value: p.CurtainDrift.String()},
			},
		},
	}}
}

// Parameters lets Params be handed to anything expecting a
// core.ParameterProvider.
func (p Params) Parameters() core.ParameterSnapshot { return p.Snapshot() }

// Source is the randomness and palette facade used while drawing. It owns
// the seeded stream; Reset rewinds it so a frame replays identically.
type Source struct {
	rng  *rng.RNG
	ramp palette.Ramp
	seed int64
}

// New draws the run's parameters from seed, builds the chosen palette's
// ramp and rewinds the stream to the seed.
func New(seed int64, catalogue []palette.Palette) (Params, *Source, error) {
	r := rng.NewRNG(seed)
	p, err := Draw(r, catalogue)
	if err != nil {
		return Params{}, nil, err
	}
	ramp, err := palette.NewRamp(catalogue[p.PaletteIndex].Stops)
	if err != nil {
		return Params{}, nil, fmt.Errorf("palette %q: %w", p.PaletteName, err)
	}
	r.Reset(seed)
	return p, &Source{rng: r, ramp: ramp, seed: seed}, nil
}

// NewSource wraps an existing stream and ramp.
func NewSource(r *rng.RNG, ramp palette.Ramp) (*Source, error) {
	if r == nil {
		return nil, errors.New("style: nil random stream")
	}
	if ramp.Len() == 0 {
		return nil, palette.ErrEmptyPalette
	}
	return &Source{rng: r, ramp: ramp, seed: r.Seed()}, nil
}

// Reset rewinds the stream to the run's seed.
func (s *Source) Reset() { s.rng.Reset(s.seed) }

// Seed reports the run's seed.
func (s *Source) Seed() int64 { return s.seed }

func (s *Source) Float() float64 { return s.rng.Float() }

func (s *Source) Between(a, b float64) float64 { return s.rng.Between(a, b) }

// In draws from r.
func (s *Source) In(r Range) float64 { return s.rng.Between(r.Min, r.Max) }

func (s *Source) IntBetween(a, b int) int { return s.rng.IntBetween(a, b) }

// Ramp samples the run's palette at t.
func (s *Source) Ramp(t float64) palette.Color { return s.ramp.At(t) }
