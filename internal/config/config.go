// Package config reads the TOML tuning file. Anything not set in the file
// keeps its built-in default.
package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"sort"
	"strings"

	"rise/internal/core"
	"rise/internal/projection"
	"rise/internal/scene"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Canvas     CanvasConfig     `toml:"canvas"`
	Grid       GridConfig       `toml:"grid"`
	Detail     DetailConfig     `toml:"detail"`
	Bubbles    BubblesConfig    `toml:"bubbles"`
	Projection ProjectionConfig `toml:"projection"`
}

type CanvasConfig struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	RingStep     int     `toml:"ring_step"`
	BorderHeight float64 `toml:"border_height"`
}

type GridConfig struct {
	Columns int    `toml:"columns"`
	Rows    int    `toml:"rows"`
	Border  string `toml:"border"`
}

type DetailConfig struct {
	FrontRows int     `toml:"front_rows"`
	Far       float64 `toml:"far"`
	Mid       float64 `toml:"mid"`
	FarRes    int     `toml:"far_res"`
	MidRes    int     `toml:"mid_res"`
	BaseRes   int     `toml:"base_res"`
	NearRes   int     `toml:"near_res"`
}

type BubblesConfig struct {
	// Rows is the first row that never spawns bubbles.
	Rows int `toml:"rows"`
}

type ProjectionConfig struct {
	Kind    string             `toml:"kind"`
	Options map[string]float64 `toml:"options,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	t := scene.DefaultTuning()
	d := t.Detail
	return Config{
		Canvas: CanvasConfig{Width: 1000, Height: 1000, RingStep: t.RingStep, BorderHeight: t.BorderHeight},
		Grid:   GridConfig{Columns: 16, Rows: 24, Border: string(core.BorderFront)},
		Detail: DetailConfig{
			FrontRows: d.FrontRows,
			Far:       d.Far,
			Mid:       d.Mid,
			FarRes:    d.FarRes,
			MidRes:    d.MidRes,
			BaseRes:   d.BaseRes,
			NearRes:   d.NearRes,
		},
		Bubbles:    BubblesConfig{Rows: t.BubbleRows},
		Projection: ProjectionConfig{Kind: projection.Default},
	}
}

// LoadConfig reads path over the defaults. Unknown keys are rejected so
// typos do not silently fall back to a default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults.
func Parse(doc string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(doc, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if cfg.Grid.Border == "" {
		cfg.Grid.Border = string(core.BorderFront)
	}
	if cfg.Projection.Kind == "" {
		cfg.Projection.Kind = projection.Default
	}
	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		return fmt.Errorf("canvas size must be at least 1x1, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := c.BuildGrid(); err != nil {
		return err
	}
	if err := c.Tuning().Validate(); err != nil {
		return err
	}
	if _, ok := core.Projections()[c.Projection.Kind]; !ok {
		return fmt.Errorf("unknown projection %q (have %s)", c.Projection.Kind, strings.Join(core.ProjectionNames(), ", "))
	}
	known := core.ProjectionOptions(c.Projection.Kind)
	for _, k := range c.OptionKeys() {
		if !slices.Contains(known, k) {
			return fmt.Errorf("unknown %s projection option %q (have %s)", c.Projection.Kind, k, strings.Join(known, ", "))
		}
		if v := c.Projection.Options[k]; math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("projection option %s must be finite, got %v", k, v)
		}
	}
	return nil
}

// Size returns the canvas size.
func (c *Config) Size() core.Size {
	return core.Size{W: c.Canvas.Width, H: c.Canvas.Height}
}

// BuildGrid returns the configured grid.
func (c *Config) BuildGrid() (core.Grid, error) {
	border, err := core.ParseBorderMode(c.Grid.Border)
	if err != nil {
		return core.Grid{}, err
	}
	return core.NewGrid(c.Grid.Columns, c.Grid.Rows, border)
}

// Tuning returns the scene tuning.
func (c *Config) Tuning() scene.Tuning {
	return scene.Tuning{
		Detail: scene.Detail{
			FrontRows: c.Detail.FrontRows,
			Far:       c.Detail.Far,
			Mid:       c.Detail.Mid,
			FarRes:    c.Detail.FarRes,
			MidRes:    c.Detail.MidRes,
			BaseRes:   c.Detail.BaseRes,
			NearRes:   c.Detail.NearRes,
		},
		BubbleRows:   c.Bubbles.Rows,
		RingStep:     c.Canvas.RingStep,
		BorderHeight: c.Canvas.BorderHeight,
	}
}

// Projector builds the configured projector for g.
func (c *Config) Projector(g core.Grid) (core.Projector, error) {
	factory, ok := core.Projections()[c.Projection.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown projection %q", c.Projection.Kind)
	}
	return factory(g, c.Projection.Options), nil
}

// OptionKeys lists the projection option keys in sorted order.
func (c *Config) OptionKeys() []string {
	keys := make([]string, 0, len(c.Projection.Options))
	for k := range c.Projection.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Borders lists the accepted border mode names.
func Borders() []string {
	return []string{string(core.BorderNone), string(core.BorderFront), string(core.BorderFrame)}
}
