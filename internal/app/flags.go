package app

import (
	"strconv"
	"strings"
	"time"

	"rise/internal/config"
	rng "rise/pkg/core"

	"github.com/spf13/pflag"
)

// Config holds the run-time flags shared by the render, params and view
// commands. Flags set on the command line win over the tuning file.
type Config struct {
	Seed       int64
	Hash       string
	Width      int
	Height     int
	Scale      float64
	Columns    int
	Rows       int
	Border     string
	Projection string
	Output     string
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	d := config.DefaultConfig()
	return &Config{
		Seed:       1,
		Width:      d.Canvas.Width,
		Height:     d.Canvas.Height,
		Scale:      1,
		Columns:    d.Grid.Columns,
		Rows:       d.Grid.Rows,
		Border:     d.Grid.Border,
		Projection: d.Projection.Kind,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.Int64VarP(&c.Seed, "seed", "s", c.Seed, "seed for the run")
	fs.StringVar(&c.Hash, "hash", c.Hash, "derive the seed from a hash token instead of --seed")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "multiplier applied to the canvas size")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.StringVar(&c.Border, "border", c.Border, "border tiles: "+strings.Join(config.Borders(), ", "))
	fs.StringVarP(&c.Projection, "projection", "p", c.Projection, "projection: perspective or oblique")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "PNG path (\"-\" for stdout); defaults to rise-<seed>.png")
}

// Apply copies every flag the user set onto cfg.
func (c *Config) Apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("width") {
		cfg.Canvas.Width = c.Width
	}
	if fs.Changed("height") {
		cfg.Canvas.Height = c.Height
	}
	if fs.Changed("columns") {
		cfg.Grid.Columns = c.Columns
	}
	if fs.Changed("rows") {
		cfg.Grid.Rows = c.Rows
	}
	if fs.Changed("border") {
		cfg.Grid.Border = c.Border
	}
	if fs.Changed("projection") {
		cfg.Projection.Kind = c.Projection
	}
	if c.Scale > 0 && c.Scale != 1 {
		cfg.Canvas.Width = max(1, int(float64(cfg.Canvas.Width)*c.Scale))
		cfg.Canvas.Height = max(1, int(float64(cfg.Canvas.Height)*c.Scale))
	}
}

// ResolveSeed returns the seed for the run. A hash token takes precedence
// over the numeric seed.
func (c *Config) ResolveSeed() int64 {
	if c.Hash != "" {
		return rng.SeedFromHash(c.Hash)
	}
	return c.Seed
}

// OutputPath returns the PNG path for seed.
func (c *Config) OutputPath(seed int64) string {
	if c.Output != "" {
		return c.Output
	}
	return DefaultOutput(seed)
}

// DefaultOutput names the PNG written for seed.
func DefaultOutput(seed int64) string {
	return "rise-" + strconv.FormatInt(seed, 10) + ".png"
}

// RandomSeed picks a fresh seed from the clock.
func RandomSeed() int64 { return time.Now().UnixNano() }
