// Package app wires configuration, scene and surfaces into the headless
// render job and the interactive viewer.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"rise/internal/config"
	"rise/internal/core"
	"rise/internal/palette"
	"rise/internal/render"
	"rise/internal/scene"
	"rise/internal/style"
)

// ErrNoViewer is returned by Run in builds without the ebiten tag.
var ErrNoViewer = errors.New("the viewer requires building with the 'ebiten' tag")

// Build assembles a frame for seed drawing onto surface at size.
func Build(cfg *config.Config, seed int64, size core.Size, surface render.Surface, log *slog.Logger) (*scene.Frame, core.Grid, error) {
	g, err := cfg.BuildGrid()
	if err != nil {
		return nil, core.Grid{}, err
	}
	proj, err := cfg.Projector(g)
	if err != nil {
		return nil, core.Grid{}, err
	}
	params, src, err := style.New(seed, palette.Catalogue)
	if err != nil {
		return nil, core.Grid{}, err
	}
	sc, err := scene.New(scene.Options{
		Params:    params,
		Source:    src,
		Projector: proj,
		Surface:   surface,
		Grid:      g,
		Size:      size,
		Tuning:    cfg.Tuning(),
		Logger:    log,
	})
	if err != nil {
		return nil, core.Grid{}, err
	}
	return scene.NewFrame(sc), g, nil
}

// Job is one headless render.
type Job struct {
	Config *config.Config
	Seed   int64
	// Output is the PNG path. "-" writes to Stdout.
	Output string
	Stdout io.Writer
	// Record keeps the draw-call log so Result carries its digest.
	Record bool
}

// Result describes a finished render.
type Result struct {
	Seed     int64
	Path     string
	Params   style.Params
	Ops      int
	Digest   string
	Failures int
	Elapsed  time.Duration
}

// Render draws one frame and writes it as PNG. A cancelled ctx discards
// the frame before anything is written.
func Render(ctx context.Context, job Job, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()
	cfg := job.Config
	size := cfg.Size()
	canvas, err := render.NewCanvas(size.W, size.H)
	if err != nil {
		return Result{}, err
	}
	defer canvas.Close()

	var (
		surface render.Surface = canvas
		rec     *render.Recorder
	)
	if job.Record {
		rec = render.NewRecorder()
		surface = rec
	}

	frame, g, err := Build(cfg, job.Seed, size, surface, log)
	if err != nil {
		return Result{}, err
	}
	log.Debug("rendering", "seed", job.Seed, "grid", fmt.Sprintf("%dx%d", g.Columns, g.Rows), "size", fmt.Sprintf("%dx%d", size.W, size.H))
	frame.Draw(g)

	res := Result{Seed: job.Seed, Params: frame.Scene().Params()}
	if rec != nil {
		res.Ops = rec.Len()
		res.Digest = rec.Digest()
		rec.Replay(canvas)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	switch {
	case job.Output == "-":
		if job.Stdout == nil {
			return Result{}, fmt.Errorf("no writer for stdout output")
		}
		if err := canvas.EncodePNG(job.Stdout); err != nil {
			return Result{}, fmt.Errorf("encode png: %w", err)
		}
	case job.Output != "":
		if err := canvas.SavePNG(job.Output); err != nil {
			return Result{}, err
		}
	}
	res.Path = job.Output
	res.Failures = canvas.Failures()
	res.Elapsed = time.Since(start)
	if res.Failures > 0 {
		log.Warn("rasteriser reported errors", "seed", job.Seed, "count", res.Failures)
	}
	log.Info("rendered", "seed", job.Seed, "palette", res.Params.PaletteName, "mode", res.Params.Mode(), "elapsed", res.Elapsed)
	return res, nil
}
