//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"

	"rise/internal/config"
	"rise/internal/core"
	"rise/internal/render"
	"rise/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game shows one scene at the window's size. A resize re-renders the whole
// frame from the same seed.
type Game struct {
	cfg *config.Config
	log *slog.Logger

	seed    int64
	history []int64

	w, h       int
	wantW      int
	wantH      int
	resizePoll *core.FixedStep

	canvas  *render.Canvas
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	showHUD bool
	stale   bool
}

// New constructs a Game for seed.
func New(cfg *config.Config, seed int64, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Game{
		cfg:        cfg,
		log:        log,
		seed:       seed,
		wantW:      cfg.Canvas.Width,
		wantH:      cfg.Canvas.Height,
		resizePoll: core.NewFixedStep(4),
		hud:        ui.NewHUD(hudWidth),
		overlay:    ui.NewOverlay(),
		showHUD:    true,
		stale:      true,
	}
}

// Reset switches to seed, remembering the previous one.
func (g *Game) Reset(seed int64) {
	if seed == g.seed {
		return
	}
	g.history = append(g.history, g.seed)
	g.seed = seed
	g.stale = true
}

func (g *Game) back() {
	n := len(g.history)
	if n == 0 {
		return
	}
	g.seed = g.history[n-1]
	g.history = g.history[:n-1]
	g.stale = true
}

func (g *Game) rerender() error {
	w, h := max(1, g.wantW), max(1, g.wantH)
	canvas, err := render.NewCanvas(w, h)
	if err != nil {
		return err
	}
	frame, grid, err := Build(g.cfg, g.seed, core.Size{W: w, H: h}, canvas, g.log)
	if err != nil {
		return err
	}
	frame.Draw(grid)

	if g.painter == nil || g.w != w || g.h != h {
		g.painter = render.NewPainter(w, h)
		g.w, g.h = w, h
	}
	g.painter.Upload(canvas.Image())
	if g.canvas != nil {
		g.canvas.Close()
	}
	g.canvas = canvas

	sc := frame.Scene()
	params := sc.Params()
	g.hud.SetSnapshot(params.Snapshot())
	g.overlay.SetTiles(grid.Tiles(sc.Projector()), sc.Pixel)
	g.log.Info("frame", "seed", g.seed, "size", [2]int{w, h}, "palette", params.PaletteName)
	g.stale = false
	return nil
}

func (g *Game) save() {
	if g.canvas == nil {
		return
	}
	path := DefaultOutput(g.seed)
	if err := g.canvas.SavePNG(path); err != nil {
		g.log.Error("save failed", "error", err)
		return
	}
	g.log.Info("saved", "path", path)
}

// Update handles input and re-renders when the seed or size changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(RandomSeed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.save()
	}

	if g.resizePoll.ShouldStep() && (g.wantW != g.w || g.wantH != g.h) {
		g.stale = true
	}
	if g.stale {
		return g.rerender()
	}
	return nil
}

// Draw shows the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.painter != nil {
		g.painter.Blit(screen)
	}
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, 0)
	}
}

// Layout tracks the window size; the next poll re-renders at it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.wantW, g.wantH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the viewer window and blocks until it closes.
func Run(cfg *config.Config, seed int64, log *slog.Logger) error {
	ebiten.SetWindowTitle("rise")
	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(New(cfg, seed, log)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
