package scene

import (
	"image/color"

	"rise/internal/core"
)

var black = color.NRGBA{A: 255}

// Phase is the state of the frame orchestrator.
type Phase int

const (
	// PhaseIdle is the state before the first frame.
	PhaseIdle Phase = iota
	// PhaseBeforeFrame clears the canvas and paints the backdrop.
	PhaseBeforeFrame
	// PhaseMainSweep draws tiles as they arrive, queueing seam tiles.
	PhaseMainSweep
	// PhaseDeferred is entered once the queue is drained. It is terminal
	// until the next BeforeDraw.
	PhaseDeferred
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBeforeFrame:
		return "before-frame"
	case PhaseMainSweep:
		return "main-sweep"
	case PhaseDeferred:
		return "deferred"
	}
	return "unknown"
}

// Stats summarises the last frame.
type Stats struct {
	Tiles    int
	Deferred int
}

// Frame sequences one frame of a Scene. It implements core.FrameHooks so a
// grid driver can push tiles into it.
type Frame struct {
	scene *Scene
	phase Phase
	queue []core.Tile
	// drained is the queue of the last finished frame, in drain order.
	drained []core.Tile
	stats   Stats
}

// NewFrame returns an idle orchestrator for sc.
func NewFrame(sc *Scene) *Frame {
	return &Frame{scene: sc}
}

// Scene returns the scene being drawn.
func (f *Frame) Scene() *Scene { return f.scene }

// Phase reports the current phase.
func (f *Frame) Phase() Phase { return f.phase }

// Deferred returns the seam tiles drawn at the end of the last frame.
func (f *Frame) Deferred() []core.Tile { return f.drained }

// Stats returns counters for the current or last frame.
func (f *Frame) Stats() Stats { return f.stats }

func (f *Frame) enter(p Phase) {
	f.scene.log.Debug("frame phase", "from", f.phase, "to", p)
	f.phase = p
}

// BeforeDraw starts a frame: the stream is rewound to the seed, the canvas
// cleared and the backdrop painted.
func (f *Frame) BeforeDraw() {
	f.enter(PhaseBeforeFrame)
	f.queue = f.queue[:0]
	f.drained = nil
	f.stats = Stats{}

	sc := f.scene
	sc.src.Reset()
	sc.tag("clear")
	sc.surface.Clear(black)
	sc.Background()

	f.enter(PhaseMainSweep)
}

// DrawTile draws t, or queues it when it sits on the seam during the main
// sweep. Tiles arriving after the frame finished are drawn immediately;
// tiles arriving before any frame started are dropped.
func (f *Frame) DrawTile(t core.Tile) {
	switch f.phase {
	case PhaseIdle, PhaseBeforeFrame:
		f.scene.log.Warn("tile outside a frame dropped", "col", t.Col, "row", t.Row)
		return
	case PhaseMainSweep:
		if t.Seam() {
			f.queue = append(f.queue, t)
			return
		}
	}
	f.stats.Tiles++
	f.scene.RenderTile(t)
}

// AfterDraw drains the seam queue. It does nothing outside the main sweep,
// so the queue is drained at most once per frame.
func (f *Frame) AfterDraw() {
	if f.phase != PhaseMainSweep {
		return
	}
	f.enter(PhaseDeferred)
	f.scene.log.Debug("draining seam tiles", "count", len(f.queue))
	f.drained = append([]core.Tile(nil), f.queue...)
	f.queue = f.queue[:0]
	for _, t := range f.drained {
		f.stats.Tiles++
		f.stats.Deferred++
		f.scene.RenderTile(t)
	}
}

// Draw runs a full frame over g.
func (f *Frame) Draw(g core.Grid) {
	g.Drive(f.scene.proj, f)
}

var _ core.FrameHooks = (*Frame)(nil)
