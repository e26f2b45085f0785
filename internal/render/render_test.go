package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"rise/internal/core"
)

var red = color.NRGBA{R: 255, A: 255}

func TestFadeAt(t *testing.T) {
	f := Fade{
		FromColor: color.NRGBA{R: 0, G: 100, B: 200, A: 17},
		ToColor:   color.NRGBA{R: 200, G: 100, B: 0, A: 99},
		FromAlpha: 1,
		ToAlpha:   0,
	}
	if got := f.At(0); got != (color.NRGBA{R: 0, G: 100, B: 200, A: 255}) {
		t.Fatalf("At(0) = %v", got)
	}
	if got := f.At(1); got != (color.NRGBA{R: 200, G: 100, B: 0, A: 0}) {
		t.Fatalf("At(1) = %v", got)
	}
	if got := f.At(0.5); got != (color.NRGBA{R: 100, G: 100, B: 100, A: 128}) {
		t.Fatalf("At(0.5) = %v", got)
	}
}

func TestRecorderDigest(t *testing.T) {
	draw := func(s Surface) {
		s.Clear(color.NRGBA{A: 255})
		s.FillQuad([4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, Paint{Fill: red})
		s.Circle(core.Point{X: 4, Y: 4}, 2, Paint{Stroke: red, StrokeWidth: 1})
		s.Fade(Fade{From: core.Point{}, To: core.Point{X: 3}, FromColor: red, ToColor: red, FromAlpha: 1, Width: 1})
	}
	a, b := NewRecorder(), NewRecorder()
	draw(a)
	draw(b)
	if a.Len() != 4 {
		t.Fatalf("recorded %d ops, want 4", a.Len())
	}
	if a.Digest() != b.Digest() {
		t.Fatal("identical call sequences hashed differently")
	}
	b.Circle(core.Point{X: 4, Y: 4}, 2+1e-12, Paint{})
	if a.Digest() == b.Digest() {
		t.Fatal("digest ignored an extra call")
	}

	kinds := []OpKind{OpClear, OpQuad, OpCircle, OpFade}
	for i, op := range a.Ops() {
		if op.Kind != kinds[i] {
			t.Fatalf("op %d kind = %v, want %v", i, op.Kind, kinds[i])
		}
	}
}

func TestRecorderTagsAndReplay(t *testing.T) {
	r := NewRecorder()
	r.Tag("background")
	r.Clear(red)
	r.Tag("tile")
	r.Circle(core.Point{X: 1, Y: 1}, 1, Paint{Fill: red})
	r.Circle(core.Point{X: 2, Y: 1}, 1, Paint{Fill: red})

	tags := r.Tags()
	if len(tags) != 2 || tags[0] != "background" || tags[1] != "tile" {
		t.Fatalf("tags = %v", tags)
	}

	copyRec := NewRecorder()
	r.Replay(copyRec)
	// Replay does not carry tags, so compare the untagged shapes.
	for i, op := range copyRec.Ops() {
		want := r.Ops()[i]
		want.Tag = ""
		if op != want {
			t.Fatalf("replayed op %d = %+v, want %+v", i, op, want)
		}
	}

	r.Reset()
	if r.Len() != 0 {
		t.Fatal("Reset kept ops")
	}
}

func TestNewCanvasRejectsEmpty(t *testing.T) {
	if _, err := NewCanvas(0, 10); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

func TestCanvasDrawsCircle(t *testing.T) {
	c, err := NewCanvas(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	c.Clear(color.NRGBA{A: 255})
	c.Circle(core.Point{X: 16, Y: 16}, 8, Paint{Fill: red})
	r, g, b, _ := c.Image().At(16, 16).RGBA()
	if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Fatalf("centre pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = c.Image().At(1, 1).RGBA()
	if r>>8 > 5 {
		t.Fatalf("corner pixel red = %d, want background", r>>8)
	}
}

func TestCanvasSkipsDegenerateGeometry(t *testing.T) {
	c, err := NewCanvas(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	nan := math.NaN()
	c.FillQuad([4]core.Point{{X: nan, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, Paint{Fill: red})
	c.Circle(core.Point{X: 4, Y: 4}, 0, Paint{Fill: red})
	c.Circle(core.Point{X: 4, Y: 4}, -1, Paint{Fill: red})
	c.Fade(Fade{From: core.Point{X: 1, Y: 1}, To: core.Point{X: 1, Y: 1}, FromColor: red, FromAlpha: 1, Width: 2})
	c.Fade(Fade{From: core.Point{}, To: core.Point{X: math.Inf(1)}, FromColor: red, FromAlpha: 1, Width: 2})
	if c.Failures() != 0 {
		t.Fatalf("failures = %d", c.Failures())
	}
	_, _, _, a := c.Image().At(4, 4).RGBA()
	if a != 0 {
		t.Fatalf("degenerate draws touched the canvas: alpha %d", a)
	}
}

func TestFillImageRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.RGBA{R: 5, G: 5, B: 5, A: 128})
	buf := make([]byte, 8)
	fillImageRGBA(buf, img)
	want := []byte{10, 20, 30, 255, 5, 5, 5, 128}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 77
	fillImageRGBA(buf[:4], gray)
	if buf[0] != 77 || buf[3] != 255 {
		t.Fatalf("gray conversion = %v", buf[:4])
	}
}
