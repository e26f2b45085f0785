package render

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"image/color"
	"math"

	"rise/internal/core"
)

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpClear OpKind = iota + 1
	OpQuad
	OpCircle
	OpFade
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpQuad:
		return "quad"
	case OpCircle:
		return "circle"
	case OpFade:
		return "fade"
	}
	return "unknown"
}

// Op is one recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Tag    string
	Color  color.NRGBA
	Quad   [4]core.Point
	Center core.Point
	Radius float64
	Paint  Paint
	Fade   Fade
}

// Tagger is implemented by surfaces that group draw calls under a label.
type Tagger interface {
	Tag(label string)
}

// Recorder is a Surface that keeps every call in order.
type Recorder struct {
	ops []Op
	tag string
}

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*Canvas)(nil)
)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Tag labels every following call until the next Tag.
func (r *Recorder) Tag(label string) { r.tag = label }

func (r *Recorder) Clear(c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpClear, Tag: r.tag, Color: c})
}

func (r *Recorder) FillQuad(q [4]core.Point, p Paint) {
	r.ops = append(r.ops, Op{Kind: OpQuad, Tag: r.tag, Quad: q, Paint: p})
}

func (r *Recorder) Circle(center core.Point, radius float64, p Paint) {
	r.ops = append(r.ops, Op{Kind: OpCircle, Tag: r.tag, Center: center, Radius: radius, Paint: p})
}

func (r *Recorder) Fade(f Fade) {
	r.ops = append(r.ops, Op{Kind: OpFade, Tag: r.tag, Fade: f})
}

// Ops returns the recorded calls. The slice must not be modified.
func (r *Recorder) Ops() []Op { return r.ops }

// Len reports the number of recorded calls.
func (r *Recorder) Len() int { return len(r.ops) }

// Reset discards the log.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.tag = ""
}

// Tags returns the distinct tags in first-seen order.
func (r *Recorder) Tags() []string {
	var tags []string
	seen := map[string]bool{}
	for _, op := range r.ops {
		if !seen[op.Tag] {
			seen[op.Tag] = true
			tags = append(tags, op.Tag)
		}
	}
	return tags
}

// Replay sends the recorded calls to s.
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpClear:
			s.Clear(op.Color)
		case OpQuad:
			s.FillQuad(op.Quad, op.Paint)
		case OpCircle:
			s.Circle(op.Center, op.Radius, op.Paint)
		case OpFade:
			s.Fade(op.Fade)
		}
	}
}

// Digest hashes the log. Two frames with the same digest issued the same
// calls with bit-identical arguments.
func (r *Recorder) Digest() string {
	h := sha256.New()
	for _, op := range r.ops {
		writeOp(h, op)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeOp(h hash.Hash, op Op) {
	var buf [8]byte
	f := func(vs ...float64) {
		for _, v := range vs {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	c := func(cs ...color.NRGBA) {
		for _, col := range cs {
			h.Write([]byte{col.R, col.G, col.B, col.A})
		}
	}
	h.Write([]byte{byte(op.Kind)})
	h.Write([]byte(op.Tag))
	h.Write([]byte{0})
	switch op.Kind {
	case OpClear:
		c(op.Color)
	case OpQuad:
		for _, p := range op.Quad {
			f(p.X, p.Y)
		}
		c(op.Paint.Fill, op.Paint.Stroke)
		f(op.Paint.StrokeWidth)
	case OpCircle:
		f(op.Center.X, op.Center.Y, op.Radius)
		c(op.Paint.Fill, op.Paint.Stroke)
		f(op.Paint.StrokeWidth)
	case OpFade:
		fd := op.Fade
		f(fd.From.X, fd.From.Y, fd.To.X, fd.To.Y)
		c(fd.FromColor, fd.ToColor)
		f(fd.FromAlpha, fd.ToAlpha, fd.Width, float64(fd.Segments))
	}
}
