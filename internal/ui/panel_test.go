package ui

import (
	"slices"
	"testing"

	"rise/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Run", Params: []core.Parameter{
			{Key: "seed", Label: "Seed", Value: "42"},
			{Key: "palette", Label: "Palette", Value: "tide"},
		}},
		{Name: "Surface", Params: []core.Parameter{
			{Key: "amplitude", Label: "Amp", Value: "0.0020"},
		}},
	}}
	want := []string{
		"RUN",
		"Seed     42",
		"Palette  tide",
		"",
		"SURFACE",
		"Amp      0.0020",
	}
	if got := Lines(snap); !slices.Equal(got, want) {
		t.Fatalf("Lines =\n%q\nwant\n%q", got, want)
	}
	if got := Lines(core.ParameterSnapshot{}); len(got) != 0 {
		t.Fatalf("empty snapshot gave %q", got)
	}
}

func TestOutline(t *testing.T) {
	g, _ := core.NewGrid(2, 1, core.BorderNone)
	flat := core.ProjectorFunc(func(x, y, z float64) core.Point { return core.Point{X: x, Y: y} })
	double := func(p core.Point) core.Point { return p.Scale(2) }
	segs := Outline(g.Tiles(flat), double)
	if len(segs) != 8 {
		t.Fatalf("got %d segments, want 8", len(segs))
	}
	// Column 1 sits at x == 0 and is the seam.
	if segs[0].Seam || !segs[4].Seam {
		t.Fatalf("seam flags = %v, %v", segs[0].Seam, segs[4].Seam)
	}
	if segs[4].From != (core.Point{X: 0, Y: 0}) || segs[4].To != (core.Point{X: 2, Y: 0}) {
		t.Fatalf("first seam edge = %+v", segs[4])
	}
	if last := segs[7]; last.To != segs[4].From {
		t.Fatal("quad outline is not closed")
	}
}
