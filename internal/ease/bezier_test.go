package ease

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	curves := []Curve{Building, Backdrop, New(0, 0, 1, 1), New(0.42, 0, 0.58, 1)}
	for i := 0; i < 64; i++ {
		curves = append(curves, New(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()))
	}
	for i, c := range curves {
		if got := c.Eval(0); math.Abs(got) > 1e-4 {
			t.Fatalf("curve %d: Eval(0) = %v, want ~0", i, got)
		}
		if got := c.Eval(1); math.Abs(got-1) > 1e-4 {
			t.Fatalf("curve %d: Eval(1) = %v, want ~1", i, got)
		}
	}
}

func TestMonotonicForOrderedControlPoints(t *testing.T) {
	tests := []struct {
		name               string
		p1x, p1y, p2x, p2y float64
	}{
		{"linear", 0.25, 0.25, 0.75, 0.75},
		{"ease-in-out", 0.42, 0, 0.58, 1},
		{"backdrop", 0.62, 0.01, 1, 0.99},
		{"steep", 0.9, 0.2, 0.9, 0.55},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.p1x, tc.p1y, tc.p2x, tc.p2y)
			prev := c.Eval(0)
			for i := 1; i <= 200; i++ {
				x := float64(i) / 200
				y := c.Eval(x)
				if y < prev-1e-4 {
					t.Fatalf("Eval(%v) = %v dropped below Eval at previous step %v", x, y, prev)
				}
				prev = y
			}
		})
	}
}

func TestLinearCurveIsIdentity(t *testing.T) {
	c := New(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		if got := c.Eval(x); math.Abs(got-x) > 1e-4 {
			t.Fatalf("Eval(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestExtrapolationIsFiniteAndDeterministic(t *testing.T) {
	for _, x := range []float64{-23, -4, -1, 1.5, 2} {
		a := Building.Eval(x)
		b := Building.Eval(x)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			t.Fatalf("Building.Eval(%v) = %v, want finite", x, a)
		}
		if a != b {
			t.Fatalf("Building.Eval(%v) not reproducible: %v vs %v", x, a, b)
		}
	}
	// Rows further back pass larger negative inputs and come out taller.
	if near, far := Building.Eval(0), Building.Eval(-10); far <= near {
		t.Fatalf("Building.Eval(-10) = %v, want > Eval(0) = %v", far, near)
	}
}

func TestSolveXAccuracy(t *testing.T) {
	curves := []Curve{Building, Backdrop, New(0, 0, 1, 1)}
	for ci, c := range curves {
		for i := 0; i <= 50; i++ {
			x := float64(i) / 50
			u := c.SolveX(x)
			if got := c.SampleX(u); math.Abs(got-x) > 1e-4 {
				t.Fatalf("curve %d: SampleX(SolveX(%v)) = %v", ci, x, got)
			}
		}
	}
}
