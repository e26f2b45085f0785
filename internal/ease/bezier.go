// Package ease evaluates cubic-bezier easing curves whose end points are
// fixed at (0,0) and (1,1).
package ease

import "math"

const (
	epsilon      = 1e-5
	newtonSteps  = 32
	bisectionCap = 64
)

// Curve is a cubic-bezier easing function defined by two control points.
// Values outside [0,1] are extrapolated along the polynomial rather than
// clamped, except where bisection is needed as a fallback.
type Curve struct {
	ax, bx, cx float64
	ay, by, cy float64
}

// New precomputes the polynomial coefficients for the control points
// (p1x,p1y) and (p2x,p2y).
func New(p1x, p1y, p2x, p2y float64) Curve {
	c := Curve{}
	c.cx = 3 * p1x
	c.bx = 3*(p2x-p1x) - c.cx
	c.ax = 1 - c.cx - c.bx
	c.cy = 3 * p1y
	c.by = 3*(p2y-p1y) - c.cy
	c.ay = 1 - c.cy - c.by
	return c
}

var (
	// Building raises structures further back in the grid.
	Building = New(0.9, 0.2, 0.9, 0.55)
	// Backdrop shapes the alpha falloff of the background hill rays.
	Backdrop = New(1, 0.01, 0.62, 0.99)
)

// Eval returns the curve's y value at horizontal position x.
func (c Curve) Eval(x float64) float64 {
	return c.SampleY(c.SolveX(x))
}

// SampleX returns X(u).
func (c Curve) SampleX(u float64) float64 {
	return ((c.ax*u+c.bx)*u + c.cx) * u
}

// SampleY returns Y(u).
func (c Curve) SampleY(u float64) float64 {
	return ((c.ay*u+c.by)*u + c.cy) * u
}

func (c Curve) derivativeX(u float64) float64 {
	return (3*c.ax*u+2*c.bx)*u + c.cx
}

// SolveX finds the curve parameter u with X(u) == x. Newton's method is
// tried first; bisection over [0,1] takes over when the slope vanishes or
// Newton fails to converge.
func (c Curve) SolveX(x float64) float64 {
	u := x
	for i := 0; i < newtonSteps; i++ {
		dx := c.SampleX(u) - x
		if math.Abs(dx) < epsilon {
			return u
		}
		d := c.derivativeX(u)
		if math.Abs(d) < epsilon {
			break
		}
		u -= dx / d
	}

	lo, hi := 0.0, 1.0
	u = x
	if u < lo {
		return lo
	}
	if u > hi {
		return hi
	}
	for i := 0; i < bisectionCap && lo < hi; i++ {
		v := c.SampleX(u)
		if math.Abs(v-x) < epsilon {
			return u
		}
		if x > v {
			lo = u
		} else {
			hi = u
		}
		u = (hi-lo)*0.5 + lo
	}
	return u
}
