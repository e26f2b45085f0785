package core

import "sort"

// Size describes canvas dimensions in pixels.
type Size struct {
	W int
	H int
}

// Point is a 2D coordinate. Projected points are in unit screen space where
// 1.0 spans the canvas side.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Scale multiplies both coordinates by s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Projector maps tile-space coordinates to screen space. x and y are grid
// coordinates (column, row); z is a height offset. Implementations must be
// pure functions of their inputs.
type Projector interface {
	Project(x, y, z float64) Point
}

// ProjectorFunc adapts a function to the Projector interface.
type ProjectorFunc func(x, y, z float64) Point

// Project calls f.
func (f ProjectorFunc) Project(x, y, z float64) Point { return f(x, y, z) }

// ProjectorFactory builds a projector for a grid. opts carries named
// overrides read from the tuning file.
type ProjectorFactory func(g Grid, opts map[string]float64) Projector

var (
	projectors      = map[string]ProjectorFactory{}
	projectorOption = map[string][]string{}
)

// RegisterProjection adds a projector factory under the provided name,
// along with the option keys the factory understands.
func RegisterProjection(name string, f ProjectorFactory, options ...string) {
	if name == "" || f == nil {
		return
	}
	projectors[name] = f
	keys := append([]string(nil), options...)
	sort.Strings(keys)
	projectorOption[name] = keys
}

// ProjectionOptions lists the option keys accepted by the named projector
// in sorted order.
func ProjectionOptions(name string) []string {
	return projectorOption[name]
}

// Projections exposes the registry of available projector factories.
func Projections() map[string]ProjectorFactory {
	return projectors
}

// ProjectionNames lists the registered projector names in sorted order.
func ProjectionNames() []string {
	names := make([]string, 0, len(projectors))
	for name := range projectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
