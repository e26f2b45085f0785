// Package palette holds the fixed palette catalogue and the continuous
// colour ramps sampled from it.
package palette

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyPalette is returned when a ramp is built without colour stops.
var ErrEmptyPalette = errors.New("palette: no colour stops")

// Palette is a named, ordered list of hex colour stops.
type Palette struct {
	Name  string
	Stops []string
}

// Catalogue is the fixed set of palettes a run picks from.
var Catalogue = []Palette{
	{Name: "signal", Stops: []string{"#d6d6d6", "#ffee32", "#ffd100", "#202020", "#333533"}},
	{Name: "ember", Stops: []string{"#ffe45c", "#ffd60a", "#e57824", "#cc3333", "#932525"}},
	{Name: "dusk", Stops: []string{"#ff5400", "#ff6d00", "#ff8500", "#ff9100", "#ff9e00", "#0096c7", "#0077b6", "#023e8a", "#03147e"}},
	{Name: "tide", Stops: []string{"#04479f", "#1368aa", "#4091c9", "#9dcee2", "#fedfd4", "#f0876a", "#f36e53", "#f15041", "#e72923", "#b60217"}},
	{Name: "crimson", Stops: []string{"#1b191a", "#363a3d", "#660708", "#a4161a", "#ba181b", "#e5383b", "#b1a7a6", "#d3d3d3", "#f5f3f4", "#ffffff"}},
	{Name: "glacier", Stops: []string{"#23233b", "#2c4268", "#007bba", "#00a9e2", "#7ccdf4", "#bce3fa", "#9b9c9b", "#b2b0b0", "#c5c6c6"}},
	{Name: "siren", Stops: []string{"#a4161a", "#f0233d", "#b01721", "#212122", "#121214", "#b2b0b0", "#c5c6c6", "#ebebeb"}},
	{Name: "graphite", Stops: []string{"#f8f9fa", "#e9ecef", "#dee2e6", "#ced4da", "#adb5bd", "#6c757d", "#495057", "#343a40", "#212529"}},
}

// Ramp is a continuous colour function over [0,1] built from equally
// spaced stops, interpolated in RGB.
type Ramp struct {
	stops []Color
}

// NewRamp parses the hex stops into a ramp.
func NewRamp(stops []string) (Ramp, error) {
	if len(stops) == 0 {
		return Ramp{}, ErrEmptyPalette
	}
	r := Ramp{stops: make([]Color, len(stops))}
	for i, s := range stops {
		c, err := Parse(s)
		if err != nil {
			return Ramp{}, fmt.Errorf("palette: stop %d %q: %w", i, s, err)
		}
		r.stops[i] = c
	}
	return r, nil
}

// Len reports the number of stops.
func (r Ramp) Len() int { return len(r.stops) }

// At samples the ramp; t is clamped to [0,1].
func (r Ramp) At(t float64) Color {
	n := len(r.stops)
	if n == 0 {
		return RGB(0, 0, 0)
	}
	if n == 1 || math.IsNaN(t) || t <= 0 {
		return r.stops[0]
	}
	if t >= 1 {
		return r.stops[n-1]
	}
	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return r.stops[n-1]
	}
	return r.stops[i].Lerp(r.stops[i+1], pos-float64(i))
}
