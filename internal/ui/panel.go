// Package ui draws the viewer's parameter panel and tile overlay.
package ui

import (
	"fmt"
	"strings"

	"rise/internal/core"
)

// Lines lays a snapshot out as panel text: a header per group followed by
// one "label  value" row per parameter.
func Lines(snap core.ParameterSnapshot) []string {
	width := 0
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			width = max(width, len(p.Label))
		}
	}
	var lines []string
	for i, g := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.ToUpper(g.Name))
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%-*s  %s", width, p.Label, p.Value))
		}
	}
	return lines
}

// Segment is a line in screen pixels.
type Segment struct {
	From, To core.Point
	Seam     bool
}

// Outline returns the edges of every tile quad, mapped through toPixels.
func Outline(tiles []core.Tile, toPixels func(core.Point) core.Point) []Segment {
	segs := make([]Segment, 0, 4*len(tiles))
	for _, t := range tiles {
		for k := range t.Quad {
			segs = append(segs, Segment{
				From: toPixels(t.Quad[k]),
				To:   toPixels(t.Quad[(k+1)%4]),
				Seam: t.Seam(),
			})
		}
	}
	return segs
}
