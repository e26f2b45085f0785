//go:build !ebiten

package ui

import "rise/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// SetSnapshot is a no-op in the headless build.
func (h *HUD) SetSnapshot(core.ParameterSnapshot) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay() *Overlay { return nil }

func (o *Overlay) Toggle() {}

func (o *Overlay) SetTiles([]core.Tile, func(core.Point) core.Point) {}

func (o *Overlay) Draw(any) {}
