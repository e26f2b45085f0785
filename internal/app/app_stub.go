//go:build !ebiten

package app

import (
	"log/slog"

	"rise/internal/config"
)

// Run reports that the viewer is not compiled in.
func Run(*config.Config, int64, *slog.Logger) error {
	return ErrNoViewer
}
