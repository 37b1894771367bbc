package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"swwall/internal/config"
	"swwall/internal/scene"
)

// RunWindow opens the window and blocks until it is closed or Escape is
// pressed.
func RunWindow(cfg *config.Config, logger *slog.Logger) error {
	if cfg == nil {
		cfg = config.Default()
	}
	logger = orNop(logger)

	ebiten.SetWindowSize(cfg.WindowSize(scene.Width, scene.Height))
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Input.MouseLook {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	logger.Info("opening window",
		"title", cfg.Display.WindowTitle,
		"scale", cfg.Display.Scale,
		"tps", cfg.Display.TPS,
	)
	return ebiten.RunGame(NewGame(cfg, logger))
}
