// Package game hosts the wall scene: it feeds input into the scene, shows
// the canvas in an ebiten window and runs it without one.
package game

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"swwall/internal/config"
	"swwall/internal/game/keytracker"
	"swwall/internal/monitoring"
	"swwall/internal/raster"
	"swwall/internal/scene"
)

// Version is logged at startup.
const Version = "sw_wall-1.0.0"

// Game implements ebiten.Game around one scene.
type Game struct {
	cfg    *config.Config
	logger *slog.Logger

	scene   *scene.Scene
	fb      *Framebuffer
	input   *InputHandler
	monitor *monitoring.PerformanceMonitor

	screenshotKey keytracker.KeyStateTracker
	overlayKey    keytracker.KeyStateTracker
	showFPS       bool

	frame scene.Frame
	rgba  *image.RGBA
	image *ebiten.Image
	now   func() time.Time
}

// NewGame builds a game from cfg. No ebiten state is touched until the
// game loop calls Update or Draw.
func NewGame(cfg *config.Config, logger *slog.Logger) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	fb := NewFramebuffer(scene.Width, scene.Height)
	return &Game{
		cfg:           cfg,
		logger:        orNop(logger),
		scene:         scene.New(),
		fb:            fb,
		input:         NewInputHandler(cfg.Input),
		monitor:       monitoring.NewPerformanceMonitor(cfg.Logging.FPSInterval),
		screenshotKey: keytracker.KeyStateTracker{Key: ebiten.KeyF12},
		overlayKey:    keytracker.KeyStateTracker{Key: ebiten.KeyF3},
		rgba:          image.NewRGBA(fb.Bounds()),
		now:           time.Now,
	}
}

func (g *Game) Update() error {
	in := g.input.Poll()
	held := g.input.Held()

	if slices.Contains(held, ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlayKey.JustPressedIn(held) {
		g.showFPS = !g.showFPS
		g.logPerfSnapshot()
	}

	if err := g.Step(1/float64(g.cfg.Display.TPS), in); err != nil {
		return err
	}

	if g.screenshotKey.JustPressedIn(held) {
		if path, err := g.SaveScreenshot(); err != nil {
			g.logger.Error("screenshot failed", "err", err)
		} else {
			g.logger.Info("screenshot saved", "path", path)
		}
	}
	g.monitor.LogReport(g.logger)
	return nil
}

// Step advances the scene by dt seconds and redraws the canvas.
func (g *Game) Step(dt float64, in scene.Axes) error {
	timer := g.monitor.StartFrame()
	defer timer.EndFrame()

	return g.fb.Render(func(cv *raster.Canvas) error {
		f, err := g.scene.Update(cv, dt, in)
		if err != nil {
			return fmt.Errorf("update frame %d: %w", g.monitor.FrameCount(), err)
		}
		if f.View != g.frame.View {
			g.logger.Debug("first-person view changed", "from", g.frame.View, "to", f.View)
		}
		g.frame = f
		return nil
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(scene.Width, scene.Height)
	}
	if err := g.fb.CopyTo(g.rgba); err != nil {
		g.logger.Error("present frame", "err", err)
		return
	}
	g.image.WritePixels(g.rgba.Pix)
	screen.DrawImage(g.image, nil)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()))
	}
}

// Layout keeps the logical canvas size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return scene.Width, scene.Height
}

// Frame reports what the last Step drew.
func (g *Game) Frame() scene.Frame {
	return g.frame
}

// SaveScreenshot writes the current frame into the capture directory.
func (g *Game) SaveScreenshot() (string, error) {
	path := filepath.Join(screenshotDir(g.cfg.Capture.Dir), screenshotName(g.now()))
	if err := g.fb.SavePNG(g.cfg.Capture.Scale, path); err != nil {
		return "", err
	}
	return path, nil
}
