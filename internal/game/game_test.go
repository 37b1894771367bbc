package game

import (
	"context"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"swwall/internal/config"
	"swwall/internal/raster"
	"swwall/internal/scene"
)

func TestAxesFromKeys(t *testing.T) {
	cfg := config.InputConfig{MouseSensitivity: 0.5, KeyLookRate: 2}
	tests := []struct {
		name  string
		held  []ebiten.Key
		mouse float64
		want  scene.Axes
	}{
		{"nothing", nil, 0, scene.Axes{}},
		{"forward", []ebiten.Key{ebiten.KeyW}, 0, scene.Axes{Z: 1}},
		{"back and strafe left", []ebiten.Key{ebiten.KeyS, ebiten.KeyA}, 0, scene.Axes{X: -1, Z: -1}},
		{"opposite keys cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, 0, scene.Axes{}},
		{"arrow turns", []ebiten.Key{ebiten.KeyLeft}, 0, scene.Axes{Look: -2}},
		{"mouse turns", nil, 6, scene.Axes{Look: 3}},
		{"mouse and arrow add", []ebiten.Key{ebiten.KeyRight}, 2, scene.Axes{Look: 3}},
		{"look is clamped", nil, 1e6, scene.Axes{Look: scene.MaxLookAxis}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := axesFromKeys(tt.held, tt.mouse, cfg)
			if got != tt.want {
				t.Errorf("axesFromKeys() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMouseDelta(t *testing.T) {
	ih := NewInputHandler(config.InputConfig{MouseLook: true})
	if d := ih.mouseDelta(100); d != 0 {
		t.Errorf("first sample = %v, want 0", d)
	}
	if d := ih.mouseDelta(104); d != 4 {
		t.Errorf("delta = %v, want 4", d)
	}
	if d := ih.mouseDelta(90); d != -14 {
		t.Errorf("delta = %v, want -14", d)
	}
}

func TestStepDrawsAllViews(t *testing.T) {
	g := NewGame(config.Default(), nil)
	if err := g.Step(0, scene.Axes{}); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if g.Frame().View != scene.WallVisible {
		t.Errorf("View = %v, want visible", g.Frame().View)
	}

	corners := []struct {
		r    raster.Rect
		want raster.Color
	}{
		{scene.PlanViewRect, scene.ColorPlanBorder},
		{scene.TopDownViewRect, scene.ColorTopDownBorder},
		{scene.PerspectiveViewRect, scene.ColorPerspectiveBorder},
	}
	_ = g.fb.Render(func(cv *raster.Canvas) error {
		for _, c := range corners {
			if got := cv.At(c.r.Left, c.r.Top); got != c.want {
				t.Errorf("corner of %+v = %#x, want %#x", c.r, got, c.want)
			}
		}
		if cv.AreaDepth() != 0 {
			t.Errorf("AreaDepth() = %d after a frame", cv.AreaDepth())
		}
		return nil
	})

	if g.monitor.FrameCount() != 1 {
		t.Errorf("FrameCount() = %d, want 1", g.monitor.FrameCount())
	}
}

func TestLayout(t *testing.T) {
	g := NewGame(nil, nil)
	w, h := g.Layout(1920, 1080)
	if w != scene.Width || h != scene.Height {
		t.Errorf("Layout() = %dx%d, want %dx%d", w, h, scene.Width, scene.Height)
	}
}

func TestSaveScreenshot(t *testing.T) {
	cfg := config.Default()
	cfg.Capture.Dir = t.TempDir()
	cfg.Capture.Scale = 3

	g := NewGame(cfg, nil)
	g.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }
	if err := g.Step(0, scene.Axes{}); err != nil {
		t.Fatal(err)
	}

	path, err := g.SaveScreenshot()
	if err != nil {
		t.Fatalf("SaveScreenshot() error = %v", err)
	}
	if filepath.Base(path) != "wall-20240501-123000.000.png" {
		t.Errorf("screenshot name = %s", filepath.Base(path))
	}
	assertPNGSize(t, path, scene.Width*3, scene.Height*3)
}

func TestRunFramesMovesPlayer(t *testing.T) {
	g := NewGame(config.Default(), nil)
	hc := config.HeadlessConfig{Frames: 5, DT: 0.1, Axes: config.AxesConfig{Z: 1}}

	n, err := g.runFrames(context.Background(), hc)
	if err != nil {
		t.Fatalf("runFrames() error = %v", err)
	}
	if n != 5 || g.monitor.FrameCount() != 5 {
		t.Errorf("ran %d frames, monitor counted %d; want 5", n, g.monitor.FrameCount())
	}

	// 5 frames * 0.1s * 20 units/s straight up
	if z := g.scene.Player.Pos.Y(); math.Abs(z-40) > 1e-9 {
		t.Errorf("player z = %v, want 40", z)
	}
}

func TestRunFramesRestartsStats(t *testing.T) {
	g := NewGame(config.Default(), nil)
	for i := 0; i < 4; i++ {
		if err := g.Step(0.01, scene.Axes{}); err != nil {
			t.Fatal(err)
		}
	}

	n, err := g.runFrames(context.Background(), config.HeadlessConfig{Frames: 2, DT: 0.01})
	if err != nil || n != 2 {
		t.Fatalf("runFrames() = %d, %v; want 2, nil", n, err)
	}
	if got := g.monitor.FrameCount(); got != 2 {
		t.Errorf("FrameCount() = %d, want 2 counted from the start of the run", got)
	}
}

func TestRunFramesTicker(t *testing.T) {
	g := NewGame(config.Default(), nil)
	hc := config.HeadlessConfig{Hz: 500, Frames: 3, DT: 0.01}

	n, err := g.runFrames(context.Background(), hc)
	if err != nil || n != 3 {
		t.Errorf("runFrames() = %d, %v; want 3, nil", n, err)
	}
}

func TestRunFramesStopsOnCancel(t *testing.T) {
	tests := []struct {
		name string
		hz   int
	}{
		{"ticker", 1000},
		{"unpaced", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()

			g := NewGame(config.Default(), nil)
			_, err := g.runFrames(ctx, config.HeadlessConfig{Hz: tt.hz, DT: 0.001})
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("runFrames() error = %v, want deadline exceeded", err)
			}
		})
	}
}

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	cfg := config.Default()
	cfg.Headless = config.HeadlessConfig{
		Frames:   4,
		DT:       1.0 / 60,
		Snapshot: filepath.Join(t.TempDir(), "out", "final.png"),
		Axes:     config.AxesConfig{Look: 0.5},
	}
	cfg.Capture.Scale = 1

	if err := RunHeadless(context.Background(), cfg, nil); err != nil {
		t.Fatalf("RunHeadless() error = %v", err)
	}
	assertPNGSize(t, cfg.Headless.Snapshot, scene.Width, scene.Height)
}

func TestScreenshotDir(t *testing.T) {
	abs := t.TempDir()
	if got := screenshotDir(abs); got != abs {
		t.Errorf("screenshotDir(%q) = %q", abs, got)
	}
	if got := screenshotDir(""); !strings.HasSuffix(got, "screenshots") {
		t.Errorf("screenshotDir(\"\") = %q, want a screenshots directory", got)
	}
}

func TestIsTempExeDir(t *testing.T) {
	if !isTempExeDir(filepath.Join(os.TempDir(), "go-build123", "b001", "exe")) {
		t.Error("go build cache should count as temporary")
	}
	if isTempExeDir(filepath.Join(string(filepath.Separator), "opt", "swwall")) {
		t.Error("/opt/swwall should not count as temporary")
	}
}

func assertPNGSize(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	if cfg.Width != w || cfg.Height != h {
		t.Errorf("%s is %dx%d, want %dx%d", path, cfg.Width, cfg.Height, w, h)
	}
}
