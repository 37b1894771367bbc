package game

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"swwall/internal/config"
	"swwall/internal/scene"
)

// InputHandler turns keyboard and mouse state into movement axes.
type InputHandler struct {
	cfg  config.InputConfig
	held []ebiten.Key

	mouseReady bool
	lastMouseX int
}

// NewInputHandler creates a new input handler
func NewInputHandler(cfg config.InputConfig) *InputHandler {
	return &InputHandler{cfg: cfg}
}

// Poll samples the devices for this frame and returns the resulting axes.
func (ih *InputHandler) Poll() scene.Axes {
	ih.held = inpututil.AppendPressedKeys(ih.held[:0])

	var dx float64
	if ih.cfg.MouseLook {
		x, _ := ebiten.CursorPosition()
		dx = ih.mouseDelta(x)
	}
	return axesFromKeys(ih.held, dx, ih.cfg)
}

// Held returns the keys down in the last Poll.
func (ih *InputHandler) Held() []ebiten.Key {
	return ih.held
}

// mouseDelta returns the horizontal motion since the previous frame. The
// first sample only establishes the origin.
func (ih *InputHandler) mouseDelta(x int) float64 {
	if !ih.mouseReady {
		ih.mouseReady = true
		ih.lastMouseX = x
		return 0
	}
	dx := x - ih.lastMouseX
	ih.lastMouseX = x
	return float64(dx)
}

// axesFromKeys maps held keys and mouse motion onto axes. W/S move, A/D
// strafe, the arrow keys and the mouse turn. Opposite keys cancel.
func axesFromKeys(held []ebiten.Key, mouseDX float64, cfg config.InputConfig) scene.Axes {
	down := func(k ebiten.Key) float64 {
		if slices.Contains(held, k) {
			return 1
		}
		return 0
	}

	in := scene.Axes{
		X:    down(ebiten.KeyD) - down(ebiten.KeyA),
		Z:    down(ebiten.KeyW) - down(ebiten.KeyS),
		Look: (down(ebiten.KeyRight) - down(ebiten.KeyLeft)) * cfg.KeyLookRate,
	}
	in.Look += mouseDX * cfg.MouseSensitivity
	return in.Clamped()
}
