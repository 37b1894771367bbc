package game

import (
	"image"
	"sync"

	"swwall/internal/graphics"
	"swwall/internal/raster"
)

// Framebuffer owns the canvas. The renderer and the presenter take turns
// holding it, so a reader never sees a half-drawn frame.
type Framebuffer struct {
	mu     sync.Mutex
	canvas *raster.Canvas
}

// NewFramebuffer allocates a black canvas of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{canvas: raster.NewCanvasSize(width, height)}
}

// Render runs fn with exclusive access to the canvas.
func (fb *Framebuffer) Render(fn func(cv *raster.Canvas) error) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fn(fb.canvas)
}

// CopyTo converts the current frame into dst.
func (fb *Framebuffer) CopyTo(dst *image.RGBA) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return graphics.FillRGBA(dst, fb.canvas.Pix(), fb.canvas.Width(), fb.canvas.Height())
}

// SavePNG writes the current frame to path, scaled.
func (fb *Framebuffer) SavePNG(scale int, path string) error {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return graphics.SavePNG(fb.canvas, scale, path)
}

// Bounds is the canvas rectangle, for sizing conversion targets.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.canvas.Width(), fb.canvas.Height())
}
