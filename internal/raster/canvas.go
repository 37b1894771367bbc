// Package raster draws clipped lines and rectangles into a flat buffer of
// packed 0xRRGGBB pixels.
//
// Every primitive except Clear is restricted to the current area, a
// rectangle the caller sets, saves and restores through the area stack.
package raster

import "fmt"

// Color is a packed 0xRRGGBB value.
type Color uint32

// RGB splits a packed color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Canvas wraps a host-owned pixel buffer together with the area stack
// that restricts drawing into it.
type Canvas struct {
	width  int
	height int
	pix    []Color

	area  Rect
	stack []Rect
}

// NewCanvas wraps pix, which must hold exactly width*height pixels. The
// buffer is not copied; the canvas writes straight into it.
func NewCanvas(pix []Color, width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("raster: buffer holds %d pixels, want %d", len(pix), width*height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    pix,
		area:   Rect{Left: 0, Top: 0, Right: width, Bottom: height},
		stack:  make([]Rect, 0, 8),
	}, nil
}

// NewCanvasSize allocates a fresh black buffer of the given size.
func NewCanvasSize(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("raster: invalid canvas size %dx%d", width, height))
	}
	cv, _ := NewCanvas(make([]Color, width*height), width, height)
	return cv
}

func (cv *Canvas) Width() int  { return cv.width }
func (cv *Canvas) Height() int { return cv.height }

// Pix exposes the underlying buffer, row-major.
func (cv *Canvas) Pix() []Color { return cv.pix }

// At returns the pixel at (x, y), or 0 outside the buffer.
func (cv *Canvas) At(x, y int) Color {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return 0
	}
	return cv.pix[y*cv.width+x]
}

// set writes one pixel. Areas larger than the buffer are legal, so the
// physical bounds are checked here rather than trusted.
func (cv *Canvas) set(x, y int, c Color) {
	if x < 0 || x >= cv.width || y < 0 || y >= cv.height {
		return
	}
	cv.pix[y*cv.width+x] = c
}
