package raster

import (
	"math"

	"swwall/internal/mathutil"
)

// Clear fills the whole buffer with c, ignoring the area.
func (cv *Canvas) Clear(c Color) {
	for i := range cv.pix {
		cv.pix[i] = c
	}
}

// plot writes one pixel if it lies inside the area and the buffer.
func (cv *Canvas) plot(x, y int, c Color) {
	if !cv.area.Contains(x, y) {
		return
	}
	cv.set(x, y, c)
}

// VLine fills column x from y0 to y1 inclusive, in absolute coordinates.
func (cv *Canvas) VLine(c Color, x, y0, y1 int) {
	if cv.area.Empty() || x < cv.area.Left || x >= cv.area.Right {
		return
	}
	y0 = mathutil.IntClamp(y0, cv.area.Top, cv.area.Bottom-1)
	y1 = mathutil.IntClamp(y1, cv.area.Top, cv.area.Bottom-1)
	// |1 keeps the step non-zero when y0 == y1
	dir := mathutil.IntSign(y1-y0) | 1
	for y := y0; y != y1+dir; y += dir {
		cv.plot(x, y, c)
	}
}

// HLine fills row y from x0 to x1 inclusive, in absolute coordinates.
func (cv *Canvas) HLine(c Color, x0, x1, y int) {
	if cv.area.Empty() || y < cv.area.Top || y >= cv.area.Bottom {
		return
	}
	x0 = mathutil.IntClamp(x0, cv.area.Left, cv.area.Right-1)
	x1 = mathutil.IntClamp(x1, cv.area.Left, cv.area.Right-1)
	dir := mathutil.IntSign(x1-x0) | 1
	for x := x0; x != x1+dir; x += dir {
		cv.plot(x, y, c)
	}
}

// Line draws from (x0,y0) to (x1,y1), given relative to the area's
// top-left corner. Coordinates are truncated towards zero before the
// offset is applied, and the clipped endpoints are rounded half-up to
// pixel centers.
func (cv *Canvas) Line(c Color, x0, y0, x1, y1 float64) {
	if cv.area.Empty() {
		return
	}
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return
	}

	x0 = math.Trunc(x0) + float64(cv.area.Left)
	x1 = math.Trunc(x1) + float64(cv.area.Left)
	y0 = math.Trunc(y0) + float64(cv.area.Top)
	y1 = math.Trunc(y1) + float64(cv.area.Top)

	if x0 == x1 {
		cv.VLine(c, toPixel(x0), toPixel(y0), toPixel(y1))
		return
	}
	if y0 == y1 {
		cv.HLine(c, toPixel(x0), toPixel(x1), toPixel(y0))
		return
	}

	if !cv.ClipLine(&x0, &y0, &x1, &y1) {
		return
	}

	cv.walk(c,
		mathutil.RoundHalfUp(x0), mathutil.RoundHalfUp(y0),
		mathutil.RoundHalfUp(x1), mathutil.RoundHalfUp(y1))
}

// walk rasterizes between two pixel centers, one pixel per step along the
// dominant axis. The minor axis advances once the accumulated error reaches
// half a pixel; the error is kept doubled so it stays integral.
func (cv *Canvas) walk(c Color, x0, y0, x1, y1 int) {
	dx, dy := x1-x0, y1-y0
	sx, sy := mathutil.IntSign(dx), mathutil.IntSign(dy)
	adx, ady := mathutil.IntAbs(dx), mathutil.IntAbs(dy)

	x, y := x0, y0
	if adx >= ady {
		e := 0
		for i := 0; i <= adx; i++ {
			cv.plot(x, y, c)
			e += 2 * ady
			if e >= adx {
				y += sy
				e -= 2 * adx
			}
			x += sx
		}
		return
	}

	e := 0
	for i := 0; i <= ady; i++ {
		cv.plot(x, y, c)
		e += 2 * adx
		if e >= ady {
			x += sx
			e -= 2 * ady
		}
		y += sy
	}
}

// Rect outlines the rectangle (l,t)-(r,b), area-relative, with four
// independently clipped lines: top, right, bottom, left.
func (cv *Canvas) Rect(c Color, l, t, r, b int) {
	fl, ft, fr, fb := float64(l), float64(t), float64(r), float64(b)
	cv.Line(c, fl, ft, fr, ft)
	cv.Line(c, fr, ft, fr, fb)
	cv.Line(c, fl, fb, fr, fb)
	cv.Line(c, fl, ft, fl, fb)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// toPixel converts an integral float to int, saturating far outside any
// buffer so VLine/HLine clamping still sees the right side.
func toPixel(v float64) int {
	const limit = 1 << 30
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return int(v)
}
