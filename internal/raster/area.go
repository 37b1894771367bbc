package raster

import "errors"

// ErrAreaStackUnderflow is returned by PopArea without a matching PushArea.
var ErrAreaStackUnderflow = errors.New("raster: area stack underflow")

// Rect is an axis-aligned region. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Right - r.Left }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Bottom - r.Top }

// Empty reports whether r contains no pixels, including misordered bounds.
func (r Rect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Area returns the current drawing region.
func (cv *Canvas) Area() Rect { return cv.area }

// AreaWidth is the width of the current area.
func (cv *Canvas) AreaWidth() int { return cv.area.Dx() }

// AreaHeight is the height of the current area.
func (cv *Canvas) AreaHeight() int { return cv.area.Dy() }

// AreaDepth is the number of saved areas.
func (cv *Canvas) AreaDepth() int { return len(cv.stack) }

// PushArea saves the current area.
func (cv *Canvas) PushArea() {
	cv.stack = append(cv.stack, cv.area)
}

// SetArea replaces the current area. The bounds are not validated; a
// misordered rectangle simply clips everything.
func (cv *Canvas) SetArea(l, t, r, b int) {
	cv.area = Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// SetAreaRect is SetArea taking a Rect.
func (cv *Canvas) SetAreaRect(r Rect) {
	cv.area = r
}

// PopArea restores the most recently pushed area.
func (cv *Canvas) PopArea() error {
	n := len(cv.stack)
	if n == 0 {
		return ErrAreaStackUnderflow
	}
	cv.area = cv.stack[n-1]
	cv.stack = cv.stack[:n-1]
	return nil
}
