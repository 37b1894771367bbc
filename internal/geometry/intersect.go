// Package geometry holds the 2D line math used to clip the wall against
// the view frustum.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cross is the z component of the 3D cross product of (x0,y0) and (x1,y1).
func Cross(x0, y0, x1, y1 float64) float64 {
	return x0*y1 - y0*x1
}

// Intersect returns the point where the infinite line through r0,r1 meets
// the infinite line through s0,s1. ok is false for parallel or degenerate
// lines, and whenever the result is not finite.
func Intersect(r0, r1, s0, s1 mgl64.Vec2) (p mgl64.Vec2, ok bool) {
	rdx, rdy := r0.X()-r1.X(), r0.Y()-r1.Y()
	sdx, sdy := s0.X()-s1.X(), s0.Y()-s1.Y()

	denom := Cross(rdx, rdy, sdx, sdy)
	if denom == 0 {
		return mgl64.Vec2{}, false
	}

	a := Cross(r0.X(), r0.Y(), r1.X(), r1.Y())
	b := Cross(s0.X(), s0.Y(), s1.X(), s1.Y())

	x := Cross(a, rdx, b, sdx) / denom
	y := Cross(a, rdy, b, sdy) / denom
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{x, y}, true
}
