package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"swwall/internal/geometry"
	"swwall/internal/raster"
)

// WallState is the outcome of clipping the wall for the first-person view.
type WallState int

const (
	// WallVisible means at least part of the wall is in front of the player.
	WallVisible WallState = iota
	// WallBehind means both endpoints are behind the player.
	WallBehind
	// WallDegenerate means frustum clipping left no usable edge.
	WallDegenerate
)

func (s WallState) String() string {
	switch s {
	case WallVisible:
		return "visible"
	case WallBehind:
		return "behind"
	case WallDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// ScreenEdge is one projected vertical edge of the wall, in view-local
// pixels.
type ScreenEdge struct {
	X, Top, Bottom float64
}

// frustumEdges returns the two clipping lines, left first, in player space.
func frustumEdges() [2][2]mgl64.Vec2 {
	depth := FrustumReach / math.Tan(FrustumHalfAngle)
	return [2][2]mgl64.Vec2{
		{{-FrustumNear, FrustumNear}, {-FrustumReach, depth}},
		{{FrustumNear, FrustumNear}, {FrustumReach, depth}},
	}
}

// ClipToFrustum restricts the player-space wall a-b to the part in front
// of the player. Endpoints behind the player are moved onto the frustum
// edge where the wall line crosses to the front.
func ClipToFrustum(a, b mgl64.Vec2) (mgl64.Vec2, mgl64.Vec2, WallState) {
	if a.Y() > 0 && b.Y() > 0 {
		return a, b, WallBehind
	}

	edges := frustumEdges()
	left, okLeft := geometry.Intersect(a, b, edges[0][0], edges[0][1])
	right, okRight := geometry.Intersect(a, b, edges[1][0], edges[1][1])

	pull := func(p mgl64.Vec2) mgl64.Vec2 {
		if p.Y() <= 0 {
			return p
		}
		if okLeft && left.Y() <= 0 {
			return left
		}
		if okRight {
			return right
		}
		return p
	}
	a, b = pull(a), pull(b)

	if a.Y() >= 0 || b.Y() >= 0 {
		return a, b, WallDegenerate
	}
	return a, b, WallVisible
}

// Project maps a player-space point with negative z onto a view whose
// center is (cx, cy).
func Project(p mgl64.Vec2, cx, cy float64) ScreenEdge {
	z := p.Y()
	return ScreenEdge{
		X:      (-p.X()*ProjectionScale)/z + cx,
		Top:    -WallHalfHeight/z + cy,
		Bottom: WallHalfHeight/z + cy,
	}
}

// drawPerspective renders the first-person view into the current area.
func drawPerspective(cv *raster.Canvas, local [2]mgl64.Vec2) (WallState, [2]ScreenEdge) {
	var edges [2]ScreenEdge

	a, b, state := ClipToFrustum(local[0], local[1])
	if state == WallVisible {
		cx := float64(cv.AreaWidth() / 2)
		cy := float64(cv.AreaHeight() / 2)
		edges[0] = Project(a, cx, cy)
		edges[1] = Project(b, cx, cy)
		drawWallQuad(cv, edges[0], edges[1])
	}

	cv.Rect(ColorPerspectiveBorder, 0, 0, cv.AreaWidth()-1, cv.AreaHeight()-1)
	return state, edges
}

func drawWallQuad(cv *raster.Canvas, e0, e1 ScreenEdge) {
	cv.Line(ColorWall, e0.X, e0.Top, e1.X, e1.Top)
	cv.Line(ColorWall, e1.X, e1.Top, e1.X, e1.Bottom)
	cv.Line(ColorWall, e0.X, e0.Bottom, e1.X, e1.Bottom)
	cv.Line(ColorWall, e0.X, e0.Top, e0.X, e0.Bottom)
}
