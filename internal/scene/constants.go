package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"swwall/internal/raster"
)

// Logical canvas size. The host scales it up for display.
const (
	Width  = 320
	Height = 200
)

// Screen placement of the three views, in absolute canvas pixels.
var (
	PlanViewRect        = raster.Rect{Left: 5, Top: 50, Right: 105, Bottom: 150}
	TopDownViewRect     = raster.Rect{Left: 110, Top: 50, Right: 210, Bottom: 150}
	PerspectiveViewRect = raster.Rect{Left: 215, Top: 50, Right: 315, Bottom: 150}
)

const (
	ColorBackground        raster.Color = 0x000000
	ColorWall              raster.Color = 0xFFFF00
	ColorFacing            raster.Color = 0x333333
	ColorPlayer            raster.Color = 0xFFFFFF
	ColorPlanBorder        raster.Color = 0xFF0000
	ColorTopDownBorder     raster.Color = 0x00FF00
	ColorPerspectiveBorder raster.Color = 0x0000FF
)

const (
	// MoveSpeed is in world units per second at full axis deflection.
	MoveSpeed = 20.0

	// MaxLookAxis bounds the look axis; heading changes by at most
	// Pi*MaxLookAxis radians per second.
	MaxLookAxis = 64.0

	// FacingMarkerLength is the length of the direction marker drawn in
	// both plan views.
	FacingMarkerLength = 10.0

	// ProjectionScale widens the horizontal projection.
	ProjectionScale = 50.0

	// WallHalfHeight sets the projected wall height: a wall at depth d
	// spans 2*WallHalfHeight/d pixels.
	WallHalfHeight = 50.0
)

// The view is clipped by two lines crossing just behind the eye. Each makes
// FrustumHalfAngle with the forward axis and reaches FrustumReach units to
// the side. FrustumNear keeps them from meeting exactly at the eye.
const (
	FrustumHalfAngle = 1.4711276743037347 // atan(10), about 84.3 degrees
	FrustumReach     = 50.0
	FrustumNear      = 0.0001
)

// Defaults for a fresh scene.
var (
	DefaultWall = Wall{
		Start: mgl64.Vec2{40, 30},
		End:   mgl64.Vec2{60, 30},
	}
	DefaultPlayer = Player{
		Pos:     mgl64.Vec2{50, 50},
		Heading: 0,
	}
)
