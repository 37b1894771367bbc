// Package scene owns the player and the wall and redraws the three views
// of them every frame.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"swwall/internal/raster"
)

// Scene is the render context carried from frame to frame.
type Scene struct {
	Player Player
	Wall   Wall
}

// Frame describes what one Update drew.
type Frame struct {
	// Local is the wall in player space before frustum clipping.
	Local [2]mgl64.Vec2
	// View is the state of the first-person view.
	View WallState
	// Edges holds the projected wall edges when View is WallVisible.
	Edges [2]ScreenEdge
}

// New returns a scene with the default player and wall.
func New() *Scene {
	return &Scene{
		Player: DefaultPlayer,
		Wall:   DefaultWall,
	}
}

// Update advances the player by dt seconds of input and redraws all three
// views into cv. The canvas area stack is left as it was found.
func (s *Scene) Update(cv *raster.Canvas, dt float64, in Axes) (Frame, error) {
	cv.Clear(ColorBackground)
	s.Player.Advance(dt, in)

	var f Frame
	cv.PushArea()

	cv.SetAreaRect(PlanViewRect)
	s.drawPlan(cv)

	cv.SetAreaRect(TopDownViewRect)
	f.Local = s.drawTopDown(cv)

	cv.SetAreaRect(PerspectiveViewRect)
	f.View, f.Edges = drawPerspective(cv, f.Local)

	if err := cv.PopArea(); err != nil {
		return f, fmt.Errorf("scene: restore area: %w", err)
	}
	return f, nil
}

// drawPlan draws the world as seen from above with a fixed origin.
func (s *Scene) drawPlan(cv *raster.Canvas) {
	p := s.Player.Pos
	facing := s.Player.Facing().Mul(FacingMarkerLength)

	cv.Line(ColorWall, s.Wall.Start.X(), s.Wall.Start.Y(), s.Wall.End.X(), s.Wall.End.Y())
	cv.Line(ColorFacing, p.X(), p.Y(), p.X()+facing.X(), p.Y()+facing.Y())
	cv.Line(ColorPlayer, p.X(), p.Y(), p.X(), p.Y())
	cv.Rect(ColorPlanBorder, 0, 0, cv.AreaWidth()-1, cv.AreaHeight()-1)
}

// drawTopDown draws the world from above, rotated so the player always
// faces up, and returns the wall in player space.
func (s *Scene) drawTopDown(cv *raster.Canvas) [2]mgl64.Vec2 {
	local := [2]mgl64.Vec2{
		s.Player.ToLocal(s.Wall.Start),
		s.Player.ToLocal(s.Wall.End),
	}

	midx := float64(cv.AreaWidth() / 2)
	midy := float64(cv.AreaHeight() / 2)

	cv.Line(ColorWall, local[0].X()+midx, local[0].Y()+midy, local[1].X()+midx, local[1].Y()+midy)
	cv.Line(ColorFacing, midx, midy, midx, midy-FacingMarkerLength)
	cv.Line(ColorPlayer, midx, midy, midx, midy)
	cv.Rect(ColorTopDownBorder, 0, 0, cv.AreaWidth()-1, cv.AreaHeight()-1)

	return local
}
