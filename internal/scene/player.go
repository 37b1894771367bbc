package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axes is the movement input for one frame.
type Axes struct {
	X    float64 // strafe, -1 left .. 1 right
	Z    float64 // -1 back .. 1 forward
	Look float64 // yaw rate, positive turns right
}

// Clamped limits every axis to its legal range.
func (a Axes) Clamped() Axes {
	return Axes{
		X:    clamp(a.X, -1, 1),
		Z:    clamp(a.Z, -1, 1),
		Look: clamp(a.Look, -MaxLookAxis, MaxLookAxis),
	}
}

// Player is the camera. Pos holds world x and z; negative z is "up" in the
// plan views.
type Player struct {
	Pos     mgl64.Vec2
	Heading float64 // radians, kept in [0, 2*Pi)
}

// Wall is the single static segment of the world.
type Wall struct {
	Start, End mgl64.Vec2
}

// Advance integrates heading and position over dt seconds.
func (p *Player) Advance(dt float64, in Axes) {
	if !isFinite(dt) || dt < 0 {
		return
	}
	in = in.Clamped()

	p.Heading = normalizeAngle(p.Heading + math.Pi*in.Look*dt)

	sin, cos := math.Sincos(p.Heading)
	step := MoveSpeed * dt
	// z is flipped so that forward moves towards the top of the plan views
	p.Pos[0] += step * (in.X*cos + in.Z*sin)
	p.Pos[1] -= step * (in.X*(-sin) + in.Z*cos)
}

// Facing returns the unit vector the player looks along, in world space.
func (p *Player) Facing() mgl64.Vec2 {
	sin, cos := math.Sincos(p.Heading)
	return mgl64.Vec2{sin, -cos}
}

// ToLocal expresses a world point in the player's frame: x to the right,
// negative z ahead.
func (p *Player) ToLocal(w mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Rotate2D(-p.Heading).Mul2x1(w.Sub(p.Pos))
}

// normalizeAngle maps a into [0, 2*Pi).
func normalizeAngle(a float64) float64 {
	const full = 2 * math.Pi
	if !isFinite(a) {
		return 0
	}
	if a >= full || a < -full {
		a = math.Mod(a, full)
	}
	for a < 0 {
		a += full
	}
	for a >= full {
		a -= full
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(v, hi))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
