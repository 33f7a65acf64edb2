// Package camera holds the first-person pose: position, heading, view plane,
// and the vertical state (pitch, jump offset, view-bob) that shifts the horizon.
package camera

import (
	"math"

	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
)

// Collider answers passability for movement, satisfied by *world.World
type Collider interface {
	IsWall(x, y int) bool
}

type Camera struct {
	Position  vmath.Vec2
	Direction vmath.Vec2
	Plane     vmath.Vec2

	MoveSpeed float64
	RotSpeed  float64

	Pitch     float64
	ZPosition float64
	ZVelocity float64
	BobPhase  float64
}

// New places a camera at position facing direction. The plane is the
// perpendicular of direction scaled to CameraPlaneLength, so (-1,0) gives (0,0.66).
func New(position, direction vmath.Vec2) *Camera {
	dir := direction.Normalize()
	if dir == (vmath.Vec2{}) {
		dir = parameter.CameraStartDirection
	}
	return &Camera{
		Position:  position,
		Direction: dir,
		Plane:     dir.Perpendicular().Scale(parameter.CameraPlaneLength),
		MoveSpeed: parameter.CameraMoveSpeed,
		RotSpeed:  parameter.CameraRotSpeed,
	}
}

// --- Movement ---

func (c *Camera) MoveForward(w Collider, scale float64) bool {
	moved := c.move(w, c.Direction.Scale(c.MoveSpeed*scale))
	if moved && c.Pitch > parameter.CameraDriftPitch {
		c.ZVelocity += parameter.CameraDriftImpulse
	}
	return moved
}

func (c *Camera) MoveBackward(w Collider, scale float64) bool {
	return c.move(w, c.Direction.Scale(-c.MoveSpeed*scale))
}

func (c *Camera) StrafeLeft(w Collider, scale float64) bool {
	return c.move(w, c.right().Scale(-c.MoveSpeed*scale))
}

func (c *Camera) StrafeRight(w Collider, scale float64) bool {
	return c.move(w, c.right().Scale(c.MoveSpeed*scale))
}

// right is the strafe axis (dir.y, -dir.x)
func (c *Camera) right() vmath.Vec2 {
	return c.Direction.Perpendicular()
}

// move resolves collision per axis so the camera slides along wall faces.
// Returns false when both axes were blocked.
func (c *Camera) move(w Collider, delta vmath.Vec2) bool {
	target := c.Position.Add(delta)
	_, cy := c.Position.Cell()
	tx, ty := target.Cell()

	moved := false
	if !w.IsWall(tx, cy) {
		c.Position.X = target.X
		moved = moved || delta.X != 0
	}
	// Y test uses the possibly updated X
	cx, _ := c.Position.Cell()
	if !w.IsWall(cx, ty) {
		c.Position.Y = target.Y
		moved = moved || delta.Y != 0
	}

	if moved {
		c.BobPhase += parameter.CameraBobStep
	}
	return moved
}

// --- Orientation ---

// Rotate turns by angle × RotSpeed
func (c *Camera) Rotate(angle float64) {
	c.RotateAbsolute(angle * c.RotSpeed)
}

// RotateAbsolute turns direction and plane together by angle radians, then
// renormalizes both so repeated small turns cannot drift their magnitudes
func (c *Camera) RotateAbsolute(angle float64) {
	c.Direction = c.Direction.Rotate(angle).Normalize()
	c.Plane = c.Plane.Rotate(angle).WithMagnitude(parameter.CameraPlaneLength)
}

func (c *Camera) LookUp(delta float64) {
	c.setPitch(c.Pitch + delta*parameter.CameraPitchStep)
}

func (c *Camera) LookDown(delta float64) {
	c.setPitch(c.Pitch - delta*parameter.CameraPitchStep)
}

func (c *Camera) setPitch(p float64) {
	c.Pitch = vmath.Clamp(p, -parameter.CameraPitchLimit, parameter.CameraPitchLimit)
}

// ResetView levels the camera and drops any vertical offset
func (c *Camera) ResetView() {
	c.Pitch = 0
	c.ZPosition = 0
	c.ZVelocity = 0
}

// --- Vertical state ---

// Update integrates vertical velocity under gravity with damping. Constants are
// per ReferenceTick, dt rescales them so frame rate does not change the feel.
func (c *Camera) Update(dt float64) {
	k := dt / parameter.ReferenceTick

	c.ZVelocity -= parameter.CameraGravity * k
	c.ZPosition += c.ZVelocity * k

	if c.ZPosition < 0 {
		c.ZPosition = 0
		c.ZVelocity = 0
	}

	c.ZVelocity *= math.Pow(parameter.CameraDamping, k)
}

// ViewBob returns the clamped sinusoidal bob for the current phase
func (c *Camera) ViewBob() float64 {
	bob := math.Sin(c.BobPhase) * parameter.CameraBobAmplitude
	return vmath.Clamp(bob, -parameter.CameraBobClamp, parameter.CameraBobClamp)
}

// HorizonOffset combines pitch, view-bob and jump height into a row shift
func (c *Camera) HorizonOffset() int {
	base := int(c.Pitch * parameter.HorizonPitchRows)
	bob := int(c.ViewBob() * parameter.HorizonBobRows)
	jump := int(c.ZPosition * parameter.HorizonJumpRows)
	return base + bob + jump
}
