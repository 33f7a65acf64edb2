package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
	"github.com/lixenwraith/maze3d/world"
)

const eps = 1e-9

func corridor() *world.World {
	return world.New(world.FromRows(
		"#######",
		"#     #",
		"### ###",
		"#######",
	), vmath.V2(3.5, 1.5))
}

func TestNewDefaults(t *testing.T) {
	c := New(vmath.V2(3.5, 1.5), vmath.V2(-2, 0))

	if !c.Direction.ApproxEqual(vmath.V2(-1, 0), eps) {
		t.Errorf("Expected normalized direction (-1,0), got %v", c.Direction)
	}
	if !c.Plane.ApproxEqual(vmath.V2(0, parameter.CameraPlaneLength), eps) {
		t.Errorf("Expected plane (0,0.66), got %v", c.Plane)
	}
	if c.Pitch != 0 || c.ZPosition != 0 || c.ZVelocity != 0 || c.BobPhase != 0 {
		t.Error("Expected zero vertical state")
	}
}

func TestMoveForwardOpen(t *testing.T) {
	c := New(vmath.V2(3.5, 1.5), vmath.V2(-1, 0))
	if !c.MoveForward(corridor(), 1.5) {
		t.Fatal("Expected move to succeed")
	}
	want := 3.5 - parameter.CameraMoveSpeed*1.5
	if math.Abs(c.Position.X-want) > eps || c.Position.Y != 1.5 {
		t.Errorf("Expected (%f,1.5), got %v", want, c.Position)
	}
	if c.BobPhase != parameter.CameraBobStep {
		t.Errorf("Expected bob phase %f, got %f", parameter.CameraBobStep, c.BobPhase)
	}
}

func TestMoveBlockedDoesNotBob(t *testing.T) {
	// Facing the wall above (y=0), half a cell away
	c := New(vmath.V2(1.5, 1.5), vmath.V2(0, -1))
	w := corridor()
	for i := 0; i < 10; i++ {
		c.MoveForward(w, 1.5)
	}
	if _, y := c.Position.Cell(); y != 1 {
		t.Errorf("Expected to stay in row 1, position %v", c.Position)
	}
	if c.Position.Y < 1.0 {
		t.Errorf("Penetrated wall: %v", c.Position)
	}
	bobs := c.BobPhase / parameter.CameraBobStep
	if bobs > 3.5 {
		t.Errorf("Expected bob only on successful moves, got %f steps", bobs)
	}
}

// TestSlideAlongWall verifies diagonal motion into a wall keeps the free axis
func TestSlideAlongWall(t *testing.T) {
	c := New(vmath.V2(2.5, 1.1), vmath.V2(-1, -1))
	start := c.Position
	c.MoveForward(corridor(), 1.5)

	if c.Position.X >= start.X {
		t.Errorf("Expected X to advance while sliding, got %v", c.Position)
	}
	if _, y := c.Position.Cell(); y != 1 {
		t.Errorf("Expected Y to remain in row 1, got %v", c.Position)
	}
}

func TestStrafe(t *testing.T) {
	c := New(vmath.V2(3.5, 1.5), vmath.V2(0, 1))
	// Facing +Y, right is (1,0)
	c.StrafeRight(corridor(), 1)
	if c.Position.X <= 3.5 {
		t.Errorf("Expected strafe right to increase X, got %v", c.Position)
	}
	c.StrafeLeft(corridor(), 2)
	if c.Position.X >= 3.5 {
		t.Errorf("Expected strafe left to decrease X, got %v", c.Position)
	}
}

// TestCollisionNonPenetration runs random move sequences in a generated maze
func TestCollisionNonPenetration(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	res := maze.Generate(maze.Config{Width: 21, Height: 21}, rng)
	w := world.New(res.Grid, res.Start)
	c := New(w.StartPosition(), vmath.V2(-1, 0))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(6) {
		case 0:
			c.MoveForward(w, 1.5)
		case 1:
			c.MoveBackward(w, 1.5)
		case 2:
			c.StrafeLeft(w, 1.5)
		case 3:
			c.StrafeRight(w, 1.5)
		case 4:
			c.Rotate(rng.Float64()*6 - 3)
		case 5:
			c.MoveForward(w, rng.Float64()*5)
		}
		if w.IsWallAt(c.Position) {
			t.Fatalf("Step %d: camera inside wall at %v", i, c.Position)
		}
	}
}

func TestRotateIdentity(t *testing.T) {
	c := New(vmath.V2(1.5, 1.5), vmath.V2(-1, 0))
	dir, plane := c.Direction, c.Plane

	c.Rotate(0)
	if !c.Direction.ApproxEqual(dir, eps) || !c.Plane.ApproxEqual(plane, eps) {
		t.Errorf("Rotate(0) changed vectors: %v %v", c.Direction, c.Plane)
	}

	for _, theta := range []float64{0.3, 1.5, -4, 12} {
		c.Rotate(theta)
		c.Rotate(-theta)
		if !c.Direction.ApproxEqual(dir, 1e-9) || !c.Plane.ApproxEqual(plane, 1e-9) {
			t.Errorf("Rotate(%f) round trip drifted: %v %v", theta, c.Direction, c.Plane)
		}
	}
}

// TestRotationKeepsFrame verifies direction stays unit and plane keeps its angle
// and length after many small turns
func TestRotationKeepsFrame(t *testing.T) {
	c := New(vmath.V2(1.5, 1.5), vmath.V2(-1, 0))
	for i := 0; i < 100000; i++ {
		c.RotateAbsolute(0.0173)
	}
	if math.Abs(c.Direction.Magnitude()-1) > 1e-12 {
		t.Errorf("Direction magnitude drifted to %.15f", c.Direction.Magnitude())
	}
	if math.Abs(c.Plane.Magnitude()-parameter.CameraPlaneLength) > 1e-12 {
		t.Errorf("Plane magnitude drifted to %.15f", c.Plane.Magnitude())
	}
	if math.Abs(c.Direction.Dot(c.Plane)) > 1e-6 {
		t.Errorf("Direction and plane lost perpendicularity: dot=%g", c.Direction.Dot(c.Plane))
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(vmath.V2(1.5, 1.5), vmath.V2(-1, 0))
	c.LookUp(1000)
	if c.Pitch != parameter.CameraPitchLimit {
		t.Errorf("Expected pitch clamped to %f, got %f", parameter.CameraPitchLimit, c.Pitch)
	}
	c.LookDown(5000)
	if c.Pitch != -parameter.CameraPitchLimit {
		t.Errorf("Expected pitch clamped to %f, got %f", -parameter.CameraPitchLimit, c.Pitch)
	}
	c.LookUp(2)
	if math.Abs(c.Pitch-(-parameter.CameraPitchLimit+0.1)) > eps {
		t.Errorf("Unexpected pitch %f", c.Pitch)
	}
}

func TestUpdateGravityAndFloor(t *testing.T) {
	c := New(vmath.V2(1.5, 1.5), vmath.V2(-1, 0))
	c.ZVelocity = 0.5

	c.Update(parameter.ReferenceTick)
	if c.ZPosition <= 0 {
		t.Fatalf("Expected to rise, z=%f", c.ZPosition)
	}
	wantV := (0.5 - parameter.CameraGravity) * parameter.CameraDamping
	if math.Abs(c.ZVelocity-wantV) > eps {
		t.Errorf("Expected velocity %f, got %f", wantV, c.ZVelocity)
	}

	for i := 0; i < 1000; i++ {
		c.Update(parameter.ReferenceTick)
		if c.ZPosition < 0 {
			t.Fatalf("Z went below floor: %f", c.ZPosition)
		}
	}
	if c.ZPosition != 0 || c.ZVelocity != 0 {
		t.Errorf("Expected to settle on floor, z=%f v=%f", c.ZPosition, c.ZVelocity)
	}
}

func TestForwardWhilePitchedDrifts(t *testing.T) {
	c := New(vmath.V2(3.5, 1.5), vmath.V2(-1, 0))
	c.Pitch = 0.5
	c.MoveForward(corridor(), 1)
	if c.ZVelocity != parameter.CameraDriftImpulse {
		t.Errorf("Expected drift impulse, got %f", c.ZVelocity)
	}
	c.MoveBackward(corridor(), 1)
	if c.ZVelocity != parameter.CameraDriftImpulse {
		t.Error("Backward move must not add drift")
	}
}

func TestHorizonOffset(t *testing.T) {
	c := New(vmath.V2(1.5, 1.5), vmath.V2(-1, 0))
	if c.HorizonOffset() != 0 {
		t.Errorf("Expected zero offset at rest, got %d", c.HorizonOffset())
	}

	c.Pitch = 0.2
	if got := c.HorizonOffset(); got != 30 {
		t.Errorf("Expected 30 rows for pitch 0.2, got %d", got)
	}

	c.Pitch = 0
	c.ZPosition = 0.1
	if got := c.HorizonOffset(); got != 5 {
		t.Errorf("Expected 5 rows for z 0.1, got %d", got)
	}

	c.ZPosition = 0
	c.BobPhase = math.Pi / 2
	if got := c.HorizonOffset(); got != 1 {
		t.Errorf("Expected 1 row of bob at peak, got %d", got)
	}

	c.ResetView()
	if c.Pitch != 0 || c.ZPosition != 0 || c.ZVelocity != 0 {
		t.Error("ResetView left vertical state")
	}
}
