package parameter

import (
	"math"

	"github.com/lixenwraith/maze3d/vmath"
)

// Camera pose and motion
const (
	// CameraMoveSpeed is world units per move call before the caller's scale
	CameraMoveSpeed = 0.15

	// CameraRotSpeed multiplies rotate() angles
	CameraRotSpeed = 0.08

	// CameraPlaneLength is the view-plane magnitude, ~66° horizontal FOV with a unit direction
	CameraPlaneLength = 0.66

	// CameraPitchLimit clamps pitch to ±60°
	CameraPitchLimit = math.Pi / 3

	// CameraPitchStep is the pitch change per unit of look delta
	CameraPitchStep = 0.05

	// CameraBobStep advances view-bob phase per successful move
	CameraBobStep = 0.2

	// CameraBobAmplitude and CameraBobClamp shape sin(bobPhase)
	CameraBobAmplitude = 0.08
	CameraBobClamp     = 0.12

	// CameraDriftPitch is the pitch above which walking forward perturbs vertical velocity
	CameraDriftPitch = 0.1

	// CameraDriftImpulse is added to vertical velocity on each forward move while pitched
	CameraDriftImpulse = 0.05
)

// Vertical integration, values are per reference tick
const (
	CameraGravity = 0.02
	CameraDamping = 0.95
)

// Horizon offset row multipliers
const (
	HorizonPitchRows = 150.0
	HorizonBobRows   = 20.0
	HorizonJumpRows  = 50.0
)

// Starting heading for every session and regeneration
var CameraStartDirection = vmath.Vec2{X: -1, Y: 0}
