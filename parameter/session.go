package parameter

import (
	"time"
)

// Simulation timing
const (
	// ReferenceTick is the step the per-tick constants are tuned for (1/30 s)
	ReferenceTick = 1.0 / 30.0

	// DefaultFPS is the default frame rate of the main loop
	DefaultFPS = 60

	// MaxFrameDelta caps dt after stalls (debugger, suspended terminal)
	MaxFrameDelta = 100 * time.Millisecond
)

// Action magnitudes used by the session
const (
	// ActionMoveScale is the scale passed to camera move calls
	ActionMoveScale = 1.5

	// ActionRotateAngle is the angle passed to camera.Rotate for RotateLeft/Right
	ActionRotateAngle = 1.5

	// MouseTurnPerCell is the absolute rotation per cell of horizontal mouse drag
	MouseTurnPerCell = 0.01

	// MouseLookPerCell is the look delta per cell of vertical mouse drag
	MouseLookPerCell = 1.0
)

// Player stats
const (
	HealthMax     = 100.0
	HealthStart   = 100.0
	HealthPickup  = 20.0
	CollectRadius = 0.6
)
