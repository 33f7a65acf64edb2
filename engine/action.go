package engine

import (
	"github.com/lixenwraith/maze3d/entity"
)

// Action is the closed set of discrete commands the presentation layer issues
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionRotateLeft
	ActionRotateRight
	ActionResetView
	ActionRegenerateMaze
	actionCount
)

var actionNames = [actionCount]string{
	"move_forward",
	"move_backward",
	"strafe_left",
	"strafe_right",
	"rotate_left",
	"rotate_right",
	"reset_view",
	"regenerate_maze",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// EventKind classifies session events
type EventKind int

const (
	EventItemCollected EventKind = iota
	EventWallBump
	EventRegenerated
)

// Event is queued by the session and drained by the shell once per frame
type Event struct {
	Kind EventKind
	// Item is set for EventItemCollected
	Item entity.ItemType
}

// Stats are the player counters shown in the HUD
type Stats struct {
	Health    float64
	Steps     int
	Coins     int
	Keys      int
	ExitFound bool
}
