package entity

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
	"github.com/lixenwraith/maze3d/world"
)

type NPCType uint8

const (
	NPCWanderer NPCType = iota
	NPCGuard
)

// Speed returns distance per reference tick
func (t NPCType) Speed() float64 {
	if t == NPCGuard {
		return parameter.NPCGuardSpeed
	}
	return parameter.NPCWandererSpeed
}

func (t NPCType) Icon() rune {
	if t == NPCGuard {
		return '☻'
	}
	return '☺'
}

func (t NPCType) String() string {
	if t == NPCGuard {
		return "guard"
	}
	return "wanderer"
}

// NPC wanders the maze, bouncing off walls one axis at a time
type NPC struct {
	Position       vmath.Vec2
	Direction      vmath.Vec2
	Type           NPCType
	AnimationPhase float64
}

// NewNPC places an NPC facing a uniformly random heading
func NewNPC(pos vmath.Vec2, t NPCType, rng *rand.Rand) *NPC {
	return &NPC{
		Position:  pos,
		Direction: headingFromAngle(randomAngle(rng)),
		Type:      t,
	}
}

// Steerer picks a new heading each tick in place of the random re-heading rule.
// roll is this tick's 0..99 draw and angle a fresh uniform angle, both from the
// session rng. A zero vector keeps the current heading.
type Steerer interface {
	Steer(n *NPC, roll int, angle float64) (vmath.Vec2, error)
}

// Step advances animation and position without any random re-heading.
// Each axis moves independently; a blocked axis reflects that direction component.
func (n *NPC) Step(g world.Grid, dt float64) {
	n.AnimationPhase += dt * parameter.NPCAnimationRate

	speed := n.Type.Speed() * dt / parameter.ReferenceTick
	target := n.Position.Add(n.Direction.Scale(speed))

	_, cy := n.Position.Cell()
	tx, ty := target.Cell()
	if !g.IsWall(tx, cy) {
		n.Position.X = target.X
	} else {
		n.Direction.X = -n.Direction.X
	}

	cx, _ := n.Position.Cell()
	if !g.IsWall(cx, ty) {
		n.Position.Y = target.Y
	} else {
		n.Direction.Y = -n.Direction.Y
	}
}

// Update is Step followed by re-heading: the steerer decides when set,
// otherwise a NPCTurnChance percent roll picks a new random heading.
// A steerer error applies the built-in rule and is returned to the caller.
func (n *NPC) Update(g world.Grid, dt float64, rng *rand.Rand, steer Steerer) error {
	n.Step(g, dt)

	roll := rng.Intn(100)
	angle := randomAngle(rng)

	if steer != nil {
		dir, err := steer.Steer(n, roll, angle)
		if err == nil {
			if d := dir.Normalize(); d != (vmath.Vec2{}) {
				n.Direction = d
			}
			return nil
		}
		n.reheading(roll, angle)
		return err
	}

	n.reheading(roll, angle)
	return nil
}

func (n *NPC) reheading(roll int, angle float64) {
	if roll < parameter.NPCTurnChance {
		n.Direction = headingFromAngle(angle)
	}
}

func randomAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

func headingFromAngle(a float64) vmath.Vec2 {
	sin, cos := math.Sincos(a)
	return vmath.V2(cos, sin)
}
