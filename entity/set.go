package entity

import (
	"math/rand"

	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
	"github.com/lixenwraith/maze3d/world"
)

// Counts sets how many of each entity Spawn places
type Counts struct {
	Coins     int
	Keys      int
	Health    int
	Exit      bool
	Wanderers int
	Guards    int
}

func DefaultCounts() Counts {
	return Counts{
		Coins:     parameter.DefaultCoins,
		Keys:      parameter.DefaultKeys,
		Health:    parameter.DefaultHealth,
		Exit:      true,
		Wanderers: parameter.DefaultWanderers,
		Guards:    parameter.DefaultGuards,
	}
}

// Set holds every item and NPC of one maze. It is rebuilt, never patched, on regeneration.
type Set struct {
	Items []Item
	NPCs  []*NPC
}

// Spawn places entities on passable cell centres. Cells are drawn uniformly from
// the region SpawnMargin away from the border, or from the whole interior when
// that region has no passage. The exit goes to the cell farthest from start.
func Spawn(g world.Grid, start maze.Point, counts Counts, rng *rand.Rand) *Set {
	s := &Set{}

	cells := spawnCells(g, parameter.SpawnMargin)
	if len(cells) == 0 {
		cells = spawnCells(g, 1)
	}
	if len(cells) == 0 {
		return s
	}
	pick := func() vmath.Vec2 {
		return cells[rng.Intn(len(cells))].Center()
	}

	for i := 0; i < counts.Coins; i++ {
		s.Items = append(s.Items, NewItem(pick(), ItemCoin))
	}
	for i := 0; i < counts.Keys; i++ {
		s.Items = append(s.Items, NewItem(pick(), ItemKey))
	}
	for i := 0; i < counts.Health; i++ {
		s.Items = append(s.Items, NewItem(pick(), ItemHealth))
	}
	if counts.Exit {
		exit, _ := maze.Farthest(g, start)
		s.Items = append(s.Items, NewItem(exit.Center(), ItemExit))
	}

	for i := 0; i < counts.Wanderers; i++ {
		s.NPCs = append(s.NPCs, NewNPC(pick(), NPCWanderer, rng))
	}
	for i := 0; i < counts.Guards; i++ {
		s.NPCs = append(s.NPCs, NewNPC(pick(), NPCGuard, rng))
	}
	return s
}

func spawnCells(g world.Grid, margin int) []maze.Point {
	var cells []maze.Point
	for y := margin; y < g.Height()-margin; y++ {
		for x := margin; x < g.Width()-margin; x++ {
			if !g.IsWall(x, y) {
				cells = append(cells, maze.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Collect marks every uncollected item within CollectRadius of pos and
// returns the types picked up, in spawn order
func (s *Set) Collect(pos vmath.Vec2) []ItemType {
	var got []ItemType
	for i := range s.Items {
		it := &s.Items[i]
		if it.Collected || it.DistanceTo(pos) >= parameter.CollectRadius {
			continue
		}
		it.Collected = true
		got = append(got, it.Type)
	}
	return got
}

// Remaining counts uncollected items of type t
func (s *Set) Remaining(t ItemType) int {
	n := 0
	for _, it := range s.Items {
		if it.Type == t && !it.Collected {
			n++
		}
	}
	return n
}

// Update steps every NPC. All NPCs advance even when the steerer fails;
// the first steering error is returned.
func (s *Set) Update(g world.Grid, dt float64, rng *rand.Rand, steer Steerer) error {
	var first error
	for _, n := range s.NPCs {
		if err := n.Update(g, dt, rng, steer); err != nil && first == nil {
			first = err
		}
	}
	return first
}
