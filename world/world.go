// Package world holds the finalized maze grid. A World is immutable after
// construction; regeneration replaces it wholesale.
package world

import (
	"github.com/lixenwraith/maze3d/vmath"
)

// World owns a wall grid and the spawn point chosen at generation time
type World struct {
	grid  Grid
	start vmath.Vec2
}

// New takes ownership of grid, callers must not write to it afterwards
func New(grid Grid, start vmath.Vec2) *World {
	return &World{grid: grid, start: start}
}

func (w *World) Width() int  { return w.grid.width }
func (w *World) Height() int { return w.grid.height }

// Get returns the cell material, out-of-range reads as a wall
func (w *World) Get(x, y int) WallType {
	return w.grid.At(x, y)
}

// IsWall is Get(x, y) != Empty
func (w *World) IsWall(x, y int) bool {
	return w.grid.IsWall(x, y)
}

// IsWallAt tests the cell containing a continuous world position
func (w *World) IsWallAt(p vmath.Vec2) bool {
	x, y := p.Cell()
	return w.grid.IsWall(x, y)
}

// StartPosition returns the cell-centred spawn point
func (w *World) StartPosition() vmath.Vec2 {
	return w.start
}

// Grid exposes the grid for direct lookups (NPC movement)
func (w *World) Grid() Grid {
	return w.grid
}
