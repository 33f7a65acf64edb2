package vmath

import (
	"math"
)

// DeltaSentinel replaces 1/|d| when a ray component is ~0, avoids division by zero
const DeltaSentinel = 1e30

// deltaEpsilon is the threshold below which a ray component counts as zero
const deltaEpsilon = 1e-10

// RayTraverser is a zero-allocation DDA iterator stepping a ray cell by cell.
// Unlike a segment traversal it has no target: the caller decides when to stop.
type RayTraverser struct {
	MapX, MapY   int
	StepX, StepY int

	SideDistX, SideDistY   float64
	DeltaDistX, DeltaDistY float64

	// SideY reports whether the last step crossed a horizontal grid line (Y axis)
	SideY bool
	Steps int
}

// NewRayTraverser starts a traversal at origin heading along dir
func NewRayTraverser(origin, dir Vec2) RayTraverser {
	mx, my := origin.Cell()
	t := RayTraverser{
		MapX: mx,
		MapY: my,
	}

	t.DeltaDistX = deltaDist(dir.X)
	t.DeltaDistY = deltaDist(dir.Y)

	if dir.X < 0 {
		t.StepX = -1
		t.SideDistX = (origin.X - float64(mx)) * t.DeltaDistX
	} else {
		t.StepX = 1
		t.SideDistX = (float64(mx) + 1.0 - origin.X) * t.DeltaDistX
	}

	if dir.Y < 0 {
		t.StepY = -1
		t.SideDistY = (origin.Y - float64(my)) * t.DeltaDistY
	} else {
		t.StepY = 1
		t.SideDistY = (float64(my) + 1.0 - origin.Y) * t.DeltaDistY
	}

	return t
}

func deltaDist(d float64) float64 {
	if math.Abs(d) < deltaEpsilon {
		return DeltaSentinel
	}
	return math.Abs(1.0 / d)
}

// Next advances to the neighbouring cell on whichever axis reaches its grid line first
func (t *RayTraverser) Next() {
	if t.SideDistX < t.SideDistY {
		t.SideDistX += t.DeltaDistX
		t.MapX += t.StepX
		t.SideY = false
	} else {
		t.SideDistY += t.DeltaDistY
		t.MapY += t.StepY
		t.SideY = true
	}
	t.Steps++
}

// Pos returns the current grid cell
func (t *RayTraverser) Pos() (int, int) {
	return t.MapX, t.MapY
}

// PerpDistance returns the distance to the last crossed grid line projected on the
// camera axis (fisheye-free), valid after at least one Next
func (t *RayTraverser) PerpDistance() float64 {
	if t.SideY {
		return t.SideDistY - t.DeltaDistY
	}
	return t.SideDistX - t.DeltaDistX
}
