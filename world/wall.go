package world

// WallType is the material of a grid cell, Empty is the only passable value
type WallType uint8

const (
	Empty WallType = iota
	Red
	Green
	Blue
	White
	Yellow
	wallTypeCount
)

// WallTypeCount is the number of WallType values, for per-variant lookup tables
const WallTypeCount = int(wallTypeCount)

// BoundaryWall is returned for out-of-range queries
const BoundaryWall = Red

var wallNames = [wallTypeCount]string{"empty", "red", "green", "blue", "white", "yellow"}

func (w WallType) String() string {
	if int(w) < len(wallNames) {
		return wallNames[w]
	}
	return "unknown"
}

// IsWall reports whether the material blocks movement and rays
func (w WallType) IsWall() bool {
	return w != Empty
}
