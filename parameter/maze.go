package parameter

// Maze dimensions
const (
	// MazeDefaultSize is the default width and height
	MazeDefaultSize = 51

	// MazeMinSize is the smallest grid whose interior can be carved
	MazeMinSize = 7

	// MazePaletteBlock is the side of the square wall-color tiles
	MazePaletteBlock = 5

	// SpawnMargin keeps spawned entities away from the outer wall on large mazes
	SpawnMargin = 5
)
