package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/vmath"
	"github.com/lixenwraith/maze3d/world"
)

// Cell types of the carving grid
const (
	Wall    = true
	Passage = false
)

type Point struct {
	X, Y int
}

// Center returns the continuous coordinate of the cell centre
func (p Point) Center() vmath.Vec2 {
	return vmath.V2(float64(p.X)+0.5, float64(p.Y)+0.5)
}

type Config struct {
	Width, Height int
}

// Normalize rounds dimensions down to odd and floors them at MazeMinSize,
// so the interior always holds a passable cell and start sampling terminates
func (c Config) Normalize() Config {
	return Config{
		Width:  ensureOdd(c.Width),
		Height: ensureOdd(c.Height),
	}
}

type Result struct {
	Grid world.Grid

	// Start is the cell-centred spawn position, StartCell its cell
	Start     vmath.Vec2
	StartCell Point

	// Exit is the passable cell farthest from StartCell by path length
	Exit         Point
	SolutionPath []Point
}

// NewRand returns a seeded source, seed 0 uses the clock
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate creates a perfect maze (spanning tree over odd cells) enclosed by a Red border
func Generate(cfg Config, rng *rand.Rand) Result {
	cfg = cfg.Normalize()
	cols, rows := cfg.Width, cfg.Height

	// Column-major like the wall palette math, indexed [x][y]
	grid := make([][]bool, cols)
	for x := range grid {
		grid[x] = make([]bool, rows)
		for y := range grid[x] {
			grid[x][y] = Wall
		}
	}

	recursiveBacktracker(grid, Point{1, 1}, rng)

	startCell := sampleStart(grid, rng)
	g := paint(grid)
	exit, path := Farthest(g, startCell)

	return Result{
		Grid:         g,
		Start:        startCell.Center(),
		StartCell:    startCell,
		Exit:         exit,
		SolutionPath: path,
	}
}

// --- Core Algorithms ---

// carveFrame is one level of the emulated recursion: a cell and its shuffled directions
type carveFrame struct {
	at   Point
	dirs [4]Point
	next int
}

// recursiveBacktracker carves with an explicit stack. Each frame shuffles its four
// 2-step directions once and visits them in order, same traversal as the recursive form.
func recursiveBacktracker(grid [][]bool, start Point, rng *rand.Rand) {
	cols, rows := len(grid), len(grid[0])

	grid[start.X][start.Y] = Passage
	stack := []carveFrame{newFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nx, ny := top.at.X+d.X, top.at.Y+d.Y
		// Leave the outer ring for the border wall
		if nx <= 0 || ny <= 0 || nx >= cols-1 || ny >= rows-1 {
			continue
		}
		if grid[nx][ny] != Wall {
			continue
		}

		grid[top.at.X+d.X/2][top.at.Y+d.Y/2] = Passage
		grid[nx][ny] = Passage
		stack = append(stack, newFrame(Point{nx, ny}, rng))
	}
}

func newFrame(at Point, rng *rand.Rand) carveFrame {
	f := carveFrame{
		at:   at,
		dirs: [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}},
	}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// sampleStart reject-samples interior cells until a passage is found
func sampleStart(grid [][]bool, rng *rand.Rand) Point {
	cols, rows := len(grid), len(grid[0])
	for {
		x := 1 + rng.Intn(cols-2)
		y := 1 + rng.Intn(rows-2)
		if grid[x][y] == Passage {
			return Point{x, y}
		}
	}
}

// paint converts the carved grid to materials: border Red, interior walls tiled
// in MazePaletteBlock squares cycling Green, Blue, White, Yellow
func paint(grid [][]bool) world.Grid {
	cols, rows := len(grid), len(grid[0])
	cells := make([]world.WallType, cols*rows)

	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			if grid[x][y] == Passage {
				continue
			}
			cells[y*cols+x] = wallTypeAt(x, y, cols, rows)
		}
	}
	return world.FromCells(cols, rows, cells)
}

var interiorPalette = [...]world.WallType{world.Green, world.Blue, world.White, world.Yellow}

func wallTypeAt(x, y, cols, rows int) world.WallType {
	if x == 0 || y == 0 || x == cols-1 || y == rows-1 {
		return world.Red
	}
	block := parameter.MazePaletteBlock
	return interiorPalette[(x/block+y/block)%len(interiorPalette)]
}

// --- Helpers ---

func ensureOdd(n int) int {
	if n < parameter.MazeMinSize {
		return parameter.MazeMinSize
	}
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}
