package maze

import (
	"github.com/lixenwraith/maze3d/world"
)

var orthogonal = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Distances runs a BFS over passable cells from start. Unreachable and wall
// cells hold -1. The slice is row-major (y*width+x).
func Distances(g world.Grid, start Point) []int {
	w, h := g.Width(), g.Height()
	dist := make([]int, w*h)
	for i := range dist {
		dist[i] = -1
	}
	if g.IsWall(start.X, start.Y) {
		return dist
	}

	queue := []Point{start}
	dist[start.Y*w+start.X] = 0

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		d := dist[curr.Y*w+curr.X]

		for _, o := range orthogonal {
			nx, ny := curr.X+o.X, curr.Y+o.Y
			if g.IsWall(nx, ny) {
				continue
			}
			idx := ny*w + nx
			if dist[idx] >= 0 {
				continue
			}
			dist[idx] = d + 1
			queue = append(queue, Point{nx, ny})
		}
	}
	return dist
}

// Solve returns the shortest path start..end inclusive, nil if unreachable
func Solve(g world.Grid, start, end Point) []Point {
	if g.IsWall(start.X, start.Y) || g.IsWall(end.X, end.Y) {
		return nil
	}

	w := g.Width()
	cameFrom := make(map[Point]Point)
	visited := make([]bool, w*g.Height())
	visited[start.Y*w+start.X] = true
	queue := []Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			// Reconstruct Path
			path := []Point{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, o := range orthogonal {
			next := Point{curr.X + o.X, curr.Y + o.Y}
			if g.IsWall(next.X, next.Y) || visited[next.Y*w+next.X] {
				continue
			}
			visited[next.Y*w+next.X] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

// Farthest returns the passable cell with the greatest BFS distance from start
// and the path to it
func Farthest(g world.Grid, start Point) (Point, []Point) {
	dist := Distances(g, start)

	best, bestD := start, 0
	w := g.Width()
	for i, d := range dist {
		if d > bestD {
			bestD = d
			best = Point{i % w, i / w}
		}
	}
	return best, Solve(g, start, best)
}
