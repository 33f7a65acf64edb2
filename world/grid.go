package world

// Grid is a read-only row-major width×height buffer of WallType (index = y*width+x)
type Grid struct {
	cells  []WallType
	width  int
	height int
}

// FromCells wraps a row-major cell slice, taking ownership of it.
// Panics if len(cells) != width*height.
func FromCells(width, height int, cells []WallType) Grid {
	if len(cells) != width*height {
		panic("world: cell count does not match dimensions")
	}
	return Grid{cells: cells, width: width, height: height}
}

// FromRows builds a grid from text rows: ' ' or '.' is Empty, 'R','G','B','W','Y'
// select a material, any other rune is Red. Rows shorter than the first are padded with Red.
func FromRows(rows ...string) Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len([]rune(rows[0]))
	}
	cells := make([]WallType, width*height)
	for y, row := range rows {
		r := []rune(row)
		for x := 0; x < width; x++ {
			if x >= len(r) {
				cells[y*width+x] = Red
				continue
			}
			cells[y*width+x] = wallFromRune(r[x])
		}
	}
	return Grid{cells: cells, width: width, height: height}
}

func wallFromRune(r rune) WallType {
	switch r {
	case ' ', '.':
		return Empty
	case 'G':
		return Green
	case 'B':
		return Blue
	case 'W':
		return White
	case 'Y':
		return Yellow
	default:
		return Red
	}
}

func (g Grid) Width() int  { return g.width }
func (g Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a stored cell
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell, out-of-range coordinates read as BoundaryWall
func (g Grid) At(x, y int) WallType {
	if !g.InBounds(x, y) {
		return BoundaryWall
	}
	return g.cells[y*g.width+x]
}

// IsWall is At(x, y) != Empty
func (g Grid) IsWall(x, y int) bool {
	return g.At(x, y) != Empty
}

// CountEmpty returns the number of passable cells
func (g Grid) CountEmpty() int {
	n := 0
	for _, c := range g.cells {
		if c == Empty {
			n++
		}
	}
	return n
}
