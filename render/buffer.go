package render

// Cell is one character position of the output raster
type Cell struct {
	Rune rune
	Fg   RGB
}

var emptyCell = Cell{Rune: ' ', Fg: RGBBlack}

// Buffer is a row-major character+color grid, resized lazily to the requested area
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out-of-range writes are dropped
func (b *Buffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg}
}

// At returns the cell at (x, y), blank when out of range
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// Row returns the cells of row y, aliasing the buffer
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// Text returns the runes of row y as a string, for tests and dumps
func (b *Buffer) Text(y int) string {
	row := b.Row(y)
	rs := make([]rune, len(row))
	for i, c := range row {
		rs[i] = c.Rune
	}
	return string(rs)
}
