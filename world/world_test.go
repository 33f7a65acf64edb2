package world

import (
	"testing"

	"github.com/lixenwraith/maze3d/vmath"
)

func TestGetOutOfBoundsIsWall(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 5}, {7, 7}, {51, 51}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		cells := make([]WallType, w*h) // all Empty
		wd := New(FromCells(w, h, cells), vmath.V2(0.5, 0.5))

		probes := [][2]int{{-1, 0}, {0, -1}, {w, 0}, {0, h}, {-100, -100}, {w + 10, h + 10}}
		for _, p := range probes {
			if got := wd.Get(p[0], p[1]); got == Empty {
				t.Errorf("%dx%d: expected wall at (%d,%d), got Empty", w, h, p[0], p[1])
			}
			if !wd.IsWall(p[0], p[1]) {
				t.Errorf("%dx%d: expected IsWall at (%d,%d)", w, h, p[0], p[1])
			}
		}
		if wd.IsWall(0, 0) {
			t.Errorf("%dx%d: expected (0,0) passable", w, h)
		}
	}
}

func TestFromRows(t *testing.T) {
	g := FromRows(
		"RGB",
		"W Y",
		"#.",
	)
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("Expected 3x3, got %dx%d", g.Width(), g.Height())
	}

	expected := []struct {
		x, y int
		w    WallType
	}{
		{0, 0, Red}, {1, 0, Green}, {2, 0, Blue},
		{0, 1, White}, {1, 1, Empty}, {2, 1, Yellow},
		{0, 2, Red}, {1, 2, Empty}, {2, 2, Red},
	}
	for _, e := range expected {
		if got := g.At(e.x, e.y); got != e.w {
			t.Errorf("At(%d,%d): expected %v, got %v", e.x, e.y, e.w, got)
		}
	}
	if g.CountEmpty() != 2 {
		t.Errorf("Expected 2 empty cells, got %d", g.CountEmpty())
	}
}

func TestIsWallAt(t *testing.T) {
	wd := New(FromRows(
		"###",
		"# #",
		"###",
	), vmath.V2(1.5, 1.5))

	if wd.IsWallAt(vmath.V2(1.5, 1.5)) {
		t.Error("Expected centre cell passable")
	}
	if !wd.IsWallAt(vmath.V2(0.99, 1.5)) {
		t.Error("Expected left cell wall")
	}
	if wd.StartPosition() != vmath.V2(1.5, 1.5) {
		t.Errorf("Unexpected start position %v", wd.StartPosition())
	}
}

func TestFromCellsPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on mismatched cell count")
		}
	}()
	FromCells(3, 3, make([]WallType, 8))
}

func TestWallTypeString(t *testing.T) {
	if Yellow.String() != "yellow" || Empty.String() != "empty" {
		t.Error("Unexpected WallType names")
	}
	if WallType(99).String() != "unknown" {
		t.Error("Expected unknown for out-of-range WallType")
	}
}
