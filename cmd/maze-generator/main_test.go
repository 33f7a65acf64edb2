package main

import (
	"bufio"
	"math/rand"
	"strings"
	"testing"

	"github.com/lixenwraith/maze3d/maze"
)

func TestDrawMarksStartExitAndPath(t *testing.T) {
	res := maze.Generate(maze.Config{Width: 15, Height: 11}, rand.New(rand.NewSource(9)))

	var sb strings.Builder
	draw(&sb, res)
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")

	if len(lines) != 11 {
		t.Fatalf("Expected 11 rows, got %d", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 15 {
			t.Errorf("Row %d: expected 15 cells, got %d", i, n)
		}
	}

	out := sb.String()
	if strings.Count(out, "S") != 1 || strings.Count(out, "E") != 1 {
		t.Errorf("Expected one start and one exit marker")
	}
	// Path includes both endpoints, which show as S and E
	if got, want := strings.Count(out, "•"), len(res.SolutionPath)-2; got != want {
		t.Errorf("Expected %d path cells, got %d", want, got)
	}
	if []rune(lines[0])[0] != '█' {
		t.Errorf("Expected red border glyph, got %q", []rune(lines[0])[0])
	}
}

func TestGetInt64(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"42\n", 42},
		{"\n", 7},
		{"abc\n", 7},
		{"-3\n", -3},
	}
	for _, tt := range tests {
		r := bufio.NewReader(strings.NewReader(tt.in))
		if got := getInt64(r, "", 7); got != tt.want {
			t.Errorf("Input %q: expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
