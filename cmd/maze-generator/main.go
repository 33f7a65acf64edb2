package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/world"
)

// wallGlyphs distinguishes materials in plain text
var wallGlyphs = map[world.WallType]rune{
	world.Red:    '█',
	world.Green:  '▓',
	world.Blue:   '▒',
	world.White:  '░',
	world.Yellow: '#',
}

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== MAZE3D MAZE GENERATOR ===")

		w := getInt(reader, fmt.Sprintf("Width [odd, min %d] (default 35): ", parameter.MazeMinSize), 35)
		h := getInt(reader, fmt.Sprintf("Height [odd, min %d] (default 19): ", parameter.MazeMinSize), 19)
		seed := getInt64(reader, "Seed [0 = clock] (default 0): ", 0)

		cfg := maze.Config{Width: w, Height: h}.Normalize()

		fmt.Println("\nGenerating...")
		startT := time.Now()
		res := maze.Generate(cfg, maze.NewRand(seed))
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid Dimensions: %dx%d, passable cells: %d\n", res.Grid.Width(), res.Grid.Height(), res.Grid.CountEmpty())
		fmt.Printf("Start: %d,%d  Exit: %d,%d\n", res.StartCell.X, res.StartCell.Y, res.Exit.X, res.Exit.Y)

		if res.SolutionPath != nil {
			fmt.Printf("Solution Path Length: %d steps\n", len(res.SolutionPath))
		} else {
			fmt.Println("Status: Unsolvable (Isolated Start/End)")
		}

		draw(os.Stdout, res)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(out io.Writer, res maze.Result) {
	pathMap := make(map[maze.Point]bool, len(res.SolutionPath))
	for _, p := range res.SolutionPath {
		pathMap[p] = true
	}

	var sb strings.Builder
	for y := 0; y < res.Grid.Height(); y++ {
		for x := 0; x < res.Grid.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			wall := res.Grid.At(x, y)

			switch {
			case p == res.StartCell:
				sb.WriteRune('S')
			case p == res.Exit:
				sb.WriteRune('E')
			case wall.IsWall():
				sb.WriteRune(wallGlyphs[wall])
			case pathMap[p]:
				sb.WriteRune('•')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	io.WriteString(out, sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	return int(getInt64(r, prompt, int64(def)))
}

func getInt64(r *bufio.Reader, prompt string, def int64) int64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}
