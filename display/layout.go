package display

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/engine"
	"github.com/lixenwraith/maze3d/entity"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/render"
)

const (
	title = " 3D VIEW "

	// hudRows are the rows below the frame: HUD and legend
	hudRows = 2

	gaugeWidth = 10
)

const legend = "W/S move  A/D strafe  Q/E turn  PgUp/PgDn look  R reset  N new maze  M mono  T sprites  Esc quit"

var (
	borderColor = render.RGB{R: 120, G: 140, B: 200}
	hudColor    = render.RGB{R: 230, G: 230, B: 230}
	legendColor = render.RGB{R: 130, G: 130, B: 130}
)

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Layout returns the 3D view area inside the border. The frame spans every
// row above the HUD; the view is empty when the terminal is too small.
func Layout(width, height int) Rect {
	w := width - 2
	h := height - hudRows - 2
	if w <= 0 || h <= 0 {
		return Rect{X: 1, Y: 1}
	}
	return Rect{X: 1, Y: 1, W: w, H: h}
}

// HUD is the status line content
type HUD struct {
	Stats        engine.Stats
	CoinsLeft    int
	ExitDistance float64
	FPS          float64
	Monochrome   bool
	Sprites      bool
}

// Gauge renders health as a fixed-width bar
func Gauge(health, limit float64, width int) string {
	filled := 0
	if limit > 0 {
		filled = int(health / limit * float64(width))
	}
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (h HUD) String() string {
	mode := "COLOR"
	if h.Monochrome {
		mode = "MONO"
	}
	spr := "SPR"
	if !h.Sprites {
		spr = "NOSPR"
	}
	exit := fmt.Sprintf("exit %.1f", h.ExitDistance)
	if h.Stats.ExitFound {
		exit = "EXIT FOUND"
	}
	return fmt.Sprintf(" HP %s %3.0f  %c %d (%d left)  %c %d  steps %d  %s  %3.0f fps  %s %s",
		Gauge(h.Stats.Health, parameter.HealthMax, gaugeWidth), h.Stats.Health,
		entity.ItemCoin.Icon(), h.Stats.Coins, h.CoinsLeft,
		entity.ItemKey.Icon(), h.Stats.Keys,
		h.Stats.Steps, exit, h.FPS, mode, spr,
	)
}

// drawBorder draws the double-line frame above the HUD rows with the title
// centred on its top edge
func drawBorder(s tcell.Screen, width, height int, style tcell.Style) {
	bottom := height - hudRows - 1
	right := width - 1
	if right < 1 || bottom < 1 {
		return
	}

	for x := 1; x < right; x++ {
		s.SetContent(x, 0, '═', nil, style)
		s.SetContent(x, bottom, '═', nil, style)
	}
	for y := 1; y < bottom; y++ {
		s.SetContent(0, y, '║', nil, style)
		s.SetContent(right, y, '║', nil, style)
	}
	s.SetContent(0, 0, '╔', nil, style)
	s.SetContent(right, 0, '╗', nil, style)
	s.SetContent(0, bottom, '╚', nil, style)
	s.SetContent(right, bottom, '╝', nil, style)

	if t := []rune(title); len(t) < width-2 {
		start := (width - len(t)) / 2
		for i, r := range t {
			s.SetContent(start+i, 0, r, nil, style)
		}
	}
}

// drawLine writes text on row y, clipped to width and padded with blanks
func drawLine(s tcell.Screen, y, width int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}
