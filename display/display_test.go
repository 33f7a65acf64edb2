package display

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/engine"
	"github.com/lixenwraith/maze3d/render"
)

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"w forward", tcell.KeyRune, 'w', action(engine.ActionMoveForward)},
		{"upper W forward", tcell.KeyRune, 'W', action(engine.ActionMoveForward)},
		{"up arrow forward", tcell.KeyUp, 0, action(engine.ActionMoveForward)},
		{"s back", tcell.KeyRune, 's', action(engine.ActionMoveBackward)},
		{"down arrow back", tcell.KeyDown, 0, action(engine.ActionMoveBackward)},
		{"a strafe", tcell.KeyRune, 'a', action(engine.ActionStrafeLeft)},
		{"d strafe", tcell.KeyRune, 'd', action(engine.ActionStrafeRight)},
		{"q turn", tcell.KeyRune, 'q', action(engine.ActionRotateLeft)},
		{"left arrow turn", tcell.KeyLeft, 0, action(engine.ActionRotateLeft)},
		{"e turn", tcell.KeyRune, 'e', action(engine.ActionRotateRight)},
		{"right arrow turn", tcell.KeyRight, 0, action(engine.ActionRotateRight)},
		{"r reset", tcell.KeyRune, 'r', action(engine.ActionResetView)},
		{"n regenerate", tcell.KeyRune, 'n', action(engine.ActionRegenerateMaze)},
		{"m mono", tcell.KeyRune, 'm', Command{Kind: CommandToggleMonochrome}},
		{"t sprites", tcell.KeyRune, 't', Command{Kind: CommandToggleSprites}},
		{"pgup look", tcell.KeyPgUp, 0, Command{Kind: CommandLook, Amount: 1}},
		{"pgdn look", tcell.KeyPgDn, 0, Command{Kind: CommandLook, Amount: -1}},
		{"esc quit", tcell.KeyEscape, 0, Command{Kind: CommandQuit}},
		{"ctrl-c quit", tcell.KeyCtrlC, 0, Command{Kind: CommandQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCommand(tt.key, tt.r)
			if !ok {
				t.Fatal("Expected a binding")
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestUnboundKeys(t *testing.T) {
	if _, ok := KeyCommand(tcell.KeyRune, 'z'); ok {
		t.Error("Expected 'z' unbound")
	}
	if _, ok := KeyCommand(tcell.KeyHome, 0); ok {
		t.Error("Expected Home unbound")
	}
}

func TestMouseDrag(t *testing.T) {
	h := NewInputHandler()

	if cmds := h.Drag(10, 10, true); len(cmds) != 0 {
		t.Errorf("Press must only anchor the drag, got %+v", cmds)
	}

	cmds := h.Drag(15, 8, true)
	if len(cmds) != 2 {
		t.Fatalf("Expected turn and look, got %+v", cmds)
	}
	if cmds[0].Kind != CommandTurn || math.Abs(cmds[0].Amount-0.05) > 1e-12 {
		t.Errorf("Expected turn 0.05, got %+v", cmds[0])
	}
	if cmds[1].Kind != CommandLook || cmds[1].Amount != 2 {
		t.Errorf("Expected look up 2, got %+v", cmds[1])
	}

	if cmds := h.Drag(15, 8, true); len(cmds) != 0 {
		t.Errorf("Expected no motion, got %+v", cmds)
	}

	h.Drag(15, 8, false)
	if cmds := h.Drag(40, 40, true); len(cmds) != 0 {
		t.Errorf("Release must end the drag, got %+v", cmds)
	}
}

func TestLayout(t *testing.T) {
	v := Layout(80, 24)
	if v != (Rect{X: 1, Y: 1, W: 78, H: 20}) {
		t.Errorf("Unexpected view %+v", v)
	}
	if v := Layout(2, 3); v.W != 0 || v.H != 0 {
		t.Errorf("Expected empty view for tiny terminal, got %+v", v)
	}
}

func TestGauge(t *testing.T) {
	tests := []struct {
		health float64
		want   string
	}{
		{100, "██████████"},
		{50, "█████░░░░░"},
		{0, "░░░░░░░░░░"},
		{-5, "░░░░░░░░░░"},
		{150, "██████████"},
	}
	for _, tt := range tests {
		if got := Gauge(tt.health, 100, 10); got != tt.want {
			t.Errorf("Gauge(%v): expected %q, got %q", tt.health, tt.want, got)
		}
	}
}

func TestHUDString(t *testing.T) {
	h := HUD{
		Stats:        engine.Stats{Health: 80, Steps: 12, Coins: 3, Keys: 1},
		CoinsLeft:    5,
		ExitDistance: 7.25,
		FPS:          60,
		Monochrome:   true,
	}
	s := h.String()
	for _, want := range []string{"HP ████████░░  80", "◆ 3 (5 left)", "⚷ 1", "steps 12", "exit 7.2", "60 fps", "MONO NOSPR"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, s)
		}
	}

	h.Stats.ExitFound = true
	if !strings.Contains(h.String(), "EXIT FOUND") {
		t.Error("Expected exit found marker")
	}
}

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d, err := New(sim)
	if err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(d.Fini)
	return d, sim
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawComposite(t *testing.T) {
	d, sim := newSimScreen(t, 30, 10)

	vw, vh := d.ViewSize()
	if vw != 28 || vh != 6 {
		t.Fatalf("Expected view 28x6, got %dx%d", vw, vh)
	}

	frame := render.NewBuffer(vw, vh)
	frame.Set(0, 0, '#', render.RGBWhite)
	frame.Set(vw-1, vh-1, '%', render.RGBWhite)
	d.Draw(frame, HUD{Stats: engine.Stats{Health: 100}, Sprites: true})

	checks := []struct {
		x, y int
		want rune
	}{
		{0, 0, '╔'},
		{29, 0, '╗'},
		{0, 7, '╚'},
		{29, 7, '╝'},
		{5, 7, '═'},
		{0, 3, '║'},
		{1, 1, '#'},
		{28, 6, '%'},
		{1, 8, 'H'},
	}
	for _, c := range checks {
		if got := runeAt(sim, c.x, c.y); got != c.want {
			t.Errorf("At (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}

	var top []rune
	for x := 0; x < 30; x++ {
		top = append(top, runeAt(sim, x, 0))
	}
	if !strings.Contains(string(top), "3D VIEW") {
		t.Errorf("Expected title in top border, got %q", string(top))
	}

	var legendRow []rune
	for x := 0; x < 30; x++ {
		legendRow = append(legendRow, runeAt(sim, x, 9))
	}
	if !strings.HasPrefix(string(legendRow), "W/S move") {
		t.Errorf("Expected legend on last row, got %q", string(legendRow))
	}
}

func TestDrawTinyTerminal(t *testing.T) {
	d, _ := newSimScreen(t, 3, 2)
	d.Draw(nil, HUD{})
	if w, h := d.ViewSize(); w != 0 || h != 0 {
		t.Errorf("Expected empty view, got %dx%d", w, h)
	}
}

func TestFiniIdempotent(t *testing.T) {
	d, _ := newSimScreen(t, 20, 10)
	d.Fini()
	d.Fini()

	select {
	case <-time.After(100 * time.Millisecond):
	case ev, ok := <-d.Events():
		if ok && ev != nil {
			if _, resize := ev.(*tcell.EventResize); !resize {
				t.Errorf("Unexpected event after Fini: %T", ev)
			}
		}
	}
}
