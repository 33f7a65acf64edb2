package display

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/render"
)

// Screen owns the tcell screen and its event pump
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once

	styles map[render.RGB]tcell.Style
}

// NewTerminal opens the controlling terminal
func NewTerminal() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(s)
}

// New initializes s with mouse reporting and starts polling its events.
// Tests pass a tcell.NewSimulationScreen.
func New(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse(tcell.MouseDragEvents)
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	s.Clear()

	d := &Screen{
		screen: s,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
		styles: make(map[render.RGB]tcell.Style),
	}
	go d.poll()
	return d, nil
}

func (d *Screen) poll() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.quit:
			return
		}
	}
}

// Events delivers terminal events until Fini
func (d *Screen) Events() <-chan tcell.Event {
	return d.events
}

func (d *Screen) Size() (int, int) {
	return d.screen.Size()
}

// ViewSize is the area available to the 3D view for the current terminal size
func (d *Screen) ViewSize() (int, int) {
	v := Layout(d.screen.Size())
	return v.W, v.H
}

// Sync clears and repaints the whole terminal, used after resize
func (d *Screen) Sync() {
	d.screen.Clear()
	d.screen.Sync()
}

// Fini restores the terminal. Safe to call more than once.
func (d *Screen) Fini() {
	d.once.Do(func() {
		close(d.quit)
		d.screen.Fini()
	})
}

// Draw composites frame into the view area, then the border, HUD and legend
func (d *Screen) Draw(frame *render.Buffer, hud HUD) {
	w, h := d.screen.Size()
	view := Layout(w, h)

	if frame != nil {
		rows := min(frame.Height(), view.H)
		for y := 0; y < rows; y++ {
			row := frame.Row(y)
			cols := min(len(row), view.W)
			for x := 0; x < cols; x++ {
				c := row[x]
				d.screen.SetContent(view.X+x, view.Y+y, c.Rune, nil, d.style(c.Fg))
			}
		}
	}

	frameStyle := d.style(borderColor)
	drawBorder(d.screen, w, h, frameStyle)
	if h >= hudRows {
		drawLine(d.screen, h-2, w, hud.String(), d.style(hudColor))
	}
	if h >= 1 {
		drawLine(d.screen, h-1, w, legend, d.style(legendColor))
	}

	d.screen.Show()
}

// style caches one tcell style per distinct color; frames reuse a small palette
func (d *Screen) style(c render.RGB) tcell.Style {
	if s, ok := d.styles[c]; ok {
		return s
	}
	s := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack)
	d.styles[c] = s
	return s
}
