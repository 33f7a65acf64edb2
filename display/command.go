// Package display is the terminal shell around the engine: it owns the tcell
// screen, decodes keys and mouse drags into commands, and composites the
// rendered frame with its border, HUD and legend.
package display

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/maze3d/engine"
	"github.com/lixenwraith/maze3d/parameter"
)

// CommandKind classifies decoded input
type CommandKind int

const (
	CommandAction CommandKind = iota
	CommandTurn
	CommandLook
	CommandToggleMonochrome
	CommandToggleSprites
	CommandResize
	CommandQuit
)

// Command is one unit of user intent. Action is set for CommandAction,
// Amount for CommandTurn (radians) and CommandLook (look delta, positive up).
type Command struct {
	Kind   CommandKind
	Action engine.Action
	Amount float64
}

func action(a engine.Action) Command {
	return Command{Kind: CommandAction, Action: a}
}

var keyBindings = map[tcell.Key]Command{
	tcell.KeyUp:     action(engine.ActionMoveForward),
	tcell.KeyDown:   action(engine.ActionMoveBackward),
	tcell.KeyLeft:   action(engine.ActionRotateLeft),
	tcell.KeyRight:  action(engine.ActionRotateRight),
	tcell.KeyPgUp:   {Kind: CommandLook, Amount: 1},
	tcell.KeyPgDn:   {Kind: CommandLook, Amount: -1},
	tcell.KeyEscape: {Kind: CommandQuit},
	tcell.KeyCtrlC:  {Kind: CommandQuit},
}

var runeBindings = map[rune]Command{
	'w': action(engine.ActionMoveForward),
	's': action(engine.ActionMoveBackward),
	'a': action(engine.ActionStrafeLeft),
	'd': action(engine.ActionStrafeRight),
	'q': action(engine.ActionRotateLeft),
	'e': action(engine.ActionRotateRight),
	'r': action(engine.ActionResetView),
	'n': action(engine.ActionRegenerateMaze),
	'm': {Kind: CommandToggleMonochrome},
	't': {Kind: CommandToggleSprites},
}

// KeyCommand maps a key press to its command, case-insensitive for runes
func KeyCommand(key tcell.Key, r rune) (Command, bool) {
	if key == tcell.KeyRune {
		cmd, ok := runeBindings[unicode.ToLower(r)]
		return cmd, ok
	}
	cmd, ok := keyBindings[key]
	return cmd, ok
}

// InputHandler decodes tcell events. It keeps drag state between mouse events.
type InputHandler struct {
	dragging     bool
	lastX, lastY int
}

func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// HandleEvent returns the commands produced by ev, possibly none
func (h *InputHandler) HandleEvent(ev tcell.Event) []Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if cmd, ok := KeyCommand(ev.Key(), ev.Rune()); ok {
			return []Command{cmd}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return h.Drag(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		return []Command{{Kind: CommandResize}}
	}
	return nil
}

// Drag tracks the primary button. Horizontal motion turns by MouseTurnPerCell
// radians per cell, vertical motion looks, dragging upward looks up.
func (h *InputHandler) Drag(x, y int, pressed bool) []Command {
	if !pressed {
		h.dragging = false
		return nil
	}
	if !h.dragging {
		h.dragging = true
		h.lastX, h.lastY = x, y
		return nil
	}

	dx, dy := x-h.lastX, y-h.lastY
	h.lastX, h.lastY = x, y

	var cmds []Command
	if dx != 0 {
		cmds = append(cmds, Command{Kind: CommandTurn, Amount: float64(dx) * parameter.MouseTurnPerCell})
	}
	if dy != 0 {
		cmds = append(cmds, Command{Kind: CommandLook, Amount: float64(-dy) * parameter.MouseLookPerCell})
	}
	return cmds
}
