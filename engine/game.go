// Package engine is the session: it owns the world, camera and entities, maps
// actions onto them, advances the simulation and renders frames.
package engine

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/lixenwraith/maze3d/camera"
	"github.com/lixenwraith/maze3d/entity"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/render"
	"github.com/lixenwraith/maze3d/world"
)

// Options configure a session
type Options struct {
	Maze   maze.Config
	Counts entity.Counts

	MoveSpeed float64
	RotSpeed  float64

	Monochrome bool
	Sprites    bool
}

// DefaultOptions match the stock maze3d.yaml
func DefaultOptions() Options {
	return Options{
		Maze:      maze.Config{Width: parameter.MazeDefaultSize, Height: parameter.MazeDefaultSize},
		Counts:    entity.DefaultCounts(),
		MoveSpeed: parameter.CameraMoveSpeed,
		RotSpeed:  parameter.CameraRotSpeed,
		Sprites:   true,
	}
}

// Game is single-threaded: every method must be called from the loop goroutine
type Game struct {
	opts Options
	rng  *rand.Rand

	world    *world.World
	camera   *camera.Camera
	entities *entity.Set
	exit     maze.Point

	stats      Stats
	monochrome bool
	sprites    bool

	steer       entity.Steerer
	steerFailed bool

	events   []Event
	renderer *render.Renderer
	logger   *zap.Logger
}

// New generates the first maze from rng. logger may be nil.
func New(opts Options, rng *rand.Rand, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		opts:       opts,
		rng:        rng,
		stats:      Stats{Health: parameter.HealthStart},
		monochrome: opts.Monochrome,
		sprites:    opts.Sprites,
		renderer:   render.New(),
		logger:     logger,
	}
	g.regenerate()
	return g
}

// Apply performs one discrete action
func (g *Game) Apply(a Action) {
	switch a {
	case ActionMoveForward:
		g.move(g.camera.MoveForward)
	case ActionMoveBackward:
		g.move(g.camera.MoveBackward)
	case ActionStrafeLeft:
		g.move(g.camera.StrafeLeft)
	case ActionStrafeRight:
		g.move(g.camera.StrafeRight)
	case ActionRotateLeft:
		g.camera.Rotate(-parameter.ActionRotateAngle)
	case ActionRotateRight:
		g.camera.Rotate(parameter.ActionRotateAngle)
	case ActionResetView:
		g.camera.ResetView()
	case ActionRegenerateMaze:
		g.regenerate()
		g.events = append(g.events, Event{Kind: EventRegenerated})
		g.logger.Info("maze regenerated",
			zap.Int("width", g.world.Width()),
			zap.Int("height", g.world.Height()),
			zap.Int("passable", g.world.Grid().CountEmpty()),
			zap.Int("items", len(g.entities.Items)),
		)
	default:
		g.logger.Warn("unknown action", zap.Int("action", int(a)))
	}
}

// move counts a step whether or not the camera advanced, like a pressed button
func (g *Game) move(fn func(camera.Collider, float64) bool) {
	if !fn(g.world, parameter.ActionMoveScale) {
		g.events = append(g.events, Event{Kind: EventWallBump})
	}
	g.stats.Steps++
	g.collect()
}

// collect applies the effect of every item within reach
func (g *Game) collect() {
	for _, t := range g.entities.Collect(g.camera.Position) {
		switch t {
		case entity.ItemCoin:
			g.stats.Coins++
		case entity.ItemKey:
			g.stats.Keys++
		case entity.ItemHealth:
			g.stats.Health = min(g.stats.Health+parameter.HealthPickup, parameter.HealthMax)
		case entity.ItemExit:
			g.stats.ExitFound = true
		}
		g.events = append(g.events, Event{Kind: EventItemCollected, Item: t})
		g.logger.Debug("item collected", zap.Stringer("item", t), zap.Int("steps", g.stats.Steps))
	}
}

// Look pitches the view, positive looks up
func (g *Game) Look(delta float64) {
	if delta >= 0 {
		g.camera.LookUp(delta)
	} else {
		g.camera.LookDown(-delta)
	}
}

// Turn rotates by an absolute angle in radians (mouse drag)
func (g *Game) Turn(angle float64) {
	g.camera.RotateAbsolute(angle)
}

// Tick advances vertical camera motion, then every NPC
func (g *Game) Tick(dt float64) {
	g.camera.Update(dt)

	err := g.entities.Update(g.world.Grid(), dt, g.rng, g.steer)
	if err != nil && !g.steerFailed {
		g.steerFailed = true
		g.logger.Warn("npc steering failed, using built-in rule", zap.Error(err))
	}
}

// Render draws the current state into the renderer's buffer and returns it
func (g *Game) Render(width, height int) *render.Buffer {
	g.renderer.Render(width, height, g.camera, g.world, g.entities, render.Options{
		Monochrome: g.monochrome,
		Sprites:    g.sprites,
	})
	return g.renderer.Buffer()
}

// DrainEvents returns and clears the queued events
func (g *Game) DrainEvents() []Event {
	ev := g.events
	g.events = nil
	return ev
}

// regenerate builds the new world, camera and entities first and swaps them in
// together, so no frame observes a partial maze
func (g *Game) regenerate() {
	res := maze.Generate(g.opts.Maze, g.rng)
	w := world.New(res.Grid, res.Start)

	cam := camera.New(w.StartPosition(), parameter.CameraStartDirection)
	cam.MoveSpeed = g.opts.MoveSpeed
	cam.RotSpeed = g.opts.RotSpeed

	ents := entity.Spawn(res.Grid, res.StartCell, g.opts.Counts, g.rng)

	g.world, g.camera, g.entities, g.exit = w, cam, ents, res.Exit
	g.stats = Stats{Health: g.stats.Health}
}

// --- Settings ---

// SetSteerer replaces the NPC re-heading rule, nil restores the built-in one
func (g *Game) SetSteerer(s entity.Steerer) {
	g.steer = s
	g.steerFailed = false
}

// SetCameraSpeeds applies to the current camera and to regenerated ones
func (g *Game) SetCameraSpeeds(move, rot float64) {
	g.opts.MoveSpeed, g.opts.RotSpeed = move, rot
	g.camera.MoveSpeed, g.camera.RotSpeed = move, rot
}

// SetLayout takes effect on the next RegenerateMaze
func (g *Game) SetLayout(m maze.Config, counts entity.Counts) {
	g.opts.Maze, g.opts.Counts = m, counts
}

func (g *Game) SetMonochrome(on bool) { g.monochrome = on }
func (g *Game) ToggleMonochrome()     { g.monochrome = !g.monochrome }
func (g *Game) Monochrome() bool      { return g.monochrome }

func (g *Game) SetSprites(on bool) { g.sprites = on }
func (g *Game) ToggleSprites()     { g.sprites = !g.sprites }
func (g *Game) Sprites() bool      { return g.sprites }

// --- Read access for the shell and tests ---

func (g *Game) Stats() Stats               { return g.stats }
func (g *Game) World() *world.World        { return g.world }
func (g *Game) Camera() *camera.Camera     { return g.camera }
func (g *Game) Entities() *entity.Set      { return g.entities }
func (g *Game) Renderer() *render.Renderer { return g.renderer }

// Exit returns the exit cell of the current maze
func (g *Game) Exit() maze.Point { return g.exit }

// ExitDistance is the straight-line distance from the camera to the exit
func (g *Game) ExitDistance() float64 {
	return g.camera.Position.Distance(g.exit.Center())
}

var _ camera.Collider = (*world.World)(nil)
