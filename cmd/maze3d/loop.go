package main

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/config"
	"github.com/lixenwraith/maze3d/display"
	"github.com/lixenwraith/maze3d/engine"
	"github.com/lixenwraith/maze3d/entity"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/status"
)

// loop is the single goroutine that touches the game: input, reloads,
// simulation ticks and frames are all serialized through run's select
type loop struct {
	game   *engine.Game
	screen *display.Screen
	input  *display.InputHandler
	sound  *audio.Manager
	log    *zap.Logger

	updates <-chan *config.Config
	errs    <-chan error

	metrics  *status.Registry
	frames   int
	fpsSince time.Time
}

func (l *loop) run(fps int) {
	ticker := time.NewTicker(frameInterval(fps))
	defer ticker.Stop()

	last := time.Now()
	l.fpsSince = last

	for {
		select {
		case ev := <-l.screen.Events():
			if !l.handle(ev) {
				return
			}

		case cfg, ok := <-l.updates:
			if !ok {
				l.updates = nil
				continue
			}
			applyFlags(cfg)
			l.reload(cfg)

		case err, ok := <-l.errs:
			if !ok {
				l.errs = nil
				continue
			}
			l.log.Warn("config reload rejected", zap.Error(err))

		case now := <-ticker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now

			l.game.Tick(dt.Seconds())
			l.playEvents()
			l.frame(now)
		}
	}
}

// handle applies the commands decoded from ev, false means quit
func (l *loop) handle(ev tcell.Event) bool {
	for _, cmd := range l.input.HandleEvent(ev) {
		switch cmd.Kind {
		case display.CommandQuit:
			return false
		case display.CommandAction:
			l.game.Apply(cmd.Action)
			l.metrics.Counter(status.Actions).Inc()
		case display.CommandTurn:
			l.game.Turn(cmd.Amount)
		case display.CommandLook:
			l.game.Look(cmd.Amount)
		case display.CommandToggleMonochrome:
			l.game.ToggleMonochrome()
		case display.CommandToggleSprites:
			l.game.ToggleSprites()
		case display.CommandResize:
			l.screen.Sync()
		}
	}
	return true
}

// reload applies the live-safe subset, maze and entity layout wait for the next regeneration
func (l *loop) reload(cfg *config.Config) {
	l.game.SetMonochrome(cfg.Display.Monochrome)
	l.game.SetSprites(cfg.Display.Sprites)
	l.game.SetCameraSpeeds(cfg.Camera.MoveSpeed, cfg.Camera.RotSpeed)
	l.game.SetLayout(maze.Config{Width: cfg.Maze.Width, Height: cfg.Maze.Height}, entityCounts(cfg))
	l.sound.SetVolume(cfg.Audio.Volume)
	l.sound.SetEnabled(cfg.Audio.Enabled)
	l.metrics.Counter(status.Reloads).Inc()

	l.log.Info("config reloaded",
		zap.Bool("monochrome", cfg.Display.Monochrome),
		zap.Bool("sprites", cfg.Display.Sprites),
		zap.Float64("volume", cfg.Audio.Volume),
	)
}

func (l *loop) playEvents() {
	for _, ev := range l.game.DrainEvents() {
		switch ev.Kind {
		case engine.EventWallBump:
			l.metrics.Counter(status.WallBumps).Inc()
		case engine.EventItemCollected:
			l.metrics.Counter(status.ItemsTaken).Inc()
		case engine.EventRegenerated:
			l.metrics.Counter(status.Regenerations).Inc()
		}

		cue, ok := cueFor(ev)
		if !ok {
			continue
		}
		if err := l.sound.Play(cue); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
			l.log.Debug("cue dropped", zap.Stringer("cue", cue), zap.Error(err))
		}
	}
}

func (l *loop) frame(now time.Time) {
	fps := l.metrics.Gauge(status.FPS)
	l.frames++
	l.metrics.Counter(status.Frames).Inc()
	if elapsed := now.Sub(l.fpsSince); elapsed >= time.Second {
		fps.Set(float64(l.frames) / elapsed.Seconds())
		l.frames = 0
		l.fpsSince = now
	}

	w, h := l.screen.ViewSize()
	frame := l.game.Render(w, h)

	l.screen.Draw(frame, display.HUD{
		Stats:        l.game.Stats(),
		CoinsLeft:    l.game.Entities().Remaining(entity.ItemCoin),
		ExitDistance: l.game.ExitDistance(),
		FPS:          fps.Value(),
		Monochrome:   l.game.Monochrome(),
		Sprites:      l.game.Sprites(),
	})
	l.metrics.Gauge(status.FrameMillis).Set(float64(time.Since(now).Microseconds()) / 1000)
}
