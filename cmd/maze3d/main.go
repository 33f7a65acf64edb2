package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/config"
	"github.com/lixenwraith/maze3d/display"
	"github.com/lixenwraith/maze3d/engine"
	"github.com/lixenwraith/maze3d/entity"
	"github.com/lixenwraith/maze3d/logger"
	"github.com/lixenwraith/maze3d/maze"
	"github.com/lixenwraith/maze3d/parameter"
	"github.com/lixenwraith/maze3d/script"
	"github.com/lixenwraith/maze3d/status"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Config file path")
	seedFlag   = flag.Int64("seed", 0, "Maze seed, overrides config (0 keeps config)")
	monoFlag   = flag.Bool("mono", false, "Start in monochrome mode")
	logFlag    = flag.String("log", "", "Log file path, overrides config")
)

func main() {
	var screen *display.Screen

	// Panic Recovery: restore the terminal before printing
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMAZE3D CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	log, err := logger.New(logger.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	log.Info("starting",
		zap.String("config", *configFlag),
		zap.Int("width", cfg.Maze.Width),
		zap.Int("height", cfg.Maze.Height),
		zap.Int64("seed", cfg.Maze.Seed),
		zap.Int("fps", cfg.Display.FPS),
		zap.Bool("audio", cfg.Audio.Enabled),
	)

	game := engine.New(gameOptions(cfg), maze.NewRand(cfg.Maze.Seed), log.Named("engine"))
	loadSteering(game, cfg.Script.NPC, log.Named("script"))

	sound := audio.NewManager(cfg.Audio.Volume, cfg.Audio.Enabled, log.Named("audio"))
	if err := sound.Init(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Close()

	watcher, err := config.NewWatcher(*configFlag)
	if err != nil {
		log.Warn("config hot reload disabled", zap.Error(err))
	} else {
		defer watcher.Close()
	}

	screen, err = display.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	l := &loop{
		game:   game,
		screen: screen,
		input:  display.NewInputHandler(),
		sound:  sound,
		log:    log,

		metrics: status.NewRegistry(),
	}
	if watcher != nil {
		l.updates, l.errs = watcher.Updates, watcher.Errors
	}
	l.run(cfg.Display.FPS)

	log.Info("shutdown", zap.Int("steps", game.Stats().Steps), zap.Int("coins", game.Stats().Coins))
	log.Info("session metrics", l.metrics.Fields()...)
}

// applyFlags overrides file and env values with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Maze.Seed = *seedFlag
		case "mono":
			cfg.Display.Monochrome = *monoFlag
		case "log":
			cfg.Log.Path = *logFlag
		}
	})
}

func gameOptions(cfg *config.Config) engine.Options {
	return engine.Options{
		Maze:       maze.Config{Width: cfg.Maze.Width, Height: cfg.Maze.Height},
		Counts:     entityCounts(cfg),
		MoveSpeed:  cfg.Camera.MoveSpeed,
		RotSpeed:   cfg.Camera.RotSpeed,
		Monochrome: cfg.Display.Monochrome,
		Sprites:    cfg.Display.Sprites,
	}
}

func entityCounts(cfg *config.Config) entity.Counts {
	e := cfg.Entities
	return entity.Counts{
		Coins:     e.Coins,
		Keys:      e.Keys,
		Health:    e.Health,
		Exit:      e.Exit,
		Wanderers: e.Wanderers,
		Guards:    e.Guards,
	}
}

func loadSteering(game *engine.Game, path string, log *zap.Logger) {
	s, err := script.Load(path)
	switch {
	case errors.Is(err, script.ErrNoScript):
	case err != nil:
		log.Warn("steering script not loaded, using built-in rule", zap.String("path", path), zap.Error(err))
	default:
		game.SetSteerer(s)
		log.Info("steering script loaded", zap.String("path", s.Path()))
	}
}

// cueFor maps a session event to its sound
func cueFor(ev engine.Event) (audio.Cue, bool) {
	switch ev.Kind {
	case engine.EventWallBump:
		return audio.CueBump, true
	case engine.EventRegenerated:
		return audio.CueRegen, true
	case engine.EventItemCollected:
		switch ev.Item {
		case entity.ItemCoin:
			return audio.CueCoin, true
		case entity.ItemKey:
			return audio.CueKey, true
		case entity.ItemHealth:
			return audio.CueHealth, true
		case entity.ItemExit:
			return audio.CueExit, true
		}
	}
	return 0, false
}

// frameInterval converts fps to a ticker period, falling back to DefaultFPS
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}
