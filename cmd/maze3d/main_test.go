package main

import (
	"testing"
	"time"

	"github.com/lixenwraith/maze3d/audio"
	"github.com/lixenwraith/maze3d/config"
	"github.com/lixenwraith/maze3d/engine"
	"github.com/lixenwraith/maze3d/entity"
)

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   engine.Event
		want audio.Cue
	}{
		{"coin", engine.Event{Kind: engine.EventItemCollected, Item: entity.ItemCoin}, audio.CueCoin},
		{"key", engine.Event{Kind: engine.EventItemCollected, Item: entity.ItemKey}, audio.CueKey},
		{"health", engine.Event{Kind: engine.EventItemCollected, Item: entity.ItemHealth}, audio.CueHealth},
		{"exit", engine.Event{Kind: engine.EventItemCollected, Item: entity.ItemExit}, audio.CueExit},
		{"bump", engine.Event{Kind: engine.EventWallBump}, audio.CueBump},
		{"regen", engine.Event{Kind: engine.EventRegenerated}, audio.CueRegen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cueFor(tt.ev)
			if !ok || got != tt.want {
				t.Errorf("Expected %v, got %v (ok=%v)", tt.want, got, ok)
			}
		})
	}

	if _, ok := cueFor(engine.Event{Kind: engine.EventItemCollected, Item: entity.ItemType(42)}); ok {
		t.Error("Expected no cue for unknown item")
	}
}

func TestFrameInterval(t *testing.T) {
	if got := frameInterval(60); got != time.Second/60 {
		t.Errorf("Expected %v, got %v", time.Second/60, got)
	}
	if got := frameInterval(0); got != time.Second/60 {
		t.Errorf("Expected default interval, got %v", got)
	}
}

func TestGameOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Maze.Width, cfg.Maze.Height = 31, 17
	cfg.Entities.Guards = 4
	cfg.Display.Monochrome = true
	cfg.Camera.MoveSpeed = 0.2

	opts := gameOptions(cfg)

	if opts.Maze.Width != 31 || opts.Maze.Height != 17 {
		t.Errorf("Unexpected maze size %+v", opts.Maze)
	}
	if opts.Counts.Guards != 4 || opts.Counts.Coins != cfg.Entities.Coins {
		t.Errorf("Unexpected counts %+v", opts.Counts)
	}
	if !opts.Monochrome || !opts.Sprites || opts.MoveSpeed != 0.2 {
		t.Errorf("Unexpected options %+v", opts)
	}
}
