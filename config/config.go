// Package config loads maze3d settings from YAML, overlays environment
// variables and validates the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/maze3d/parameter"
)

// DefaultPath is the config file looked up when no -config flag is given
const DefaultPath = "maze3d.yaml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Maze     MazeConfig    `yaml:"maze"`
	Entities EntityConfig  `yaml:"entities"`
	Camera   CameraConfig  `yaml:"camera"`
	Display  DisplayConfig `yaml:"display"`
	Audio    AudioConfig   `yaml:"audio"`
	Log      LogConfig     `yaml:"log"`
	Script   ScriptConfig  `yaml:"script"`
}

// MazeConfig sizes the maze, Seed 0 picks a clock seed
type MazeConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

type EntityConfig struct {
	Coins     int  `yaml:"coins"`
	Keys      int  `yaml:"keys"`
	Health    int  `yaml:"health"`
	Exit      bool `yaml:"exit"`
	Wanderers int  `yaml:"wanderers"`
	Guards    int  `yaml:"guards"`
}

type CameraConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
	RotSpeed  float64 `yaml:"rot_speed"`
}

type DisplayConfig struct {
	FPS        int  `yaml:"fps"`
	Monochrome bool `yaml:"monochrome"`
	Sprites    bool `yaml:"sprites"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

type ScriptConfig struct {
	// NPC is a tengo steering script path, empty uses the built-in rule
	NPC string `yaml:"npc"`
}

func Default() *Config {
	return &Config{
		Maze: MazeConfig{
			Width:  parameter.MazeDefaultSize,
			Height: parameter.MazeDefaultSize,
		},
		Entities: EntityConfig{
			Coins:     parameter.DefaultCoins,
			Keys:      parameter.DefaultKeys,
			Health:    parameter.DefaultHealth,
			Exit:      true,
			Wanderers: parameter.DefaultWanderers,
			Guards:    parameter.DefaultGuards,
		},
		Camera: CameraConfig{
			MoveSpeed: parameter.CameraMoveSpeed,
			RotSpeed:  parameter.CameraRotSpeed,
		},
		Display: DisplayConfig{
			FPS:     parameter.DefaultFPS,
			Sprites: true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Log: LogConfig{
			Path:  "maze3d.log",
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
// Environment overrides are applied and the result validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	ApplyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays MAZE3D_* environment variables, malformed values are ignored
func ApplyEnv(cfg *Config) {
	if seed := os.Getenv("MAZE3D_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Maze.Seed = val
		}
	}

	if mono := os.Getenv("MAZE3D_MONOCHROME"); mono != "" {
		if val, err := strconv.ParseBool(mono); err == nil {
			cfg.Display.Monochrome = val
		}
	}

	if enabled := os.Getenv("MAZE3D_AUDIO"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("MAZE3D_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if level := os.Getenv("MAZE3D_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}

// Validate reports the first out-of-range field wrapped in ErrInvalid
func (c *Config) Validate() error {
	switch {
	case c.Maze.Width < parameter.MazeMinSize || c.Maze.Height < parameter.MazeMinSize:
		return fmt.Errorf("%w: maze %dx%d smaller than %d", ErrInvalid, c.Maze.Width, c.Maze.Height, parameter.MazeMinSize)
	case c.Display.FPS < 1 || c.Display.FPS > 240:
		return fmt.Errorf("%w: fps %d outside 1..240", ErrInvalid, c.Display.FPS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %g outside 0..1", ErrInvalid, c.Audio.Volume)
	case c.Camera.MoveSpeed <= 0 || c.Camera.RotSpeed <= 0:
		return fmt.Errorf("%w: camera speeds must be positive", ErrInvalid)
	case c.Entities.Coins < 0 || c.Entities.Keys < 0 || c.Entities.Health < 0 ||
		c.Entities.Wanderers < 0 || c.Entities.Guards < 0:
		return fmt.Errorf("%w: entity counts must not be negative", ErrInvalid)
	}
	return nil
}
