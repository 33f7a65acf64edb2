// Package script runs tengo NPC steering scripts.
//
// A script sees the globals kind, x, y, dir_x, dir_y, phase, roll and angle
// for one NPC and assigns the new heading to dir_x and dir_y. Leaving them
// unchanged keeps the current heading; a zero vector does the same.
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/lixenwraith/maze3d/entity"
	"github.com/lixenwraith/maze3d/vmath"
)

// ErrNoScript is returned by Load for an empty path
var ErrNoScript = errors.New("script: no steering script")

// modules importable from steering scripts, no os or io access
var modules = []string{"math", "rand", "text", "times"}

// Steering is a compiled script satisfying entity.Steerer
type Steering struct {
	path     string
	compiled *tengo.Compiled
}

var _ entity.Steerer = (*Steering)(nil)

// Load reads and compiles the script at path
func Load(path string) (*Steering, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoScript
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	s, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Compile builds a Steering from source
func Compile(src []byte) (*Steering, error) {
	sc := tengo.NewScript(src)
	for name, v := range map[string]any{
		"kind":  "",
		"x":     0.0,
		"y":     0.0,
		"dir_x": 0.0,
		"dir_y": 0.0,
		"phase": 0.0,
		"roll":  0,
		"angle": 0.0,
	} {
		if err := sc.Add(name, v); err != nil {
			return nil, err
		}
	}
	sc.SetImports(stdlib.GetModuleMap(modules...))

	compiled, err := sc.Compile()
	if err != nil {
		return nil, err
	}
	return &Steering{compiled: compiled}, nil
}

// Path returns the source file, empty for inline scripts
func (s *Steering) Path() string {
	return s.path
}

// Steer runs the script once for n and returns the heading it assigned
func (s *Steering) Steer(n *entity.NPC, roll int, angle float64) (vmath.Vec2, error) {
	inputs := []struct {
		name  string
		value any
	}{
		{"kind", n.Type.String()},
		{"x", n.Position.X},
		{"y", n.Position.Y},
		{"dir_x", n.Direction.X},
		{"dir_y", n.Direction.Y},
		{"phase", n.AnimationPhase},
		{"roll", roll},
		{"angle", angle},
	}
	for _, in := range inputs {
		if err := s.compiled.Set(in.name, in.value); err != nil {
			return vmath.Vec2{}, err
		}
	}

	if err := s.compiled.Run(); err != nil {
		return vmath.Vec2{}, err
	}

	dx, err := number(s.compiled, "dir_x")
	if err != nil {
		return vmath.Vec2{}, err
	}
	dy, err := number(s.compiled, "dir_y")
	if err != nil {
		return vmath.Vec2{}, err
	}
	return vmath.V2(dx, dy), nil
}

func number(c *tengo.Compiled, name string) (float64, error) {
	v := c.Get(name)
	switch val := v.Value().(type) {
	case float64:
		return val, nil
	case int64:
		return float64(val), nil
	default:
		return 0, fmt.Errorf("script: %s must be a number, got %s", name, v.ValueType())
	}
}
