package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/padrunner/ecs/component"
)

// Script drives the character from a tengo program. Before each run the
// program sees `tick` (starting at 1) and fresh `axis`, `sprint` and `jump`
// globals, which it assigns with `=`:
//
//	if tick <= 30 { axis = 1.0 }
//	jump = tick % 45 < 10
type Script struct {
	name     string
	compiled *tengo.Compiled
	tick     int
	log      *zap.Logger
}

// NewScript compiles src. Compile errors are returned; errors while
// running degrade to neutral input.
func NewScript(name string, src []byte, log *zap.Logger) (*Script, error) {
	if log == nil {
		log = zap.NewNop()
	}
	compiled, err := compileScript(name, src)
	if err != nil {
		return nil, err
	}
	return &Script{name: name, compiled: compiled, log: log}, nil
}

// Reload swaps in a new program for the same script. The tick count
// carries over; on a compile error the running program is kept.
func (s *Script) Reload(src []byte) error {
	compiled, err := compileScript(s.name, src)
	if err != nil {
		return err
	}
	s.compiled = compiled
	return nil
}

// Name is the name the script was created with.
func (s *Script) Name() string {
	return s.name
}

func compileScript(name string, src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	for _, v := range []struct {
		name  string
		value any
	}{
		{"tick", 0},
		{"axis", 0.0},
		{"sprint", false},
		{"jump", false},
	} {
		if err := script.Add(v.name, v.value); err != nil {
			return nil, fmt.Errorf("input: script %s: add %s: %w", name, v.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: script %s: compile: %w", name, err)
	}
	return compiled, nil
}

// Tick returns how many snapshots the script has produced.
func (s *Script) Tick() int {
	return s.tick
}

func (s *Script) Snapshot() component.Input {
	if s == nil || s.compiled == nil {
		return component.NeutralInput()
	}
	s.tick++

	if err := s.run(); err != nil {
		s.log.Warn("input script failed",
			zap.String("script", s.name),
			zap.Int("tick", s.tick),
			zap.Error(err),
		)
		return component.NeutralInput()
	}

	return component.Input{
		MoveX:  s.compiled.Get("axis").Float(),
		Sprint: s.compiled.Get("sprint").Bool(),
		Jump:   s.compiled.Get("jump").Bool(),
	}.Normalized()
}

func (s *Script) run() error {
	if err := s.compiled.Set("tick", s.tick); err != nil {
		return err
	}
	if err := s.compiled.Set("axis", 0.0); err != nil {
		return err
	}
	if err := s.compiled.Set("sprint", false); err != nil {
		return err
	}
	if err := s.compiled.Set("jump", false); err != nil {
		return err
	}
	return s.compiled.Run()
}
