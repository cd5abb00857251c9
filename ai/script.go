package ai

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/topdown/prefabs"
)

// Script is a compiled AI script. Every object gets its own Brain from
// NewBrain so script globals and memory are never shared.
//
// Scripts read position_x, position_y, target_x, target_y, facing,
// state_time and step, keep anything they like in the memory map, and answer
// by assigning direction ("left", "up", "right", "down") and/or hold.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// LoadScript compiles a script from the prefab scripts directory.
func LoadScript(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("ai: load %s: %w", name, err)
	}
	return CompileScript(name, src)
}

// CompileScript compiles src. name is only used in errors.
func CompileScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	globals := map[string]any{
		"position_x": 0.0,
		"position_y": 0.0,
		"target_x":   0.0,
		"target_y":   0.0,
		"facing":     "",
		"state_time": 0.0,
		"step":       0.0,
		"memory":     map[string]any{},
		"direction":  "",
		"hold":       false,
	}
	for k, v := range globals {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("ai: %s: add %s: %w", name, k, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Name() string { return s.name }

// NewBrain returns a Brain running its own copy of the script.
func (s *Script) NewBrain() *ScriptBrain {
	return &ScriptBrain{
		name:     s.name,
		compiled: s.compiled.Clone(),
		memory:   &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

// ScriptBrain runs a Script once per decision.
type ScriptBrain struct {
	name     string
	compiled *tengo.Compiled
	memory   *tengo.Map
}

func (b *ScriptBrain) Decide(p Perception) (Decision, error) {
	inputs := []struct {
		name  string
		value any
	}{
		{"position_x", p.Position.X},
		{"position_y", p.Position.Y},
		{"target_x", p.Target.X},
		{"target_y", p.Target.Y},
		{"facing", string(p.Facing)},
		{"state_time", p.StateTime},
		{"step", p.Step},
		{"memory", b.memory},
		{"direction", ""},
		{"hold", false},
	}
	for _, in := range inputs {
		if err := b.compiled.Set(in.name, in.value); err != nil {
			return Decision{}, fmt.Errorf("ai: %s: set %s: %w", b.name, in.name, err)
		}
	}

	if err := b.compiled.Run(); err != nil {
		return Decision{}, fmt.Errorf("ai: run %s: %w", b.name, err)
	}

	raw := b.compiled.Get("direction").String()
	dir, ok := ParseDirection(raw)
	if !ok {
		return Decision{}, fmt.Errorf("ai: %s: unknown direction %q", b.name, raw)
	}
	return Decision{Direction: dir, Hold: b.compiled.Get("hold").Bool()}, nil
}
