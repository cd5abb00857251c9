package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/topdown/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	MoveSpeed float64       `yaml:"move_speed"`
	Health    int           `yaml:"health"`
	Animation AnimationSpec `yaml:"animation"`
	Profile   ProfileSpec   `yaml:"profile"`
	Tint      *YAMLColor    `yaml:"tint"`
}

func LoadPlayerSpec(filename string) (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Animation.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	if spec.MoveSpeed < 0 {
		return nil, fmt.Errorf("prefabs: %s: negative move_speed", filename)
	}
	return &spec, nil
}

type EnemySpec struct {
	Name          string        `yaml:"name"`
	MoveSpeed     float64       `yaml:"move_speed"`
	Script        string        `yaml:"script"`
	ContactDamage int           `yaml:"contact_damage"`
	Animation     AnimationSpec `yaml:"animation"`
	Profile       ProfileSpec   `yaml:"profile"`
	Tint          *YAMLColor    `yaml:"tint"`
}

func LoadEnemySpec(filename string) (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Animation.validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	if spec.MoveSpeed < 0 {
		return nil, fmt.Errorf("prefabs: %s: negative move_speed", filename)
	}
	return &spec, nil
}

type AnimationSpec struct {
	DefaultFPS float64                     `yaml:"default_fps"`
	SpawnFPS   float64                     `yaml:"spawn_fps"`
	Defs       map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Sheet  string `yaml:"sheet"`
	Frames int    `yaml:"frames"`
}

func (a AnimationSpec) validate() error {
	if len(a.Defs) == 0 {
		return fmt.Errorf("animation: no defs")
	}
	for name, def := range a.Defs {
		if def.Sheet == "" || def.Frames <= 0 {
			return fmt.Errorf("animation %s: needs sheet and frames > 0", name)
		}
	}
	return nil
}

type ProfileSpec struct {
	Display   RectSpec `yaml:"display"`
	Collision RectSpec `yaml:"collision"`
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectSpec) Rect() common.Rect {
	return common.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
