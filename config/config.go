// Package config loads the game configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/logger"
	"github.com/milk9111/topdown/obj"
	"github.com/milk9111/topdown/prefabs"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalid = errors.New("config: invalid")

var defaultKillKeys = []ebiten.Key{ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11}

type Config struct {
	Window    Window  `yaml:"window"`
	TPS       int     `yaml:"tps"`
	FixedStep float64 `yaml:"fixed_step"`
	MaxStep   float64 `yaml:"max_step"`
	// WallClock measures real elapsed time between ticks instead of 1/TPS.
	// Ignored when FixedStep is set.
	WallClock    bool           `yaml:"wall_clock"`
	Debug        bool           `yaml:"debug"`
	WatchPrefabs bool           `yaml:"watch_prefabs"`
	Log          logger.Options `yaml:"log"`
	Players      []Player       `yaml:"players"`
	Enemies      []Enemy        `yaml:"enemies"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vector() cp.Vector { return cp.Vector{X: p.X, Y: p.Y} }

type Player struct {
	Prefab   string             `yaml:"prefab"`
	Spawn    Point              `yaml:"spawn"`
	Bindings *obj.KeyBindings   `yaml:"bindings"`
	KillKey  *ebiten.Key        `yaml:"kill_key"`
	Tint     *prefabs.YAMLColor `yaml:"tint"`
}

type Enemy struct {
	Prefab string `yaml:"prefab"`
	// Script overrides the prefab's script.
	Script string `yaml:"script"`
	Spawn  Point  `yaml:"spawn"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return Parse(defaultYAML)
}

// Load reads a config file; an empty path means the embedded default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "topdown"
	}
	if c.TPS <= 0 {
		c.TPS = ebiten.DefaultTPS
	}
	for i := range c.Players {
		p := &c.Players[i]
		if p.Prefab == "" {
			p.Prefab = "player.yaml"
		}
		if p.Bindings == nil {
			b := obj.DefaultBindings(i)
			p.Bindings = &b
		}
		if p.KillKey == nil {
			k := defaultKillKeys[min(i, len(defaultKillKeys)-1)]
			p.KillKey = &k
		}
	}
}

// Validate checks what the game cannot start without.
func (c *Config) Validate() error {
	if len(c.Players) == 0 {
		return fmt.Errorf("%w: no players", ErrInvalid)
	}
	if badStep(c.FixedStep) || badStep(c.MaxStep) {
		return fmt.Errorf("%w: steps must be finite and >= 0", ErrInvalid)
	}
	for i, p := range c.Players {
		if p.Bindings == nil || !p.Bindings.Distinct() {
			return fmt.Errorf("%w: player %d: bindings need four different keys", ErrInvalid, i+1)
		}
		if p.KillKey == nil {
			return fmt.Errorf("%w: player %d: no kill key", ErrInvalid, i+1)
		}
		for j, other := range c.Players {
			if other.Bindings == nil {
				continue
			}
			for _, k := range other.Bindings.Keys() {
				if k == *p.KillKey {
					return fmt.Errorf("%w: player %d kill key is bound to movement of player %d", ErrInvalid, i+1, j+1)
				}
			}
		}
		for j := i + 1; j < len(c.Players); j++ {
			if other := c.Players[j].Bindings; other != nil && p.Bindings.Overlaps(*other) {
				return fmt.Errorf("%w: players %d and %d share keys", ErrInvalid, i+1, j+1)
			}
		}
	}
	for i, e := range c.Enemies {
		if e.Prefab == "" {
			return fmt.Errorf("%w: enemy %d: no prefab", ErrInvalid, i+1)
		}
	}
	return nil
}

func badStep(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}
