package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Device reports whether a key is held right now.
type Device interface {
	IsKeyDown(key ebiten.Key) bool
}

// KeyboardDevice reads the ebiten keyboard.
type KeyboardDevice struct{}

func (KeyboardDevice) IsKeyDown(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

type keySnapshot [ebiten.KeyMax + 1]bool

// Poller samples a Device once per frame and answers level and edge queries
// against that sample, so every reader in a frame sees the same keys.
type Poller struct {
	device   Device
	current  keySnapshot
	previous keySnapshot
}

// NewPoller polls device, or the keyboard when device is nil.
func NewPoller(device Device) *Poller {
	if device == nil {
		device = KeyboardDevice{}
	}
	return &Poller{device: device}
}

// Update must be called once per frame before anything reads input.
func (p *Poller) Update() {
	p.previous = p.current
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		p.current[k] = p.device.IsKeyDown(k)
	}
}

// IsKeyPressed reports whether key is held this frame.
func (p *Poller) IsKeyPressed(key ebiten.Key) bool {
	if !validKey(key) {
		return false
	}
	return p.current[key]
}

// WasKeyPressed reports whether key went down this frame.
func (p *Poller) WasKeyPressed(key ebiten.Key) bool {
	if !validKey(key) {
		return false
	}
	return p.current[key] && !p.previous[key]
}

func validKey(key ebiten.Key) bool {
	return key >= 0 && key <= ebiten.KeyMax
}

// KeyBindings maps the four movement directions of one player to keys.
type KeyBindings struct {
	Left  ebiten.Key `yaml:"left"`
	Right ebiten.Key `yaml:"right"`
	Up    ebiten.Key `yaml:"up"`
	Down  ebiten.Key `yaml:"down"`
}

// DefaultBindings returns arrows for player 0 and WASD for player 1. Any other
// index gets the zero value.
func DefaultBindings(index int) KeyBindings {
	switch index {
	case 0:
		return KeyBindings{Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight, Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown}
	case 1:
		return KeyBindings{Left: ebiten.KeyA, Right: ebiten.KeyD, Up: ebiten.KeyW, Down: ebiten.KeyS}
	default:
		return KeyBindings{}
	}
}

func (b KeyBindings) Keys() []ebiten.Key {
	return []ebiten.Key{b.Left, b.Right, b.Up, b.Down}
}

// Overlaps reports whether b and other share any key.
func (b KeyBindings) Overlaps(other KeyBindings) bool {
	for _, k := range b.Keys() {
		for _, o := range other.Keys() {
			if k == o {
				return true
			}
		}
	}
	return false
}

// Distinct reports whether the four keys are all different.
func (b KeyBindings) Distinct() bool {
	keys := b.Keys()
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			if keys[i] == keys[j] {
				return false
			}
		}
	}
	return true
}
