// Package ai decides which way scripted objects walk.
package ai

import "github.com/jakecoffman/cp"

// Direction is one of the four walk directions an AI can choose.
type Direction string

const (
	None  Direction = ""
	Left  Direction = "left"
	Up    Direction = "up"
	Right Direction = "right"
	Down  Direction = "down"
)

// ParseDirection accepts the four direction names and the empty string.
func ParseDirection(s string) (Direction, bool) {
	switch d := Direction(s); d {
	case None, Left, Up, Right, Down:
		return d, true
	default:
		return None, false
	}
}

// Perception is the read-only view of the world a Brain decides from.
type Perception struct {
	Position cp.Vector
	Target   cp.Vector
	// Facing is the direction currently walked, None before the first decision.
	Facing Direction
	// StateTime is the game time spent in the current walk state.
	StateTime float64
	Step      float64
}

// Decision is a Brain's answer for one tick. Hold means "stay put this tick";
// otherwise a non-empty Direction asks to walk that way and None leaves the
// current behavior alone.
type Decision struct {
	Direction Direction
	Hold      bool
}

type Brain interface {
	Decide(p Perception) (Decision, error)
}

// BrainFunc adapts a plain function to Brain.
type BrainFunc func(p Perception) (Decision, error)

func (f BrainFunc) Decide(p Perception) (Decision, error) { return f(p) }
