package obj

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ai"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/component"
	"github.com/milk9111/topdown/logger"
	"github.com/milk9111/topdown/prefabs"
	"github.com/sirupsen/logrus"
)

// ErrNoDecision is returned by Enemy.Setup when the brain does not pick a
// direction to start in.
var ErrNoDecision = errors.New("enemy: no initial decision")

var enemyAnimations = []component.AnimationID{animWalkLeft, animWalkUp, animWalkRight, animWalkDown}

// AIResult is what ProcessAI did this tick. Handled means the walk state must
// not move or animate on its own this tick. Transitioned means a different
// state became active.
type AIResult struct {
	Handled      bool
	Transitioned bool
}

// EnemyOptions configures NewEnemy.
type EnemyOptions struct {
	ID       int
	Spec     *prefabs.EnemySpec
	Position cp.Vector
	Brain    ai.Brain
	// Target reports where the enemy's quarry is; nil means the enemy's own position.
	Target func() cp.Vector
	Clock  *clock.Clock
}

// Enemy walks in the four cardinal directions as its Brain decides.
type Enemy struct {
	*GameObject

	ContactDamage int

	brain     ai.Brain
	target    func() cp.Vector
	moveSpeed float64
	stateTime float64
}

func NewEnemy(opts EnemyOptions) *Enemy {
	spec := opts.Spec
	name := spec.Name
	if name == "" {
		name = "enemy"
	}
	name = fmt.Sprintf("%s%d", name, opts.ID)

	e := &Enemy{
		GameObject:    newGameObject(name, opts.Position, ProfileFromSpec(spec.Profile), spec.Animation.DefaultFPS, opts.Clock),
		ContactDamage: spec.ContactDamage,
		brain:         opts.Brain,
		target:        opts.Target,
		moveSpeed:     spec.MoveSpeed,
	}
	e.tint = spec.Tint.ColorOr(nil)

	e.states.Register(
		&enemyWalkState{e: e, id: StateWalkLeft, anim: animWalkLeft, dir: dirLeft},
		&enemyWalkState{e: e, id: StateWalkUp, anim: animWalkUp, dir: dirUp},
		&enemyWalkState{e: e, id: StateWalkRight, anim: animWalkRight, dir: dirRight},
		&enemyWalkState{e: e, id: StateWalkDown, anim: animWalkDown, dir: dirDown},
	)
	return e
}

// Setup loads the walk animations and enters whatever state the brain picks
// first. A brain that errors or does not pick a direction fails setup.
func (e *Enemy) Setup(loader assets.Loader, spec prefabs.AnimationSpec) error {
	if e.brain == nil {
		return fmt.Errorf("%s: %w: no brain", e.Name, ErrNoDecision)
	}
	if err := e.loadAnimations(loader, spec, enemyAnimations); err != nil {
		return err
	}
	d, err := e.brain.Decide(e.perception())
	if err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	id, ok := stateForDirection(d.Direction)
	if !ok {
		return fmt.Errorf("%s: %w", e.Name, ErrNoDecision)
	}
	e.SetState(id)
	return nil
}

// ProcessAI asks the brain what to do this tick and applies it.
func (e *Enemy) ProcessAI() AIResult {
	d, err := e.brain.Decide(e.perception())
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"object": e.Name}).WithError(err).Warn("ai decision failed")
		return AIResult{}
	}
	if d.Hold {
		e.stop()
		return AIResult{Handled: true}
	}
	id, ok := stateForDirection(d.Direction)
	if !ok {
		return AIResult{}
	}
	if e.SetState(id) {
		return AIResult{Handled: true, Transitioned: true}
	}
	return AIResult{}
}

// SetTarget replaces the target source.
func (e *Enemy) SetTarget(target func() cp.Vector) { e.target = target }

// SetBrain swaps the brain, e.g. after a script reload.
func (e *Enemy) SetBrain(b ai.Brain) { e.brain = b }

// ApplySpec picks up tunables from a reloaded prefab.
func (e *Enemy) ApplySpec(spec *prefabs.EnemySpec) {
	e.moveSpeed = spec.MoveSpeed
	e.ContactDamage = spec.ContactDamage
	e.anim.SetDefaultSpeed(spec.Animation.DefaultFPS)
}

func (e *Enemy) StateTime() float64 { return e.stateTime }

func (e *Enemy) perception() ai.Perception {
	target := e.position
	if e.target != nil {
		target = e.target()
	}
	return ai.Perception{
		Position:  e.position,
		Target:    target,
		Facing:    directionForState(e.State()),
		StateTime: e.stateTime,
		Step:      e.step(),
	}
}

func stateForDirection(d ai.Direction) (StateID, bool) {
	switch d {
	case ai.Left:
		return StateWalkLeft, true
	case ai.Up:
		return StateWalkUp, true
	case ai.Right:
		return StateWalkRight, true
	case ai.Down:
		return StateWalkDown, true
	default:
		return StateNone, false
	}
}

func directionForState(id StateID) ai.Direction {
	switch id {
	case StateWalkLeft:
		return ai.Left
	case StateWalkUp:
		return ai.Up
	case StateWalkRight:
		return ai.Right
	case StateWalkDown:
		return ai.Down
	default:
		return ai.None
	}
}
