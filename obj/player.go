package obj

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/component"
	"github.com/milk9111/topdown/prefabs"
)

const (
	animSpawn         component.AnimationID = "spawn"
	animIdle          component.AnimationID = "idle"
	animDie           component.AnimationID = "die"
	animWalkLeft      component.AnimationID = "walk_left"
	animWalkUpLeft    component.AnimationID = "walk_up_left"
	animWalkUp        component.AnimationID = "walk_up"
	animWalkUpRight   component.AnimationID = "walk_up_right"
	animWalkRight     component.AnimationID = "walk_right"
	animWalkDownRight component.AnimationID = "walk_down_right"
	animWalkDown      component.AnimationID = "walk_down"
	animWalkDownLeft  component.AnimationID = "walk_down_left"
)

var playerAnimations = []component.AnimationID{
	animSpawn, animIdle, animDie,
	animWalkLeft, animWalkUpLeft, animWalkUp, animWalkUpRight,
	animWalkRight, animWalkDownRight, animWalkDown, animWalkDownLeft,
}

var diag = 1 / math.Sqrt2

// walk directions in screen space, y grows downwards
var (
	dirLeft      = cp.Vector{X: -1}
	dirUpLeft    = cp.Vector{X: -diag, Y: -diag}
	dirUp        = cp.Vector{Y: -1}
	dirUpRight   = cp.Vector{X: diag, Y: -diag}
	dirRight     = cp.Vector{X: 1}
	dirDownRight = cp.Vector{X: diag, Y: diag}
	dirDown      = cp.Vector{Y: 1}
	dirDownLeft  = cp.Vector{X: -diag, Y: diag}
)

// PlayerOptions configures NewPlayer.
type PlayerOptions struct {
	Index    int
	Spec     *prefabs.PlayerSpec
	Position cp.Vector
	Bindings KeyBindings
	// KillKey sends the player to Die on its press edge.
	KillKey ebiten.Key
	Input   *Poller
	Clock   *clock.Clock
	// Tint overrides the prefab tint when set.
	Tint color.Color
}

// Player is a keyboard-driven object with the full set of eight walk
// directions plus spawn, idle and die.
type Player struct {
	*GameObject

	Index int
	Data  *component.PlayerData

	bindings  KeyBindings
	killKey   ebiten.Key
	input     *Poller
	moveSpeed float64
	spawnFPS  float64

	spawnPoint cp.Vector
	// dying is set by a fatal hit; the active state moves to Die on its next Update.
	dying bool
	// out is set when Die spent the last life.
	out bool
}

func NewPlayer(opts PlayerOptions) *Player {
	spec := opts.Spec
	name := spec.Name
	if name == "" {
		name = "player"
	}
	name = fmt.Sprintf("%s%d", name, opts.Index+1)

	p := &Player{
		GameObject: newGameObject(name, opts.Position, ProfileFromSpec(spec.Profile), spec.Animation.DefaultFPS, opts.Clock),
		Index:      opts.Index,
		Data:       component.NewPlayerData(spec.Health),
		bindings:   opts.Bindings,
		killKey:    opts.KillKey,
		input:      opts.Input,
		moveSpeed:  spec.MoveSpeed,
		spawnFPS:   spec.Animation.SpawnFPS,
		spawnPoint: opts.Position,
	}
	p.tint = spec.Tint.ColorOr(nil)
	if opts.Tint != nil {
		p.tint = opts.Tint
	}

	p.states.Register(
		&playerSpawnState{p: p},
		&playerDieState{p: p},
		&playerMoveState{p: p, id: StateIdle, anim: animIdle},
		&playerMoveState{p: p, id: StateWalkLeft, anim: animWalkLeft, dir: dirLeft},
		&playerMoveState{p: p, id: StateWalkUpLeft, anim: animWalkUpLeft, dir: dirUpLeft},
		&playerMoveState{p: p, id: StateWalkUp, anim: animWalkUp, dir: dirUp},
		&playerMoveState{p: p, id: StateWalkUpRight, anim: animWalkUpRight, dir: dirUpRight},
		&playerMoveState{p: p, id: StateWalkRight, anim: animWalkRight, dir: dirRight},
		&playerMoveState{p: p, id: StateWalkDownRight, anim: animWalkDownRight, dir: dirDownRight},
		&playerMoveState{p: p, id: StateWalkDown, anim: animWalkDown, dir: dirDown},
		&playerMoveState{p: p, id: StateWalkDownLeft, anim: animWalkDownLeft, dir: dirDownLeft},
	)
	return p
}

// Setup loads the player's animations and enters Spawn.
func (p *Player) Setup(loader assets.Loader, spec prefabs.AnimationSpec) error {
	if err := p.loadAnimations(loader, spec, playerAnimations); err != nil {
		return err
	}
	p.SetState(StateSpawn)
	return nil
}

// ProcessStandardInputs picks the state the held keys ask for and switches to
// it. Diagonals win over single directions, left over right, up over down; the
// kill key only counts when nothing is held. Reports whether the state changed.
func (p *Player) ProcessStandardInputs() bool {
	in, b := p.input, p.bindings
	left := in.IsKeyPressed(b.Left)
	right := in.IsKeyPressed(b.Right)
	up := in.IsKeyPressed(b.Up)
	down := in.IsKeyPressed(b.Down)

	switch {
	case up && left:
		return p.SetState(StateWalkUpLeft)
	case down && left:
		return p.SetState(StateWalkDownLeft)
	case left:
		return p.SetState(StateWalkLeft)
	case up && right:
		return p.SetState(StateWalkUpRight)
	case down && right:
		return p.SetState(StateWalkDownRight)
	case right:
		return p.SetState(StateWalkRight)
	case up:
		return p.SetState(StateWalkUp)
	case down:
		return p.SetState(StateWalkDown)
	case in.WasKeyPressed(p.killKey):
		return p.SetState(StateDie)
	default:
		return p.SetState(StateIdle)
	}
}

// Damage applies a hit to the player's data. A fatal hit does not switch
// state here; the active state picks it up on its next Update and moves to
// Die. Hits are ignored while spawning, dying or dead.
func (p *Player) Damage(amount int) {
	if p.dying || p.State() == StateDie || p.State() == StateSpawn {
		return
	}
	if p.Data.TakeDamage(amount) {
		p.dying = true
	}
}

// Alive reports whether the player is still in play.
func (p *Player) Alive() bool { return !p.dying && p.State() != StateDie }

// Out reports whether the player died on its last life and the die animation
// has finished. Nothing brings an out player back.
func (p *Player) Out() bool {
	return p.out && p.State() == StateDie && p.anim.Finished()
}

func (p *Player) MoveSpeed() float64 { return p.moveSpeed }

// ApplySpec picks up tunables from a reloaded prefab. Animations and profile
// stay as they were loaded.
func (p *Player) ApplySpec(spec *prefabs.PlayerSpec) {
	p.moveSpeed = spec.MoveSpeed
	p.spawnFPS = spec.Animation.SpawnFPS
	p.anim.SetDefaultSpeed(spec.Animation.DefaultFPS)
}
