package obj

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/clock"
	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/component"
	"github.com/milk9111/topdown/prefabs"
	"github.com/milk9111/topdown/render"
)

// Profile places an object's sprite and hitbox relative to its position.
type Profile struct {
	Display   common.Rect
	Collision common.Rect
}

func ProfileFromSpec(spec prefabs.ProfileSpec) Profile {
	return Profile{Display: spec.Display.Rect(), Collision: spec.Collision.Rect()}
}

// GameObject is the shared body of players and enemies: where it is, how fast
// it moves, what it looks like and which state drives it. Position and
// velocity only change from inside the active state's hooks.
type GameObject struct {
	Name string

	position cp.Vector
	velocity cp.Vector
	profile  Profile
	tint     color.Color

	clock  *clock.Clock
	anim   *component.Animation
	states *StateManager
}

func newGameObject(name string, position cp.Vector, profile Profile, fps float64, clk *clock.Clock) *GameObject {
	return &GameObject{
		Name:     name,
		position: position,
		profile:  profile,
		clock:    clk,
		anim:     component.NewAnimation(fps),
		states:   NewStateManager(name),
	}
}

func (o *GameObject) Position() cp.Vector             { return o.position }
func (o *GameObject) Velocity() cp.Vector             { return o.velocity }
func (o *GameObject) Profile() Profile                { return o.profile }
func (o *GameObject) Animation() *component.Animation { return o.anim }
func (o *GameObject) State() StateID                  { return o.states.Current() }

// SetState forwards to the object's state manager.
func (o *GameObject) SetState(id StateID) bool { return o.states.SetState(id) }

// Update runs the active state for one tick.
func (o *GameObject) Update() { o.states.Update() }

// Hitbox is the collision rectangle in world space.
func (o *GameObject) Hitbox() common.Rect {
	return o.profile.Collision.Translate(o.position.X, o.position.Y)
}

// Draw renders the current animation frame into the display rectangle.
func (o *GameObject) Draw(r render.Renderer) {
	if o.anim.Current() == "" {
		return
	}
	dst := o.profile.Display.Translate(o.position.X, o.position.Y)
	r.DrawFrame(o.anim.Image(), dst, o.tint, 0)
}

func (o *GameObject) step() float64 {
	if o.clock == nil {
		return 0
	}
	return o.clock.Step()
}

// move sets the velocity and integrates it over this tick's step.
func (o *GameObject) move(v cp.Vector) {
	o.velocity = v
	o.position = o.position.Add(v.Mult(o.step()))
}

func (o *GameObject) stop() { o.velocity = cp.Vector{} }

// loadAnimations registers every id in required from the prefab's sheets.
func (o *GameObject) loadAnimations(loader assets.Loader, spec prefabs.AnimationSpec, required []component.AnimationID) error {
	for _, id := range required {
		def, ok := spec.Defs[string(id)]
		if !ok {
			return fmt.Errorf("%s: animation %q not defined", o.Name, id)
		}
		frames, err := loader.LoadFrames(def.Sheet, def.Frames)
		if err != nil {
			return fmt.Errorf("%s: animation %q: %w", o.Name, id, err)
		}
		if len(frames) < def.Frames {
			return fmt.Errorf("%s: animation %q: %w: got %d, want %d", o.Name, id, assets.ErrShortFrames, len(frames), def.Frames)
		}
		if err := o.anim.Register(id, frames[:def.Frames]); err != nil {
			return fmt.Errorf("%s: %w", o.Name, err)
		}
	}
	return nil
}
