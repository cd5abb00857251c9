package component

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrUnknownAnimation = errors.New("animation: unknown animation")
	ErrNoFrames         = errors.New("animation: no frames")
)

// DefaultFPS is used when an Animation is created without a playback speed.
const DefaultFPS = 12.0

// AnimationID names one frame sequence registered on an Animation.
type AnimationID string

// Animation plays one of several registered frame sequences. Playback speed is
// in frames per second of game time; time comes in through Update so playback
// is independent of the render rate.
type Animation struct {
	sets map[AnimationID][]*ebiten.Image

	current AnimationID
	frames  []*ebiten.Image
	frame   int

	defaultSpeed float64
	speed        float64
	elapsed      float64 // in frames
	finished     bool
}

// NewAnimation creates an empty Animation. `fps` is the default playback speed
// (defaults to DefaultFPS if <= 0).
func NewAnimation(fps float64) *Animation {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animation{
		sets:         make(map[AnimationID][]*ebiten.Image),
		defaultSpeed: fps,
		speed:        fps,
	}
}

// Register binds frames to id. The slice is copied.
func (a *Animation) Register(id AnimationID, frames []*ebiten.Image) error {
	if id == "" {
		return fmt.Errorf("animation: register: empty id")
	}
	if len(frames) == 0 {
		return fmt.Errorf("%w: %s", ErrNoFrames, id)
	}
	a.sets[id] = append([]*ebiten.Image(nil), frames...)
	return nil
}

// Has reports whether id was registered.
func (a *Animation) Has(id AnimationID) bool {
	_, ok := a.sets[id]
	return ok
}

// SetAnimation switches to the sequence bound to id and rewinds it. Asking for
// an id that was never registered is a programming error and panics.
func (a *Animation) SetAnimation(id AnimationID) {
	frames, ok := a.sets[id]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownAnimation, id))
	}
	a.current = id
	a.frames = frames
	a.Reset()
}

// Reset rewinds the current sequence to the first frame.
func (a *Animation) Reset() {
	a.frame = 0
	a.elapsed = 0
	a.finished = false
}

// SetSpeed overrides the playback speed. Non-positive values restore the default.
func (a *Animation) SetSpeed(fps float64) {
	if fps <= 0 {
		fps = a.defaultSpeed
	}
	a.speed = fps
}

// ResetSpeed restores the default playback speed.
func (a *Animation) ResetSpeed() { a.speed = a.defaultSpeed }

// SetDefaultSpeed changes the default speed without touching an active override.
func (a *Animation) SetDefaultSpeed(fps float64) {
	if fps <= 0 {
		return
	}
	overridden := a.speed != a.defaultSpeed
	a.defaultSpeed = fps
	if !overridden {
		a.speed = fps
	}
}

// Update advances playback by step seconds. Each time the accumulated time
// crosses a whole frame the index moves forward by one. Past the last frame a
// looping sequence wraps to 0 and Update returns false; a non-looping one stays
// on its last frame and Update returns true, once, until the next Reset or
// SetAnimation.
func (a *Animation) Update(step float64, loop bool) bool {
	if a.frames == nil {
		panic(fmt.Errorf("%w: update before SetAnimation", ErrUnknownAnimation))
	}
	if step <= 0 || a.finished {
		return false
	}

	a.elapsed += step * a.speed
	if a.elapsed < 1 {
		return false
	}
	a.elapsed--
	if a.elapsed >= 1 {
		// one frame per update; drop whatever a long step carried over
		a.elapsed = 0
	}

	if a.frame+1 < len(a.frames) {
		a.frame++
		return false
	}
	if loop {
		a.frame = 0
		return false
	}
	a.finished = true
	return true
}

// Current returns the id of the bound sequence.
func (a *Animation) Current() AnimationID { return a.current }

// Frame returns the current frame index.
func (a *Animation) Frame() int { return a.frame }

// FrameCount returns the length of the bound sequence.
func (a *Animation) FrameCount() int { return len(a.frames) }

func (a *Animation) Speed() float64 { return a.speed }

// Finished reports whether a non-looping playthrough has completed.
func (a *Animation) Finished() bool { return a.finished }

// Image returns the image for the current frame, or nil when nothing is bound.
func (a *Animation) Image() *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.frame]
}
