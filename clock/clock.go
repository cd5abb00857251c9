// Package clock produces the per-tick time step every movement and animation
// calculation is scaled by.
package clock

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Source supplies the raw elapsed seconds for one tick.
type Source interface {
	Step() float64
}

// FixedSource reports the same step every tick. Used for deterministic runs.
type FixedSource float64

func (f FixedSource) Step() float64 { return float64(f) }

// TPSSource reports one ebiten tick worth of seconds. Ebiten calls Update at
// a fixed rate, so this is the game time that passed since the last Update.
type TPSSource struct{}

func (TPSSource) Step() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		// SyncWithFPS mode, fall back to the measured rate
		actual := ebiten.ActualTPS()
		if actual <= 0 {
			return 0
		}
		return 1 / actual
	}
	return 1 / float64(tps)
}

// WallSource measures real time between calls. The first call returns zero.
type WallSource struct {
	now  func() time.Time
	last time.Time
}

func NewWallSource() *WallSource {
	return &WallSource{now: time.Now}
}

func (w *WallSource) Step() float64 {
	t := w.now()
	if w.last.IsZero() {
		w.last = t
		return 0
	}
	d := t.Sub(w.last)
	w.last = t
	return d.Seconds()
}

// Clock holds the time step for the current tick. Tick is called exactly once
// per frame before any object updates; everything else only reads Step.
type Clock struct {
	source  Source
	maxStep float64

	step   float64
	total  float64
	ticks  uint64
	paused bool
}

// New creates a Clock over source. A positive maxStep caps a single step so a
// long stall does not teleport objects.
func New(source Source, maxStep float64) *Clock {
	if source == nil {
		source = TPSSource{}
	}
	return &Clock{source: source, maxStep: maxStep}
}

// Tick samples the source and returns the new step.
func (c *Clock) Tick() float64 {
	s := c.source.Step()
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 0
	}
	if c.maxStep > 0 && s > c.maxStep {
		s = c.maxStep
	}
	if c.paused {
		s = 0
	}
	c.step = s
	c.total += s
	c.ticks++
	return s
}

// Step returns the time step of the current tick in seconds. Never negative.
func (c *Clock) Step() float64 { return c.step }

// Total returns the game time accumulated over all ticks.
func (c *Clock) Total() float64 { return c.total }

func (c *Clock) Ticks() uint64 { return c.ticks }

// SetPaused makes subsequent ticks report a zero step.
func (c *Clock) SetPaused(paused bool) { c.paused = paused }

func (c *Clock) Paused() bool { return c.paused }
