package obj

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedBrain answers with whatever the test put in next.
type scriptedBrain struct {
	next  ai.Decision
	err   error
	seen  []ai.Perception
	calls int
}

func (b *scriptedBrain) Decide(p ai.Perception) (ai.Decision, error) {
	b.calls++
	b.seen = append(b.seen, p)
	return b.next, b.err
}

func newTestEnemy(t *testing.T, first ai.Direction, step float64) (*Enemy, *scriptedBrain) {
	t.Helper()
	clk, _ := newTestClock(step)
	brain := &scriptedBrain{next: ai.Decision{Direction: first}}
	e := NewEnemy(EnemyOptions{
		ID:       1,
		Spec:     testEnemySpec(),
		Position: cp.Vector{X: 50, Y: 50},
		Brain:    brain,
		Target:   func() cp.Vector { return cp.Vector{X: 200, Y: 10} },
		Clock:    clk,
	})
	require.NoError(t, e.Setup(fakeLoader{}, testEnemySpec().Animation))
	return e, brain
}

func (e *Enemy) tick() {
	e.clock.Tick()
	e.Update()
}

func TestEnemySetupUsesFirstDecision(t *testing.T) {
	cases := []struct {
		dir  ai.Direction
		want StateID
	}{
		{ai.Left, StateWalkLeft},
		{ai.Up, StateWalkUp},
		{ai.Right, StateWalkRight},
		{ai.Down, StateWalkDown},
	}
	for _, c := range cases {
		t.Run(string(c.dir), func(t *testing.T) {
			e, brain := newTestEnemy(t, c.dir, 0.1)
			assert.Equal(t, c.want, e.State())
			assert.Equal(t, ai.None, brain.seen[0].Facing)
			assert.Equal(t, "slime1", e.Name)
		})
	}
}

func TestEnemySetupErrors(t *testing.T) {
	cases := []struct {
		name  string
		brain ai.Brain
		want  error
	}{
		{"no_direction", &scriptedBrain{}, ErrNoDecision},
		{"hold_only", &scriptedBrain{next: ai.Decision{Hold: true}}, ErrNoDecision},
		{"no_brain", nil, ErrNoDecision},
		{"brain_error", &scriptedBrain{err: errBrain}, errBrain},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := testEnemySpec()
			e := NewEnemy(EnemyOptions{Spec: spec, Brain: c.brain})
			err := e.Setup(fakeLoader{}, spec.Animation)
			assert.ErrorIs(t, err, c.want)
			assert.Equal(t, StateNone, e.State())
		})
	}
}

var errBrain = errors.New("brain broke")

func TestEnemyProcessAI(t *testing.T) {
	cases := []struct {
		name     string
		decision ai.Decision
		err      error
		want     AIResult
		state    StateID
		moved    bool
	}{
		{"keep_direction", ai.Decision{Direction: ai.Right}, nil, AIResult{}, StateWalkRight, true},
		{"no_opinion", ai.Decision{}, nil, AIResult{}, StateWalkRight, true},
		{"turn", ai.Decision{Direction: ai.Up}, nil, AIResult{Handled: true, Transitioned: true}, StateWalkUp, false},
		{"hold", ai.Decision{Hold: true}, nil, AIResult{Handled: true}, StateWalkRight, false},
		{"hold_wins_over_direction", ai.Decision{Direction: ai.Down, Hold: true}, nil, AIResult{Handled: true}, StateWalkRight, false},
		{"error_is_unhandled", ai.Decision{Direction: ai.Left}, errBrain, AIResult{}, StateWalkRight, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, brain := newTestEnemy(t, ai.Right, 0.5)
			brain.next, brain.err = c.decision, c.err
			e.clock.Tick()
			assert.Equal(t, c.want, e.ProcessAI())
			assert.Equal(t, c.state, e.State())

			// the same decision through a full tick
			e, brain = newTestEnemy(t, ai.Right, 0.5)
			brain.next, brain.err = c.decision, c.err
			start := e.Position()
			e.tick()
			assert.Equal(t, c.moved, e.Position() != start, "moved")
		})
	}
}

func TestEnemyWalkMovesAndCountsStateTime(t *testing.T) {
	e, brain := newTestEnemy(t, ai.Left, 0.5)

	e.tick()
	e.tick()
	// speed 50
	assert.InDelta(t, 0.0, e.Position().X, 1e-9)
	assert.InDelta(t, 50.0, e.Position().Y, 1e-9)
	assert.InDelta(t, 1.0, e.StateTime(), 1e-9)
	assert.Equal(t, cp.Vector{X: -50}, e.Velocity())

	p := brain.seen[len(brain.seen)-1]
	assert.Equal(t, ai.Left, p.Facing)
	assert.Equal(t, cp.Vector{X: 200, Y: 10}, p.Target)
	assert.InDelta(t, 0.5, p.Step, 1e-9)
	assert.InDelta(t, 1.0, p.StateTime, 1e-9)

	brain.next = ai.Decision{Direction: ai.Down}
	e.tick()
	assert.Equal(t, StateWalkDown, e.State())
	assert.Zero(t, e.StateTime(), "reset on enter")
}

func TestEnemyHoldStops(t *testing.T) {
	e, brain := newTestEnemy(t, ai.Up, 0.5)
	e.tick()
	require.NotEqual(t, cp.Vector{}, e.Velocity())

	brain.next = ai.Decision{Hold: true}
	frame := e.Animation().Frame()
	e.tick()
	assert.Equal(t, cp.Vector{}, e.Velocity())
	assert.Equal(t, frame, e.Animation().Frame(), "no animation while held")
	assert.Equal(t, StateWalkUp, e.State())
}

func TestEnemyApplySpecAndBrain(t *testing.T) {
	e, _ := newTestEnemy(t, ai.Right, 1)
	spec := testEnemySpec()
	spec.MoveSpeed = 10
	spec.ContactDamage = 99
	e.ApplySpec(spec)
	assert.Equal(t, 99, e.ContactDamage)

	next := &scriptedBrain{next: ai.Decision{Direction: ai.Right}}
	e.SetBrain(next)
	e.tick()
	assert.Equal(t, 1, next.calls)
	assert.InDelta(t, 60.0, e.Position().X, 1e-9)
}
