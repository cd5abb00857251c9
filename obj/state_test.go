package obj

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingState struct {
	id  StateID
	log *[]string
}

func (s *recordingState) ID() StateID { return s.id }
func (s *recordingState) Enter()      { *s.log = append(*s.log, "enter "+s.id.String()) }
func (s *recordingState) Update()     { *s.log = append(*s.log, "update "+s.id.String()) }
func (s *recordingState) Exit()       { *s.log = append(*s.log, "exit "+s.id.String()) }

func newRecordingManager(log *[]string, ids ...StateID) *StateManager {
	m := NewStateManager("test")
	for _, id := range ids {
		m.Register(&recordingState{id: id, log: log})
	}
	return m
}

func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func TestStateManagerTransitions(t *testing.T) {
	var log []string
	m := newRecordingManager(&log, StateIdle, StateWalkLeft, StateDie)
	assert.Equal(t, StateNone, m.Current())

	assert.True(t, m.SetState(StateIdle))
	assert.Equal(t, []string{"enter idle"}, log)

	log = nil
	assert.True(t, m.SetState(StateWalkLeft))
	assert.Equal(t, []string{"exit idle", "enter walk_left"}, log)
	assert.Equal(t, StateWalkLeft, m.Current())

	log = nil
	assert.False(t, m.SetState(StateWalkLeft), "same state")
	assert.Empty(t, log, "no hooks on a same-state request")

	m.Update()
	assert.Equal(t, []string{"update walk_left"}, log)
}

// Enter can switch again; the chain unwinds in order.
type chainState struct {
	recordingState
	m    *StateManager
	next StateID
}

func (s *chainState) Enter() {
	s.recordingState.Enter()
	s.m.SetState(s.next)
}

func TestStateManagerTransitionFromEnter(t *testing.T) {
	var log []string
	m := NewStateManager("test")
	m.Register(
		&chainState{recordingState: recordingState{id: StateSpawn, log: &log}, m: m, next: StateIdle},
		&recordingState{id: StateIdle, log: &log},
	)

	assert.True(t, m.SetState(StateSpawn))
	assert.Equal(t, StateIdle, m.Current())
	assert.Equal(t, []string{"enter spawn", "exit spawn", "enter idle"}, log)
}

func TestStateManagerInvariants(t *testing.T) {
	cases := []struct {
		name string
		fn   func(m *StateManager)
		want error
	}{
		{"update_without_state", func(m *StateManager) { m.Update() }, ErrNoActiveState},
		{"unregistered", func(m *StateManager) { m.SetState(StateDie) }, ErrUnknownState},
		{"out_of_range", func(m *StateManager) { m.SetState(stateCount + 3) }, ErrUnknownState},
		{"register_none", func(m *StateManager) { m.Register(&recordingState{id: StateNone}) }, ErrUnknownState},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var log []string
			m := newRecordingManager(&log, StateIdle)
			err := recoverError(t, func() { c.fn(m) })
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func TestStateIDString(t *testing.T) {
	assert.Equal(t, "walk_down_right", StateWalkDownRight.String())
	assert.Equal(t, "die", fmt.Sprint(StateDie))
	assert.Equal(t, "state(99)", StateID(99).String())
}
