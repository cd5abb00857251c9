package obj

import (
	"errors"
	"fmt"

	"github.com/milk9111/topdown/logger"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoActiveState = errors.New("state: no active state")
	ErrUnknownState  = errors.New("state: unknown state")
)

// StateID tags one behavior variant. The set is closed.
type StateID int

const (
	StateNone StateID = iota
	StateSpawn
	StateIdle
	StateWalkLeft
	StateWalkUpLeft
	StateWalkUp
	StateWalkUpRight
	StateWalkRight
	StateWalkDownRight
	StateWalkDown
	StateWalkDownLeft
	StateDie

	stateCount
)

var stateNames = [stateCount]string{
	StateNone:          "none",
	StateSpawn:         "spawn",
	StateIdle:          "idle",
	StateWalkLeft:      "walk_left",
	StateWalkUpLeft:    "walk_up_left",
	StateWalkUp:        "walk_up",
	StateWalkUpRight:   "walk_up_right",
	StateWalkRight:     "walk_right",
	StateWalkDownRight: "walk_down_right",
	StateWalkDown:      "walk_down",
	StateWalkDownLeft:  "walk_down_left",
	StateDie:           "die",
}

func (id StateID) String() string {
	if id < 0 || id >= stateCount {
		return fmt.Sprintf("state(%d)", int(id))
	}
	return stateNames[id]
}

// State is one behavior variant of an object. Enter and Exit run on
// transitions, Update once per tick while the state is active.
type State interface {
	ID() StateID
	Enter()
	Update()
	Exit()
}

// StateManager owns one instance of every state an object supports and
// switches between them.
type StateManager struct {
	owner   string
	states  [stateCount]State
	current State
}

// NewStateManager creates a manager. owner only shows up in logs.
func NewStateManager(owner string, states ...State) *StateManager {
	m := &StateManager{owner: owner}
	m.Register(states...)
	return m
}

// Register adds states to the table, replacing any with the same ID.
func (m *StateManager) Register(states ...State) {
	for _, s := range states {
		id := s.ID()
		if id <= StateNone || id >= stateCount {
			panic(fmt.Errorf("%w: %v", ErrUnknownState, id))
		}
		m.states[id] = s
	}
}

// Has reports whether id is registered.
func (m *StateManager) Has(id StateID) bool {
	return id > StateNone && id < stateCount && m.states[id] != nil
}

// SetState switches to id and reports whether the active state changed.
// Requesting the active state is a no-op; no hooks run.
func (m *StateManager) SetState(id StateID) bool {
	if !m.Has(id) {
		panic(fmt.Errorf("%w: %v", ErrUnknownState, id))
	}
	next := m.states[id]
	if m.current == next {
		return false
	}

	prev := m.Current()
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	logger.Log.WithFields(logrus.Fields{
		"object": m.owner,
		"from":   prev,
		"to":     id,
	}).Debug("state change")
	m.current.Enter()
	return true
}

// Update runs the active state.
func (m *StateManager) Update() {
	if m.current == nil {
		panic(fmt.Errorf("%w: %s", ErrNoActiveState, m.owner))
	}
	m.current.Update()
}

// Current returns the active state's ID, StateNone before the first SetState.
func (m *StateManager) Current() StateID {
	if m.current == nil {
		return StateNone
	}
	return m.current.ID()
}
