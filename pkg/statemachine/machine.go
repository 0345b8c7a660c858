package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State identifies a node in the machine.
type State string

func (s State) String() string { return string(s) }

// Event triggers a transition.
type Event string

func (e Event) String() string { return string(e) }

// Guard decides at runtime whether a transition may proceed.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs before the state changes; returning an error aborts the
// transition and leaves the machine in its current state.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Transition declares a state change triggered by an event.
type Transition struct {
	From   State
	To     State
	Event  Event
	Guard  Guard
	Action Action
}

type transitionKey struct {
	from  State
	event Event
}

// Machine is a thread-safe finite state machine. Configure it with New and
// drive it with Fire; the transition table is immutable after construction.
type Machine struct {
	initial     State
	transitions map[transitionKey]Transition

	mu      sync.RWMutex
	current State
}

// Option configures a machine during construction.
type Option func(*Machine) error

// WithTransition declares that event moves the machine from one state to
// another.
func WithTransition(from, to State, event Event) Option {
	return WithGuardedTransition(Transition{From: from, To: to, Event: event})
}

// WithGuardedTransition declares a transition with an optional guard and
// action. Duplicate (from, event) pairs are rejected to keep the table
// deterministic.
func WithGuardedTransition(t Transition) Option {
	return func(m *Machine) error {
		if t.From == "" || t.To == "" || t.Event == "" {
			return ErrInvalidTransition
		}
		key := transitionKey{from: t.From, event: t.Event}
		if _, exists := m.transitions[key]; exists {
			return fmt.Errorf("%w: duplicate transition from %q on %q", ErrInvalidTransition, t.From, t.Event)
		}
		m.transitions[key] = t
		return nil
	}
}

// New creates a machine starting in the given state.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == "" {
		return nil, ErrInvalidState
	}

	m := &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[transitionKey]Transition),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is New that panics on misconfiguration; intended for transition
// tables declared as package-level constants.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies event to the current state. It returns ErrNoTransition when
// the table has no entry for (current, event) and ErrTransitionRejected when
// the guard vetoes it. The data value is passed through to guard and action.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == "" {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transitions[transitionKey{from: m.current, event: event}]
	if !ok {
		return fmt.Errorf("%w: from %q on %q", ErrNoTransition, m.current, event)
	}

	if t.Guard != nil && !t.Guard(ctx, m.current, event, data) {
		return fmt.Errorf("%w: from %q on %q", ErrTransitionRejected, m.current, event)
	}

	if t.Action != nil {
		if err := t.Action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("transition action: %w", err)
		}
	}

	m.current = t.To
	return nil
}

// CanFire reports whether Fire would succeed for event, running the guard
// but not the action.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == "" {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.transitions[transitionKey{from: m.current, event: event}]
	if !ok {
		return false
	}
	return t.Guard == nil || t.Guard(ctx, m.current, event, data)
}

// Targets returns the states reachable from the given state, in no
// particular order. Guards are not consulted.
func (m *Machine) Targets(from State) []State {
	var targets []State
	for key, t := range m.transitions {
		if key.from == from {
			targets = append(targets, t.To)
		}
	}
	return targets
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
