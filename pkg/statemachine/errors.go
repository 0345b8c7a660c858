package statemachine

import "errors"

var (
	// ErrInvalidState is returned when a machine is constructed with an
	// empty initial state.
	ErrInvalidState = errors.New("statemachine: state cannot be empty")

	// ErrInvalidEvent is returned when Fire is called with an empty event.
	ErrInvalidEvent = errors.New("statemachine: event cannot be empty")

	// ErrInvalidTransition is returned for malformed or duplicate
	// transition declarations.
	ErrInvalidTransition = errors.New("statemachine: invalid transition")

	// ErrNoTransition is returned when no transition is declared for the
	// current state and event.
	ErrNoTransition = errors.New("statemachine: no transition available")

	// ErrTransitionRejected is returned when a declared transition's guard
	// vetoes it.
	ErrTransitionRejected = errors.New("statemachine: transition rejected by guard")
)
