// Package statemachine provides a small, concurrency-safe finite state
// machine used to enforce domain lifecycles such as order status
// progressions.
//
// States and events are plain strings. Transitions are declared up front
// with the functional options pattern and may carry an optional Guard that
// can veto the transition and an optional Action executed before the state
// changes (an Action error aborts the transition).
//
//	m := statemachine.MustNew("pending",
//	    statemachine.WithTransition("pending", "confirmed", "confirm"),
//	    statemachine.WithTransition("pending", "cancelled", "cancel"),
//	)
//
//	if err := m.Fire(ctx, "confirm", nil); err != nil { ... }
//
// Errors distinguish "no such transition" from "guard rejected it"; see
// ErrNoTransition and ErrTransitionRejected.
package statemachine
