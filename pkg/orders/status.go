package orders

import (
	"github.com/arbadelivery/deliverykit/pkg/statemachine"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusAssigned  Status = "assigned"
	StatusPickedUp  Status = "picked_up"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Event names for lifecycle transitions.
const (
	EventConfirm = statemachine.Event("confirm")
	EventAssign  = statemachine.Event("assign")
	EventPickUp  = statemachine.Event("pick_up")
	EventDepart  = statemachine.Event("depart")
	EventDeliver = statemachine.Event("deliver")
	EventCancel  = statemachine.Event("cancel")
)

// transitions is the single source of truth for the order lifecycle.
// Cancellation is allowed until the package is picked up.
var transitions = []struct {
	from  Status
	to    Status
	event statemachine.Event
}{
	{StatusPending, StatusConfirmed, EventConfirm},
	{StatusPending, StatusCancelled, EventCancel},
	{StatusConfirmed, StatusAssigned, EventAssign},
	{StatusConfirmed, StatusCancelled, EventCancel},
	{StatusAssigned, StatusPickedUp, EventPickUp},
	{StatusAssigned, StatusCancelled, EventCancel},
	{StatusPickedUp, StatusInTransit, EventDepart},
	{StatusInTransit, StatusDelivered, EventDeliver},
}

// Lifecycle returns a state machine positioned at the given status,
// enforcing the delivery transition table.
func Lifecycle(current Status) (*statemachine.Machine, error) {
	if !current.Valid() {
		return nil, ErrUnknownStatus
	}

	opts := make([]statemachine.Option, 0, len(transitions))
	for _, t := range transitions {
		opts = append(opts, statemachine.WithTransition(
			statemachine.State(t.from),
			statemachine.State(t.to),
			t.event,
		))
	}

	return statemachine.New(statemachine.State(current), opts...)
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusAssigned, StatusPickedUp,
		StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether the lifecycle allows moving from one status
// directly to another.
func CanTransition(from, to Status) bool {
	for _, t := range transitions {
		if t.from == from && t.to == to {
			return true
		}
	}
	return false
}

// NextStatuses lists the statuses reachable from the given one. Dashboards
// use it to decide which action buttons to render.
func NextStatuses(from Status) []Status {
	var next []Status
	for _, t := range transitions {
		if t.from == from {
			next = append(next, t.to)
		}
	}
	return next
}
