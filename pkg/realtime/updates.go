package realtime

import (
	"context"
	"time"

	"github.com/arbadelivery/deliverykit/pkg/notifications"
	"github.com/arbadelivery/deliverykit/pkg/orders"
)

// Updates is one real-time delta from the backend. The tracker shape-checks
// it before fan-out but otherwise treats it as opaque.
type Updates struct {
	Orders        []orders.Order               `json:"orders"`
	Notifications []notifications.Notification `json:"notifications"`
	Timestamp     time.Time                    `json:"timestamp"`
	HasUpdates    bool                         `json:"has_updates"`
}

// wellFormed rejects payloads missing the expected shape; the poll loop
// treats those as "no update" rather than crashing or delivering garbage.
func (u *Updates) wellFormed() bool {
	return u != nil && !u.Timestamp.IsZero()
}

// Source produces update payloads. The API client implements it; tests use
// in-memory fakes.
type Source interface {
	FetchUpdates(ctx context.Context) (*Updates, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (*Updates, error)

func (f SourceFunc) FetchUpdates(ctx context.Context) (*Updates, error) {
	return f(ctx)
}
