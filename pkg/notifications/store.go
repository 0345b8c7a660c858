package notifications

import (
	"context"
	"time"
)

// Store keeps notifications for the current user.
type Store interface {
	// Upsert inserts a notification or replaces an existing one with the
	// same ID, preserving read state of the stored copy.
	Upsert(ctx context.Context, notif Notification) error

	// Get retrieves a notification by ID.
	Get(ctx context.Context, id string) (*Notification, error)

	// List returns notifications, newest first.
	List(ctx context.Context, opts ListOptions) ([]Notification, error)

	// MarkRead marks the given notifications as read.
	MarkRead(ctx context.Context, ids ...string) error

	// Delete removes the given notifications.
	Delete(ctx context.Context, ids ...string) error

	// CountUnread returns the number of unread notifications.
	CountUnread(ctx context.Context) (int, error)
}

// ListOptions filters and pages List results.
type ListOptions struct {
	Limit      int        // maximum results, 0 = no limit
	Offset     int        // results to skip
	OnlyUnread bool       // only unread notifications
	Types      []Type     // restrict to these types when non-empty
	Since      *time.Time // only notifications created after this time
}
