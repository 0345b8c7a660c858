package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Center is the notification hub the UI talks to. It ingests notification
// batches arriving over the real-time tracker and answers view queries.
type Center struct {
	store  Store
	logger *slog.Logger
}

// CenterOption configures a Center.
type CenterOption func(*Center)

// WithLogger sets the logger used for ingest diagnostics.
func WithLogger(logger *slog.Logger) CenterOption {
	return func(c *Center) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCenter creates a notification center backed by the given store.
func NewCenter(store Store, opts ...CenterOption) *Center {
	c := &Center{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ingest stores a batch of incoming notifications. Entries without an ID
// get one assigned, entries without a creation time get stamped now. A bad
// entry is logged and skipped rather than failing the batch; real-time
// delivery is best effort.
func (c *Center) Ingest(ctx context.Context, notifs []Notification) error {
	var failed int
	for _, n := range notifs {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.CreatedAt.IsZero() {
			n.CreatedAt = time.Now()
		}

		if err := c.store.Upsert(ctx, n); err != nil {
			failed++
			c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to store incoming notification",
				slog.String("notification_id", n.ID),
				slog.Any("error", err),
			)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d entries", ErrPartialIngest, failed, len(notifs))
	}
	return nil
}

// List returns notifications, newest first.
func (c *Center) List(ctx context.Context, opts ListOptions) ([]Notification, error) {
	return c.store.List(ctx, opts)
}

// Get retrieves a single notification.
func (c *Center) Get(ctx context.Context, id string) (*Notification, error) {
	return c.store.Get(ctx, id)
}

// MarkRead marks the given notifications as read.
func (c *Center) MarkRead(ctx context.Context, ids ...string) error {
	return c.store.MarkRead(ctx, ids...)
}

// MarkAllRead marks every unread notification as read.
func (c *Center) MarkAllRead(ctx context.Context) error {
	unread, err := c.store.List(ctx, ListOptions{OnlyUnread: true})
	if err != nil {
		return err
	}
	if len(unread) == 0 {
		return nil
	}

	ids := make([]string, len(unread))
	for i, n := range unread {
		ids[i] = n.ID
	}
	return c.store.MarkRead(ctx, ids...)
}

// Delete removes the given notifications.
func (c *Center) Delete(ctx context.Context, ids ...string) error {
	return c.store.Delete(ctx, ids...)
}

// CountUnread returns the unread badge count.
func (c *Center) CountUnread(ctx context.Context) (int, error) {
	return c.store.CountUnread(ctx)
}
