package notifications

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-memory Store implementation. It is safe for
// concurrent use and keeps notifications in arrival order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Notification
}

// NewMemoryStore creates an empty in-memory notification store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Upsert(ctx context.Context, notif Notification) error {
	if notif.ID == "" {
		return ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == notif.ID {
			// Keep local read state; the backend does not track it.
			notif.Read = s.items[i].Read
			notif.ReadAt = s.items[i].ReadAt
			s.items[i] = notif
			return nil
		}
	}

	s.items = append(s.items, notif)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			notif := s.items[i]
			return &notif, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) List(ctx context.Context, opts ListOptions) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]Notification, 0, len(s.items))
	for _, n := range s.items {
		if opts.OnlyUnread && n.Read {
			continue
		}
		if len(opts.Types) > 0 && !slices.Contains(opts.Types, n.Type) {
			continue
		}
		if opts.Since != nil && !n.CreatedAt.After(*opts.Since) {
			continue
		}
		filtered = append(filtered, n)
	}

	// Newest first.
	slices.SortStableFunc(filtered, func(a, b Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if opts.Offset > 0 {
		if opts.Offset >= len(filtered) {
			return []Notification{}, nil
		}
		filtered = filtered[opts.Offset:]
	}
	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	return filtered, nil
}

func (s *MemoryStore) MarkRead(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if slices.Contains(ids, s.items[i].ID) {
			s.items[i].MarkAsRead()
		}
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(n Notification) bool {
		return slices.Contains(ids, n.ID)
	})
	return nil
}

func (s *MemoryStore) CountUnread(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.items {
		if !s.items[i].Read {
			count++
		}
	}
	return count, nil
}
