package session

import (
	"context"
	"errors"
)

// Well-known keys used by page-level code.
const (
	KeyAuthToken = "auth_token"
	KeyUserRole  = "user_role"
	KeyUserID    = "user_id"
)

var (
	// ErrNotFound is returned when a key has no value.
	ErrNotFound = errors.New("session: key not found")

	// ErrEmptyKey is returned when a key is the empty string.
	ErrEmptyKey = errors.New("session: key cannot be empty")
)

// Store is a persisted key-value store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Set stores a value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key; used on logout.
	Clear(ctx context.Context) error
}
