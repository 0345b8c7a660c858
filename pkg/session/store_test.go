package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbadelivery/deliverykit/pkg/session"
)

// storeContract exercises the behavior every Store must share.
func storeContract(t *testing.T, store session.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, session.KeyAuthToken, "tok-123"))
		got, err := store.Get(ctx, session.KeyAuthToken)
		require.NoError(t, err)
		assert.Equal(t, "tok-123", got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, session.KeyUserRole, "customer"))
		require.NoError(t, store.Set(ctx, session.KeyUserRole, "courier"))
		got, err := store.Get(ctx, session.KeyUserRole)
		require.NoError(t, err)
		assert.Equal(t, "courier", got)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.Set(ctx, "", "x"), session.ErrEmptyKey)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, session.KeyUserID, "u1"))
		require.NoError(t, store.Delete(ctx, session.KeyUserID))
		_, err := store.Get(ctx, session.KeyUserID)
		assert.ErrorIs(t, err, session.ErrNotFound)

		// Absent keys delete without error.
		assert.NoError(t, store.Delete(ctx, session.KeyUserID))
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, session.KeyAuthToken, "tok"))
		require.NoError(t, store.Clear(ctx))
		_, err := store.Get(ctx, session.KeyAuthToken)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	storeContract(t, session.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	storeContract(t, session.NewFileStore(filepath.Join(t.TempDir(), "session.json")))
}

func TestFileStorePersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")

	store := session.NewFileStore(path)
	require.NoError(t, store.Set(ctx, session.KeyAuthToken, "tok-123"))
	require.NoError(t, store.Set(ctx, session.KeyUserID, "u42"))

	// A fresh store over the same file sees the values.
	reopened := session.NewFileStore(path)
	got, err := reopened.Get(ctx, session.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	got, err = reopened.Get(ctx, session.KeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "u42", got)
}

func TestFileStoreClearRemovesFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	store := session.NewFileStore(path)
	require.NoError(t, store.Set(ctx, session.KeyAuthToken, "tok"))
	require.NoError(t, store.Clear(ctx))

	reopened := session.NewFileStore(path)
	_, err := reopened.Get(ctx, session.KeyAuthToken)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// Clearing an already-clean store is fine.
	assert.NoError(t, store.Clear(ctx))
}
