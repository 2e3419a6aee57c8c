package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/offlink/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestAppend_AssignsOrderedKeys(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	k1, err := store.Append(ctx, []byte("first"))
	require.NoError(t, err)
	k2, err := store.Append(ctx, []byte("second"))
	require.NoError(t, err)

	assert.Greater(t, k2, k1)
}

func TestList_OldestFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	payloads := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	for _, p := range payloads {
		_, err := store.Append(ctx, p)
		require.NoError(t, err)
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i, entry := range entries {
		assert.Equal(t, payloads[i], entry.Payload)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	k1, err := store.Append(ctx, []byte("keep"))
	require.NoError(t, err)
	k2, err := store.Append(ctx, []byte("remove"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, k2))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, k1, entries[0].Key)
}

func TestDelete_NotFound(t *testing.T) {
	store := newTestStorage(t)

	err := store.Delete(context.Background(), 12345)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestLen(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	n, err := store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = store.Append(ctx, []byte("x"))
	require.NoError(t, err)

	n, err = store.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueue_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "queue.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	var keys []uint64
	for i := 0; i < 5; i++ {
		key, err := store.Append(ctx, []byte(fmt.Sprintf("entry-%d", i)))
		require.NoError(t, err)
		keys = append(keys, key)
	}

	require.NoError(t, store.Close())

	// Открываем заново: содержимое и порядок обязаны сохраниться
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	entries, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	for i, entry := range entries {
		assert.Equal(t, keys[i], entry.Key)
		assert.Equal(t, []byte(fmt.Sprintf("entry-%d", i)), entry.Payload)
	}
}
