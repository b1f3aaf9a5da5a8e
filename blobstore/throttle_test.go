package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottledStorePassThrough(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	// bytesPerSec <= 0 disables throttling entirely.
	store := NewThrottledStore(inner, 0)

	require.NoError(t, store.Put(ctx, "a", []byte("data")))

	data, err := ReadAll(ctx, store, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Open(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThrottledStoreLimitsPut(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	// 1 KiB/s budget, 2 KiB payload: the second KiB must wait.
	store := NewThrottledStore(inner, 1024)

	start := time.Now()
	require.NoError(t, store.Put(ctx, "big", make([]byte, 2048)))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 500*time.Millisecond)
}

func TestThrottledStoreContextCancel(t *testing.T) {
	inner := NewMemoryStore()
	store := NewThrottledStore(inner, 1024)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := store.Put(ctx, "big", make([]byte, 1<<20))
	assert.Error(t, err)
}
