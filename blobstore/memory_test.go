package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("PutAndOpen", func(t *testing.T) {
		err := store.Put(ctx, "a/one", []byte("hello"))
		require.NoError(t, err)

		data, err := ReadAll(ctx, store, "a/one")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("OpenMissing", func(t *testing.T) {
		_, err := store.Open(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutReplaces", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a/one", []byte("world")))

		data, err := ReadAll(ctx, store, "a/one")
		require.NoError(t, err)
		assert.Equal(t, []byte("world"), data)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "a/two", []byte("x")))
		require.NoError(t, store.Put(ctx, "b/one", []byte("y")))

		names, err := store.List(ctx, "a/")
		require.NoError(t, err)
		assert.Equal(t, []string{"a/one", "a/two"}, names)

		all, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "a/one"))
		_, err := store.Open(ctx, "a/one")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting a missing blob is not an error
		assert.NoError(t, store.Delete(ctx, "a/one"))
	})

	t.Run("CopyOnRead", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "immutable", []byte("abc")))

		data, err := ReadAll(ctx, store, "immutable")
		require.NoError(t, err)
		data[0] = 'z'

		again, err := ReadAll(ctx, store, "immutable")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})
}
