package pk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/simgo/core"
)

func TestBijection(t *testing.T) {
	b := NewBijection[string]()

	// 1. Insert
	b.Insert("alpha", core.Slot(0))
	b.Insert("beta", core.Slot(1))
	require.Equal(t, 2, b.Len())

	// 2. Lookup both directions
	slot, ok := b.Lookup("alpha")
	assert.True(t, ok)
	assert.Equal(t, core.Slot(0), slot)

	key, ok := b.LookupKey(core.Slot(1))
	assert.True(t, ok)
	assert.Equal(t, "beta", key)

	_, ok = b.Lookup("gamma")
	assert.False(t, ok)

	// 3. Delete removes both directions
	slot, ok = b.Delete("alpha")
	require.True(t, ok)
	assert.Equal(t, core.Slot(0), slot)

	_, ok = b.Lookup("alpha")
	assert.False(t, ok)
	_, ok = b.LookupKey(core.Slot(0))
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())

	// 4. Re-delete is a no-op
	_, ok = b.Delete("alpha")
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())
}

func TestBijectionAll(t *testing.T) {
	b := NewBijection[int]()
	b.Insert(10, core.Slot(0))
	b.Insert(20, core.Slot(1))
	b.Insert(30, core.Slot(2))

	seen := make(map[int]core.Slot)
	for key, slot := range b.All() {
		seen[key] = slot
	}

	assert.Equal(t, map[int]core.Slot{
		10: core.Slot(0),
		20: core.Slot(1),
		30: core.Slot(2),
	}, seen)
}
