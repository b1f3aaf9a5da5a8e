package slotset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/simgo/core"
)

func TestSet(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.Add(core.Slot(3))
	s.Add(core.Slot(1))
	s.Add(core.Slot(1)) // duplicate add is a no-op

	assert.False(t, s.IsEmpty())
	assert.True(t, s.Contains(core.Slot(1)))
	assert.True(t, s.Contains(core.Slot(3)))
	assert.False(t, s.Contains(core.Slot(2)))

	s.Remove(core.Slot(1))
	assert.False(t, s.Contains(core.Slot(1)))

	s.Remove(core.Slot(3))
	assert.True(t, s.IsEmpty())

	// removing from an empty set is a no-op
	s.Remove(core.Slot(3))
	assert.True(t, s.IsEmpty())
}

func TestSetIteratorOrder(t *testing.T) {
	s := New()
	for _, slot := range []core.Slot{5, 0, 2, 9} {
		s.Add(slot)
	}

	var got []core.Slot
	for slot := range s.Iterator() {
		got = append(got, slot)
	}

	assert.Equal(t, []core.Slot{0, 2, 5, 9}, got)
}
