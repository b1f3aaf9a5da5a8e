// Package pk maintains the bijection between caller-supplied primary keys
// and dense internal slots.
package pk

import (
	"iter"

	"github.com/hupe1980/simgo/core"
)

// Bijection is an in-memory two-way mapping between primary keys and
// slots, backed by a pair of Go maps so lookup and delete stay O(1) in
// both directions.
//
// It carries no locking: the owning engine is externally synchronized.
type Bijection[K comparable] struct {
	keyToSlot map[K]core.Slot
	slotToKey map[core.Slot]K
}

// NewBijection creates an empty bijection.
func NewBijection[K comparable]() *Bijection[K] {
	return &Bijection[K]{
		keyToSlot: make(map[K]core.Slot),
		slotToKey: make(map[core.Slot]K),
	}
}

// Lookup returns the slot for the given key.
func (b *Bijection[K]) Lookup(key K) (core.Slot, bool) {
	slot, ok := b.keyToSlot[key]
	return slot, ok
}

// LookupKey returns the key for the given slot.
func (b *Bijection[K]) LookupKey(slot core.Slot) (K, bool) {
	key, ok := b.slotToKey[slot]
	return key, ok
}

// Insert records the key/slot pair in both directions.
// The key must not be live; callers delete stale entries first.
func (b *Bijection[K]) Insert(key K, slot core.Slot) {
	b.keyToSlot[key] = slot
	b.slotToKey[slot] = key
}

// Delete removes the key and its slot from both directions.
// Returns the slot that was removed, or false if the key is not live.
func (b *Bijection[K]) Delete(key K) (core.Slot, bool) {
	slot, ok := b.keyToSlot[key]
	if !ok {
		return 0, false
	}
	delete(b.keyToSlot, key)
	delete(b.slotToKey, slot)
	return slot, true
}

// Len returns the number of live pairs.
func (b *Bijection[K]) Len() int {
	return len(b.keyToSlot)
}

// All returns an iterator over all live key/slot pairs.
// Iteration order is unspecified.
func (b *Bijection[K]) All() iter.Seq2[K, core.Slot] {
	return func(yield func(K, core.Slot) bool) {
		for key, slot := range b.keyToSlot {
			if !yield(key, slot) {
				return
			}
		}
	}
}
