// Package slotset implements sets of engine slots backed by Roaring
// Bitmaps. A slot set is the posting list of the reverse mapping: for a
// vocabulary token it records every slot whose entry contains that token.
package slotset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/simgo/core"
)

// Set is a set of core.Slot values.
// It wraps the official roaring implementation.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty slot set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Add adds a slot to the set.
func (s *Set) Add(slot core.Slot) {
	s.rb.Add(uint32(slot))
}

// Remove removes a slot from the set.
func (s *Set) Remove(slot core.Slot) {
	s.rb.Remove(uint32(slot))
}

// Contains checks if a slot is in the set.
func (s *Set) Contains(slot core.Slot) bool {
	return s.rb.Contains(uint32(slot))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Iterator returns an iterator over the set in ascending slot order.
func (s *Set) Iterator() iter.Seq[core.Slot] {
	return func(yield func(core.Slot) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(core.Slot(it.Next())) {
				return
			}
		}
	}
}
