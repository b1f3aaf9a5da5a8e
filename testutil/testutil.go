package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// RNG encapsulates a seeded random number generator for reproducible
// test data. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Word returns a random lowercase ASCII word with length in
// [minLen, maxLen].
func (r *RNG) Word(minLen, maxLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wordLocked(minLen, maxLen)
}

func (r *RNG) wordLocked(minLen, maxLen int) string {
	length := minLen + r.rand.Intn(maxLen-minLen+1)
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[r.rand.Intn(len(letters))]
	}
	return string(b)
}

// Phrase returns numWords random words joined by single spaces.
func (r *RNG) Phrase(numWords, minLen, maxLen int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	words := make([]string, numWords)
	for i := range words {
		words[i] = r.wordLocked(minLen, maxLen)
	}
	return strings.Join(words, " ")
}

// Typo returns word with one random single-character edit applied:
// a deletion, a substitution, or an adjacent transposition. Words
// shorter than two characters are returned unchanged.
func (r *RNG) Typo(word string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(word) < 2 {
		return word
	}

	b := []byte(word)
	pos := r.rand.Intn(len(b) - 1)

	switch r.rand.Intn(3) {
	case 0: // deletion
		return string(append(b[:pos], b[pos+1:]...))
	case 1: // substitution
		b[pos] = letters[r.rand.Intn(len(letters))]
		return string(b)
	default: // adjacent transposition
		b[pos], b[pos+1] = b[pos+1], b[pos]
		return string(b)
	}
}
