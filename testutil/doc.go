// Package testutil provides shared helpers for tests and benchmarks:
// a seeded, thread-safe RNG and generators for random words, phrases
// and typo variants.
package testutil
