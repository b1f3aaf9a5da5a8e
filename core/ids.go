package core

// Slot is a dense, internal handle for a live entry within an engine.
// It is strictly 32-bit, allowing for max 4 Billion live entries.
// Used for all hot-path structures (posting bitmaps, score accumulators).
type Slot uint32
