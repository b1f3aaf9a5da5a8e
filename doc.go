// Package simgo provides a simple, lightweight fuzzy full-text lookup
// index that works entirely in memory.
//
// Callers register (identifier, free-text content) pairs and later issue
// free-text queries that return registered identifiers ranked by textual
// similarity, tolerating typos and partial words. Simgo is an embedded
// component for hosts like autocomplete boxes and record pickers, not a
// standalone service.
//
// # Quick Start
//
//	engine, _ := simgo.New[uint32]()
//
//	engine.Insert(1, "Things Fall Apart")
//	engine.Insert(2, "The Old Man and the Sea")
//	engine.Insert(3, "James Joyce")
//
//	results := engine.Search("thngs apa") // => [1]
//
// # Configuration
//
// Engines are configured at construction with functional options:
//
//	engine, err := simgo.New[string](
//	    simgo.WithStopWords("/", "\\"),
//	    simgo.WithThreshold(0.75),
//	    simgo.WithMetric(similarity.MetricLevenshtein),
//	)
//
// Invalid configuration (e.g. a threshold outside [0,1]) is rejected with
// a descriptive error rather than silently clamped.
//
// # Scoring
//
// Every query token is scored against every distinct indexed token with
// the configured similarity metric. Tokens scoring strictly above the
// threshold contribute their best score to each entry that contains them;
// entries are returned in descending total score. The vocabulary scan is
// brute force, O(|query tokens| x |vocabulary|) per search, a deliberate
// simplicity-over-scale choice for small-to-medium vocabularies.
//
// # Concurrency
//
// The engine has no internal locking. All operations are synchronous and
// run to completion. A host that shares an engine across goroutines must
// enforce a single-writer/multiple-reader discipline, e.g. one
// sync.RWMutex guarding the whole engine.
//
// # Snapshots
//
// Engine state can be serialized and restored, locally or via a blob
// store (local filesystem, S3, MinIO):
//
//	var buf bytes.Buffer
//	_ = engine.SaveToWriter(&buf)
//	restored, _ := simgo.LoadFromReader[uint32](&buf)
package simgo
