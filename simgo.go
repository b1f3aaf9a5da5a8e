package simgo

import (
	"slices"
	"time"

	"github.com/hupe1980/simgo/core"
	"github.com/hupe1980/simgo/internal/slotset"
	"github.com/hupe1980/simgo/pk"
	"github.com/hupe1980/simgo/similarity"
	"github.com/hupe1980/simgo/tokenizer"
)

// Engine is an in-memory fuzzy full-text lookup index.
//
// K is the caller-supplied identifier type. Identifiers are opaque: they
// are never tokenized or searched, only returned. Re-inserting an
// existing identifier replaces its entry.
//
// The zero value is not usable; create engines with New or
// LoadFromReader/LoadFromStore.
type Engine[K comparable] struct {
	opts      options
	threshold float64
	tokenizer *tokenizer.Tokenizer
	sim       similarity.Func

	ids      *pk.Bijection[K]
	forward  map[core.Slot][]string
	reverse  map[string]*slotset.Set
	nextSlot core.Slot
}

// New creates an engine.
//
// Without options the engine lowercases input, splits on whitespace, and
// matches with Jaro-Winkler similarity above a 0.8 threshold.
func New[K comparable](optFns ...Option) (*Engine[K], error) {
	return newEngine[K](applyOptions(optFns))
}

func newEngine[K comparable](o options) (*Engine[K], error) {
	threshold := similarity.DefaultThreshold(o.metric)
	if o.threshold != nil {
		threshold = *o.threshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, &ErrThresholdOutOfRange{Threshold: threshold}
	}

	sim, err := similarity.Provider(o.metric, threshold)
	if err != nil {
		return nil, &ErrInvalidMetric{Metric: o.metric, cause: err}
	}

	return &Engine[K]{
		opts:      o,
		threshold: threshold,
		tokenizer: tokenizer.New(tokenizer.Options{
			CaseSensitive:  o.caseSensitive,
			StopWhitespace: o.stopWhitespace,
			StopWords:      o.stopWords,
		}),
		sim:     sim,
		ids:     pk.NewBijection[K](),
		forward: make(map[core.Slot][]string),
		reverse: make(map[string]*slotset.Set),
	}, nil
}

// Insert adds an entry to the engine, replacing any existing entry with
// the same identifier.
//
// Content is tokenized according to the engine options. By default
// whitespace (including tabs) separates tokens; see WithStopWords and
// WithStopWhitespace.
//
// Note that the identifier itself is not searchable. Add it to the
// content if you would like to search on it.
func (e *Engine[K]) Insert(id K, content string) {
	e.InsertTokens(id, content)
}

// InsertTokens adds an entry from multiple content fragments, replacing
// any existing entry with the same identifier.
//
// The engine applies its tokenizer to every fragment. Use this method
// when the host has special tokenization rules in addition to the
// built-in ones.
//
// An entry whose fragments normalize to zero tokens is legal; it simply
// never matches a query.
func (e *Engine[K]) InsertTokens(id K, fragments ...string) {
	start := time.Now()

	e.deleteEntry(id)

	slot := e.nextSlot
	e.nextSlot++

	tokens := e.tokenizer.Tokenize(fragments...)
	slices.Sort(tokens)
	tokens = slices.Compact(tokens)

	for _, token := range tokens {
		set := e.reverse[token]
		if set == nil {
			set = slotset.New()
			e.reverse[token] = set
		}
		set.Add(slot)
	}

	e.forward[slot] = tokens
	e.ids.Insert(id, slot)

	duration := time.Since(start)
	e.opts.logger.LogInsert(len(tokens), duration)
	e.opts.metricsCollector.RecordInsert(len(tokens), duration)
}

// Search returns the identifiers of entries similar to pattern, sorted
// by descending relevance.
//
// The pattern is tokenized with the same rules as inserted content, so
// normalization applies symmetrically to both sides.
func (e *Engine[K]) Search(pattern string) []K {
	return e.SearchTokens(pattern)
}

// SearchTokens searches with multiple pattern fragments and returns
// matching identifiers sorted by descending relevance.
//
// Every distinct vocabulary token is scored against every distinct query
// token; a vocabulary token qualifies when its best score is strictly
// greater than the engine threshold, and contributes that best score to
// the total of every entry containing it. Ties are broken by insertion
// order, so results are deterministic.
func (e *Engine[K]) SearchTokens(fragments ...string) []K {
	start := time.Now()

	queryTokens := e.tokenizer.Tokenize(fragments...)
	slices.Sort(queryTokens)
	queryTokens = slices.Compact(queryTokens)

	// Best qualifying score per vocabulary token across all query tokens.
	tokenScores := make(map[string]float64)
	for _, queryToken := range queryTokens {
		for token := range e.reverse {
			score := e.sim(token, queryToken)
			if score > e.threshold && score > tokenScores[token] {
				tokenScores[token] = score
			}
		}
	}

	// Fold token scores into per-slot totals via the reverse mapping.
	slotScores := make(map[core.Slot]float64)
	for token, score := range tokenScores {
		for slot := range e.reverse[token].Iterator() {
			slotScores[slot] += score
		}
	}

	type scored struct {
		slot  core.Slot
		score float64
	}

	ranked := make([]scored, 0, len(slotScores))
	for slot, score := range slotScores {
		ranked = append(ranked, scored{slot: slot, score: score})
	}
	slices.SortFunc(ranked, func(a, b scored) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		// Equal totals: older entries first.
		if a.slot < b.slot {
			return -1
		}
		if a.slot > b.slot {
			return 1
		}
		return 0
	})

	results := make([]K, 0, len(ranked))
	for _, r := range ranked {
		id, ok := e.ids.LookupKey(r.slot)
		if !ok {
			corruptf("slot %d scored in search but has no identifier", r.slot)
		}
		results = append(results, id)
	}

	duration := time.Since(start)
	e.opts.logger.LogSearch(len(queryTokens), len(results), duration)
	e.opts.metricsCollector.RecordSearch(len(queryTokens), len(results), duration)

	return results
}

// Delete removes the entry with the given identifier.
// Deleting an unknown identifier is a no-op.
func (e *Engine[K]) Delete(id K) {
	start := time.Now()

	found := e.deleteEntry(id)

	duration := time.Since(start)
	e.opts.logger.LogDelete(found, duration)
	e.opts.metricsCollector.RecordDelete(found, duration)
}

// deleteEntry tears down the slot bookkeeping for id: reverse-map
// postings first, then the forward entry, then the bijection pair.
func (e *Engine[K]) deleteEntry(id K) bool {
	slot, ok := e.ids.Lookup(id)
	if !ok {
		return false
	}

	tokens, ok := e.forward[slot]
	if !ok {
		corruptf("slot %d live in bijection but missing from forward mapping", slot)
	}

	for _, token := range tokens {
		set := e.reverse[token]
		if set == nil || !set.Contains(slot) {
			corruptf("token %q of slot %d missing from reverse mapping", token, slot)
		}
		set.Remove(slot)
		if set.IsEmpty() {
			delete(e.reverse, token)
		}
	}

	delete(e.forward, slot)
	e.ids.Delete(id)

	return true
}

// Len returns the number of live entries.
func (e *Engine[K]) Len() int {
	return e.ids.Len()
}

// VocabularySize returns the number of distinct indexed tokens.
func (e *Engine[K]) VocabularySize() int {
	return len(e.reverse)
}

// Threshold returns the effective score threshold.
func (e *Engine[K]) Threshold() float64 {
	return e.threshold
}

// Metric returns the configured similarity metric.
func (e *Engine[K]) Metric() similarity.Metric {
	return e.opts.metric
}
