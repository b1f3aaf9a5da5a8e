package tokenizer

import "strings"

// Options controls how raw text is turned into tokens.
type Options struct {
	// CaseSensitive disables lowercasing of input text.
	// Default: false.
	CaseSensitive bool

	// StopWhitespace splits fragments on Unicode whitespace
	// (spaces, tabs, newlines).
	// Default: true.
	StopWhitespace bool

	// StopWords is an ordered list of substrings that act as additional
	// token separators. Each stop word is applied in order and removed
	// from the output (terminator split).
	StopWords []string
}

// DefaultOptions returns the default tokenizer options.
func DefaultOptions() Options {
	return Options{
		CaseSensitive:  false,
		StopWhitespace: true,
		StopWords:      nil,
	}
}

// Tokenizer normalizes raw text into tokens. It is pure and deterministic:
// the same input always yields the same token sequence, with no side
// effects. The same tokenizer must be used for indexed content and for
// queries so that both sides are normalized identically.
type Tokenizer struct {
	opts Options
}

// New creates a Tokenizer with the given options.
func New(opts Options) *Tokenizer {
	return &Tokenizer{opts: opts}
}

// Tokenize normalizes the fragments into an ordered token sequence.
// Empty tokens are discarded. The result may contain duplicates; callers
// that need a set must deduplicate themselves.
func (t *Tokenizer) Tokenize(fragments ...string) []string {
	tokens := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if !t.opts.CaseSensitive {
			fragment = strings.ToLower(fragment)
		}
		tokens = append(tokens, fragment)
	}

	if t.opts.StopWhitespace {
		split := make([]string, 0, len(tokens))
		for _, token := range tokens {
			split = append(split, strings.Fields(token)...)
		}
		tokens = split
	}

	for _, stopWord := range t.opts.StopWords {
		if stopWord == "" {
			continue
		}
		split := make([]string, 0, len(tokens))
		for _, token := range tokens {
			split = append(split, strings.Split(token, stopWord)...)
		}
		tokens = split
	}

	filtered := tokens[:0]
	for _, token := range tokens {
		if token != "" {
			filtered = append(filtered, token)
		}
	}

	return filtered
}
