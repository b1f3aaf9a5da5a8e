// Package tokenizer turns raw text into normalized tokens.
//
// Tokenization is the normalization boundary of the index: indexed content
// and search queries pass through the same rules, so a query matches
// content exactly when both normalize to similar tokens.
//
// # Pipeline
//
//  1. Case folding (unless CaseSensitive)
//  2. Unicode whitespace split (if StopWhitespace)
//  3. Terminator split on each configured stop word, in order
//  4. Empty tokens discarded
package tokenizer
