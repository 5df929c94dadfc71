package ingest

import (
	"strings"
)

// minTokenLen is the shortest token kept after normalization. Tokens of
// this length or shorter carry too little signal to score.
const minTokenLen = 2

// Tokenizer normalizes raw review text into scoring tokens.
//
// Normalization is deliberately ASCII-only: the text is lowercased,
// every character outside [a-z0-9] and whitespace becomes a space, and
// the result is split on whitespace. Stopwords and short tokens are
// dropped. Order is preserved and duplicates are kept, so downstream
// counters weight repeated words.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into normalized tokens, removing stopwords and
// tokens of length <= 2.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			current.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			current.WriteRune(r + ('a' - 'A'))
		default:
			// Anything outside [a-z0-9] acts as a separator, whitespace
			// and punctuation alike.
			if current.Len() > 0 {
				if word := t.keep(current.String()); word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	if current.Len() > 0 {
		if word := t.keep(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// keep applies the stopword and length filters, returning "" for
// tokens that should be discarded.
func (t *Tokenizer) keep(token string) string {
	if len(token) <= minTokenLen {
		return ""
	}
	if _, ok := t.stopwords[token]; ok {
		return ""
	}
	return token
}
