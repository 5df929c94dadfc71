// Package keywords ranks tokens by frequency across a review batch.
package keywords

import (
	"sort"

	"github.com/reviewlens/reviewlens/pkg/reviewlens/ingest"
)

// DefaultTopN is the standard size cap for the keyword list.
const DefaultTopN = 20

// Keyword is a counted token.
type Keyword struct {
	Term  string
	Count int
}

// Extractor accumulates a global token frequency table.
type Extractor struct {
	tok *ingest.Tokenizer
}

// NewExtractor creates a keyword extractor over the shared tokenizer.
func NewExtractor(tok *ingest.Tokenizer) *Extractor {
	return &Extractor{tok: tok}
}

// Extract counts normalized tokens across all texts and returns the
// top keywords. The table is first truncated to the top 2*topN entries
// by count, entries with a count of 1 are dropped, and the first topN
// survivors are returned in descending-count order. Ties keep
// first-encountered order.
func (e *Extractor) Extract(texts []string, topN int) []Keyword {
	if topN <= 0 {
		topN = DefaultTopN
	}

	counts := make(map[string]int)
	var order []string
	for _, text := range texts {
		for _, token := range e.tok.Tokenize(text) {
			if _, ok := counts[token]; !ok {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	ranked := make([]Keyword, 0, len(order))
	for _, term := range order {
		ranked = append(ranked, Keyword{Term: term, Count: counts[term]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topN*2 {
		ranked = ranked[:topN*2]
	}

	out := make([]Keyword, 0, topN)
	for _, kw := range ranked {
		if kw.Count <= 1 {
			continue
		}
		out = append(out, kw)
		if len(out) == topN {
			break
		}
	}
	return out
}
