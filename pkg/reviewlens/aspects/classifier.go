// Package aspects attributes sentences to fixed product-feature
// categories by keyword matching.
package aspects

import (
	"strings"

	"github.com/reviewlens/reviewlens/pkg/reviewlens/lexicon"
)

// General is the fallback aspect for sentences matching no category.
const General = "general"

// Classifier maps a sentence to one aspect category.
type Classifier struct {
	categories []lexicon.Category
}

// NewClassifier creates a classifier over the lexicon's aspect table.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{categories: lex.Aspects()}
}

// Identify returns the aspect for the sentence: the first category, in
// table order, with any keyword occurring as a raw substring of the
// lowercased sentence. Substring matching can fire inside longer words
// ("cheap" inside "cheaper"); this matches the scoring contract and
// must not be tightened to word boundaries.
func (c *Classifier) Identify(sentence string) string {
	lower := strings.ToLower(sentence)
	for _, cat := range c.categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name
			}
		}
	}
	return General
}
