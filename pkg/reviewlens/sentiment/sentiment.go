// Package sentiment scores text against the positive/negative word
// lexicons and classifies the result into three sentiment classes.
package sentiment

import (
	"github.com/reviewlens/reviewlens/pkg/reviewlens/ingest"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/lexicon"
)

// Class is a sentiment classification label.
type Class string

const (
	Positive Class = "positive"
	Neutral  Class = "neutral"
	Negative Class = "negative"
)

// Classification thresholds on the signed hit ratio. Fixed constants,
// not configuration.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Scorer computes lexicon-based sentiment scores.
type Scorer struct {
	lex *lexicon.Lexicon
	tok *ingest.Tokenizer
}

// NewScorer creates a scorer over the given lexicon and tokenizer.
func NewScorer(lex *lexicon.Lexicon, tok *ingest.Tokenizer) *Scorer {
	return &Scorer{lex: lex, tok: tok}
}

// Score returns the signed lexicon-hit ratio for the text, in [-1, 1].
// Each token occurrence counts, so repeated words weigh more. Text with
// no lexicon hits scores 0.
func (s *Scorer) Score(text string) float64 {
	var positive, negative int
	for _, token := range s.tok.Tokenize(text) {
		if s.lex.IsPositive(token) {
			positive++
		}
		if s.lex.IsNegative(token) {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return 0
	}
	return float64(positive-negative) / float64(total)
}

// Classify maps a score onto a sentiment class: above 0.2 is positive,
// below -0.2 is negative, anything between is neutral.
func Classify(score float64) Class {
	switch {
	case score > positiveThreshold:
		return Positive
	case score < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
