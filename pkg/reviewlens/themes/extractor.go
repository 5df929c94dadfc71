// Package themes mines recurring pros and cons from review sentences.
package themes

import (
	"strings"

	"github.com/reviewlens/reviewlens/pkg/reviewlens/aspects"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/ingest"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/lexicon"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/sentiment"
)

const (
	// maxThemes caps the ranked pros and cons lists.
	maxThemes = 10

	// phraseWindow is the sliding-window width for candidate phrases.
	phraseWindow = 3

	// minSentenceTokens is the fewest normalized tokens a sentence needs
	// to produce phrase candidates.
	minSentenceTokens = 3

	// Vote thresholds: a sentence leans positive on score alone above
	// positiveVote, negative below negativeVote. Looser than the
	// classification thresholds on purpose, since the star rating also
	// votes.
	positiveVote = 0.1
	negativeVote = -0.1

	// snippetLen is how many characters of the sentence go into the
	// theme key. Identical snippets merge; differently truncated
	// near-duplicates do not.
	snippetLen = 50
)

// Review is the minimal review view the extractor needs.
type Review struct {
	Text   string
	Rating int
}

// Theme is a counted recurring phrase key.
type Theme struct {
	Key   string
	Count int
}

// Bucket says which counter a sentence feeds.
type Bucket int

const (
	None Bucket = iota
	Pro
	Con
)

// Extractor mines pros and cons across a review batch.
type Extractor struct {
	lex        *lexicon.Lexicon
	tok        *ingest.Tokenizer
	scorer     *sentiment.Scorer
	classifier *aspects.Classifier
}

// NewExtractor creates a theme extractor from the shared components.
func NewExtractor(lex *lexicon.Lexicon, tok *ingest.Tokenizer, scorer *sentiment.Scorer, classifier *aspects.Classifier) *Extractor {
	return &Extractor{lex: lex, tok: tok, scorer: scorer, classifier: classifier}
}

// Extract returns the top recurring positive and negative themes, each
// capped at ten entries, sorted by count descending with ties in
// first-seen order.
func (e *Extractor) Extract(reviews []Review) (pros, cons []Theme) {
	positive := newCounter()
	negative := newCounter()

	for _, review := range reviews {
		for _, sentence := range ingest.Sentences(review.Text) {
			bucket, key := e.ClassifySentence(sentence, review.Rating)
			switch bucket {
			case Pro:
				positive.inc(key)
			case Con:
				negative.inc(key)
			}
		}
	}

	return positive.top(maxThemes), negative.top(maxThemes)
}

// ClassifySentence decides whether a sentence contributes a theme, and
// to which bucket. At most one bucket is chosen per sentence: candidate
// phrases are scanned in generation order, the positive branch is tried
// first on each, and the scan stops at the first hit.
func (e *Extractor) ClassifySentence(sentence string, rating int) (Bucket, string) {
	score := e.scorer.Score(sentence)
	aspect := e.classifier.Identify(sentence)

	tokens := e.tok.Tokenize(sentence)
	if len(tokens) < minSentenceTokens {
		return None, ""
	}

	// Both votes may hold at once (e.g. mildly negative text on a
	// five-star review); the positive branch wins the per-phrase check.
	isPositive := score > positiveVote || rating >= 4
	isNegative := score < negativeVote || rating <= 2

	for _, phrase := range candidatePhrases(tokens) {
		if isPositive && e.lex.MentionsPositive(phrase) {
			return Pro, Key(aspect, sentence)
		}
		if isNegative && e.lex.MentionsNegative(phrase) {
			return Con, Key(aspect, sentence)
		}
	}
	return None, ""
}

// candidatePhrases joins sliding windows of up to three tokens. The
// last start index is len-2, so the final one-token window is never
// generated; that asymmetry is part of the phrase-vote contract.
func candidatePhrases(tokens []string) []string {
	phrases := make([]string, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		end := i + phraseWindow
		if end > len(tokens) {
			end = len(tokens)
		}
		phrases = append(phrases, strings.Join(tokens[i:end], " "))
	}
	return phrases
}

// Key builds the dedup key for a theme: the aspect plus the first 50
// characters of the sentence, always ellipsis-terminated.
func Key(aspect, sentence string) string {
	runes := []rune(sentence)
	if len(runes) > snippetLen {
		runes = runes[:snippetLen]
	}
	return aspect + ": " + string(runes) + "..."
}

// counter counts keys while remembering first-seen order, so that
// equal-count themes rank deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top(limit int) []Theme {
	out := make([]Theme, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, Theme{Key: key, Count: c.counts[key]})
	}
	sortThemes(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
