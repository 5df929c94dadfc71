// Package aggregate computes batch-level statistics over scored
// reviews: the blended overall score, sentiment distribution and trend
// label, per-aspect sentiment, the rating histogram, and mean length.
package aggregate

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/reviewlens/reviewlens/pkg/reviewlens/aspects"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/ingest"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/sentiment"
)

// Overall-score blend: star ratings are the more reliable signal, so
// they carry 70% of the weight; sentiment, rescaled from [-1,1] onto
// [0,5], carries the rest.
const (
	ratingWeight    = 0.7
	sentimentWeight = 0.3
)

// Review is the minimal review view the aggregator needs. Rating holds
// the caller-resolved value (missing ratings default to 3 upstream) and
// may be out of the 1..5 range; out-of-range values still enter the
// rating mean but never the histogram.
type Review struct {
	Text   string
	Rating int
}

// Distribution tallies reviews per sentiment class.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the number of classified reviews.
func (d Distribution) Total() int {
	return d.Positive + d.Neutral + d.Negative
}

// AspectStat is one aspect's aggregated sentence sentiment.
type AspectStat struct {
	Name         string
	AvgSentiment float64
	MentionCount int
}

// Aggregator derives batch statistics using the shared scorer and
// aspect classifier.
type Aggregator struct {
	scorer     *sentiment.Scorer
	classifier *aspects.Classifier
}

// New creates an aggregator.
func New(scorer *sentiment.Scorer, classifier *aspects.Classifier) *Aggregator {
	return &Aggregator{scorer: scorer, classifier: classifier}
}

// OverallScore blends the mean star rating with the mean full-text
// sentiment into a 0-5 score, rounded to two decimals. Returns 0 for an
// empty batch.
func (a *Aggregator) OverallScore(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var ratingSum, sentimentSum float64
	for _, r := range reviews {
		ratingSum += float64(r.Rating)
		sentimentSum += a.scorer.Score(r.Text)
	}
	n := float64(len(reviews))
	avgRating := ratingSum / n
	avgSentiment := sentimentSum / n

	score := avgRating*ratingWeight + (avgSentiment+1)*2.5*sentimentWeight
	return round2(score)
}

// Distribution classifies each review's full text once and tallies the
// classes. The three counts always sum to len(reviews).
func (a *Aggregator) Distribution(reviews []Review) Distribution {
	var d Distribution
	for _, r := range reviews {
		switch sentiment.Classify(a.scorer.Score(r.Text)) {
		case sentiment.Positive:
			d.Positive++
		case sentiment.Negative:
			d.Negative++
		default:
			d.Neutral++
		}
	}
	return d
}

// TrendLabel renders the distribution as a human-readable skew label.
// The threshold ladder is checked in order; percentages print with one
// decimal.
func TrendLabel(d Distribution) string {
	total := d.Total()
	if total == 0 {
		return "No reviews available"
	}

	posPct := float64(d.Positive) / float64(total) * 100
	negPct := float64(d.Negative) / float64(total) * 100

	switch {
	case posPct > 70:
		return fmt.Sprintf("Overwhelmingly Positive (%.1f%% positive)", posPct)
	case posPct > 50:
		return fmt.Sprintf("Mostly Positive (%.1f%% positive)", posPct)
	case negPct > 50:
		return fmt.Sprintf("Mostly Negative (%.1f%% negative)", negPct)
	case negPct > 30:
		return fmt.Sprintf("Mixed with Negative Lean (%.1f%% negative)", negPct)
	default:
		return fmt.Sprintf("Balanced/Mixed (%.1f%% positive, %.1f%% negative)", posPct, negPct)
	}
}

// Aspects scores every sentence across the batch, groups scores by
// aspect, and returns each mentioned aspect's mean sentiment (rounded
// to two decimals) and mention count. Aspects never mentioned are
// absent. Order is first-mention order, which downstream synthesis
// relies on for deterministic tie-breaking.
func (a *Aggregator) Aspects(reviews []Review) []AspectStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, r := range reviews {
		for _, sentence := range ingest.Sentences(r.Text) {
			aspect := a.classifier.Identify(sentence)
			if _, ok := counts[aspect]; !ok {
				order = append(order, aspect)
			}
			sums[aspect] += a.scorer.Score(sentence)
			counts[aspect]++
		}
	}

	out := make([]AspectStat, 0, len(order))
	for _, name := range order {
		out = append(out, AspectStat{
			Name:         name,
			AvgSentiment: round2(sums[name] / float64(counts[name])),
			MentionCount: counts[name],
		})
	}
	return out
}

// RatingDistribution counts reviews per star value 1..5. All five keys
// are always present; ratings outside the range are silently excluded.
func RatingDistribution(reviews []Review) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			dist[r.Rating]++
		}
	}
	return dist
}

// AverageLength returns the mean character count of the raw review
// texts. Returns 0 for an empty batch.
func AverageLength(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var total int
	for _, r := range reviews {
		total += utf8.RuneCountInString(r.Text)
	}
	return float64(total) / float64(len(reviews))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
