package reviewlens

import (
	"encoding/json"
	"fmt"

	"github.com/reviewlens/reviewlens/pkg/reviewlens/aggregate"
)

// Review is one input review. Text defaults to empty when absent; a
// nil Rating means the field was absent and resolves to 3. An
// out-of-range rating is not an error: it still enters rating averages
// but is excluded from the histogram.
type Review struct {
	Text   string `json:"text"`
	Rating *int   `json:"rating,omitempty"`
}

func (r Review) ratingOrDefault() int {
	if r.Rating == nil {
		return defaultRating
	}
	return *r.Rating
}

// Rated is a convenience constructor for a review with a rating.
func Rated(text string, rating int) Review {
	return Review{Text: text, Rating: &rating}
}

// Distribution aliases the aggregate sentiment tally so callers can
// construct and read summaries without importing the aggregate package.
type Distribution = aggregate.Distribution

// Summary is the full analysis result. Field names are fixed wire
// contract; see the serialization shapes on Pair and Insights.
type Summary struct {
	OverallScore          float64                `json:"overall_score"`
	TotalReviews          int                    `json:"total_reviews"`
	SentimentDistribution aggregate.Distribution `json:"sentiment_distribution"`
	Pros                  []Pair                 `json:"pros"`
	Cons                  []Pair                 `json:"cons"`
	TopKeywords           []Pair                 `json:"top_keywords"`
	SentimentTrend        string                 `json:"sentiment_trend"`
	DetailedInsights      Insights               `json:"detailed_insights"`
	ExecutiveSummary      string                 `json:"executive_summary"`
}

// Insights groups the three secondary result structures.
type Insights struct {
	AspectAnalysis      map[string]AspectSentiment `json:"aspect_analysis"`
	RatingDistribution  map[int]int                `json:"rating_distribution"`
	AverageReviewLength float64                    `json:"average_review_length"`
}

// AspectSentiment is one aspect's aggregated sentence sentiment.
type AspectSentiment struct {
	AvgSentiment float64 `json:"avg_sentiment"`
	MentionCount int     `json:"mention_count"`
}

// Pair is a counted string. It serializes as a two-element array
// [key, count] for wire compatibility.
type Pair struct {
	Key   string
	Count int
}

// MarshalJSON encodes the pair as ["key", count].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.Key, p.Count})
}

// UnmarshalJSON decodes a ["key", count] array.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pair must be a two-element array: %w", err)
	}
	if err := json.Unmarshal(raw[0], &p.Key); err != nil {
		return fmt.Errorf("pair key: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Count); err != nil {
		return fmt.Errorf("pair count: %w", err)
	}
	return nil
}
