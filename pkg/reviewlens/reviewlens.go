// Package reviewlens performs lexicon-based opinion mining over a
// batch of product reviews and produces a structured summary: an
// aggregate score, a sentiment breakdown, ranked recurring themes,
// frequent keywords, per-aspect sentiment, and a synthesized executive
// summary.
package reviewlens

import (
	"github.com/reviewlens/reviewlens/pkg/reviewlens/aggregate"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/aspects"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/ingest"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/internalerr"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/keywords"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/lexicon"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/sentiment"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/synthesis"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/themes"
)

// defaultRating substitutes for a review with no rating field.
const defaultRating = 3

// Summarizer is the opinion-mining engine facade. It is stateless
// beyond its immutable lexicon; concurrent Summarize calls are safe.
type Summarizer struct {
	lex        *lexicon.Lexicon
	tok        *ingest.Tokenizer
	scorer     *sentiment.Scorer
	classifier *aspects.Classifier
	themes     *themes.Extractor
	keywords   *keywords.Extractor
	agg        *aggregate.Aggregator
}

// Options configures a Summarizer.
type Options struct {
	// Lexicon to score against; nil means the built-in default.
	Lexicon *lexicon.Lexicon
}

// New creates a Summarizer with the given options.
func New(opts Options) *Summarizer {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}

	tok := ingest.NewTokenizer(lex.Stopwords())
	scorer := sentiment.NewScorer(lex, tok)
	classifier := aspects.NewClassifier(lex)

	return &Summarizer{
		lex:        lex,
		tok:        tok,
		scorer:     scorer,
		classifier: classifier,
		themes:     themes.NewExtractor(lex, tok, scorer, classifier),
		keywords:   keywords.NewExtractor(tok),
		agg:        aggregate.New(scorer, classifier),
	}
}

// Summarize analyzes a batch of reviews and returns the full summary.
// It fails only on an empty batch, with internalerr.ErrNoReviews;
// synthesis never fails a call. Given identical input the output is
// identical: the engine holds no mutable state and every call
// recomputes from scratch.
func (s *Summarizer) Summarize(reviews []Review) (Summary, error) {
	if len(reviews) == 0 {
		return Summary{}, internalerr.ErrNoReviews
	}

	resolved := make([]aggregate.Review, len(reviews))
	themed := make([]themes.Review, len(reviews))
	texts := make([]string, len(reviews))
	for i, r := range reviews {
		rating := r.ratingOrDefault()
		resolved[i] = aggregate.Review{Text: r.Text, Rating: rating}
		themed[i] = themes.Review{Text: r.Text, Rating: rating}
		texts[i] = r.Text
	}

	pros, cons := s.themes.Extract(themed)
	top := s.keywords.Extract(texts, keywords.DefaultTopN)

	distribution := s.agg.Distribution(resolved)
	trend := aggregate.TrendLabel(distribution)
	aspectStats := s.agg.Aspects(resolved)

	summary := Summary{
		OverallScore:          s.agg.OverallScore(resolved),
		TotalReviews:          len(reviews),
		SentimentDistribution: distribution,
		Pros:                  toPairs(pros),
		Cons:                  toPairs(cons),
		TopKeywords:           keywordPairs(top),
		SentimentTrend:        trend,
		DetailedInsights: Insights{
			AspectAnalysis:      toAspectMap(aspectStats),
			RatingDistribution:  aggregate.RatingDistribution(resolved),
			AverageReviewLength: aggregate.AverageLength(resolved),
		},
	}

	summary.ExecutiveSummary = synthesis.ExecutiveSummary(synthesisInput(summary, aspectStats))
	return summary, nil
}

func synthesisInput(s Summary, stats []aggregate.AspectStat) synthesis.Input {
	in := synthesis.Input{
		TotalReviews: s.TotalReviews,
		OverallScore: s.OverallScore,
		Trend:        s.SentimentTrend,
	}
	for _, st := range stats {
		in.Aspects = append(in.Aspects, synthesis.Aspect{
			Name:         st.Name,
			AvgSentiment: st.AvgSentiment,
			MentionCount: st.MentionCount,
		})
	}
	if len(s.Pros) > 0 {
		in.TopProKey = s.Pros[0].Key
	}
	return in
}

func toPairs(in []themes.Theme) []Pair {
	out := make([]Pair, len(in))
	for i, t := range in {
		out[i] = Pair{Key: t.Key, Count: t.Count}
	}
	return out
}

func keywordPairs(in []keywords.Keyword) []Pair {
	out := make([]Pair, len(in))
	for i, k := range in {
		out[i] = Pair{Key: k.Term, Count: k.Count}
	}
	return out
}

func toAspectMap(stats []aggregate.AspectStat) map[string]AspectSentiment {
	if len(stats) == 0 {
		return map[string]AspectSentiment{}
	}
	out := make(map[string]AspectSentiment, len(stats))
	for _, st := range stats {
		out[st.Name] = AspectSentiment{
			AvgSentiment: st.AvgSentiment,
			MentionCount: st.MentionCount,
		}
	}
	return out
}
