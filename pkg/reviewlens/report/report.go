// Package report renders a Summary as a fixed-layout plain-text
// report. It is a pure formatting pass over already-computed data and
// not part of the core call contract.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reviewlens/reviewlens/pkg/reviewlens"
)

const lineWidth = 80

// Render formats the summary as a plain-text report. Inline bold
// markup from the executive summary is stripped; rating rows render as
// star bars ("****." for four stars).
func Render(s reviewlens.Summary) string {
	var b strings.Builder
	rule := strings.Repeat("=", lineWidth)
	divider := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString("PRODUCT REVIEW SUMMARY\n")
	b.WriteString(rule + "\n")

	b.WriteString("\nEXECUTIVE SUMMARY:\n")
	b.WriteString(StripMarkup(s.ExecutiveSummary) + "\n")

	fmt.Fprintf(&b, "\nTotal Reviews Analyzed: %d\n", s.TotalReviews)
	fmt.Fprintf(&b, "Overall Score: %.2f/5.0\n", s.OverallScore)
	fmt.Fprintf(&b, "Sentiment Trend: %s\n", s.SentimentTrend)
	b.WriteString("\n" + divider + "\n")

	b.WriteString("\nSENTIMENT DISTRIBUTION:\n")
	total := s.SentimentDistribution.Total()
	writeSentimentRow(&b, "Positive", s.SentimentDistribution.Positive, total)
	writeSentimentRow(&b, "Neutral", s.SentimentDistribution.Neutral, total)
	writeSentimentRow(&b, "Negative", s.SentimentDistribution.Negative, total)

	b.WriteString("\n" + divider + "\n")
	b.WriteString("\nTOP PROS (What customers love):\n")
	writeThemes(&b, s.Pros)

	b.WriteString("\n" + divider + "\n")
	b.WriteString("\nTOP CONS (Common complaints):\n")
	writeThemes(&b, s.Cons)

	b.WriteString("\n" + divider + "\n")
	b.WriteString("\nTOP KEYWORDS:\n")
	writeKeywords(&b, s.TopKeywords)

	b.WriteString("\n" + divider + "\n")
	b.WriteString("\nASPECT ANALYSIS:\n")
	writeAspects(&b, s.DetailedInsights.AspectAnalysis)

	b.WriteString("\n" + divider + "\n")
	b.WriteString("\nRATING DISTRIBUTION:\n")
	writeRatings(&b, s.DetailedInsights.RatingDistribution, s.TotalReviews)

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// StripMarkup removes the inline <b> tags used by the executive
// summary.
func StripMarkup(s string) string {
	return strings.NewReplacer("<b>", "", "</b>", "").Replace(s)
}

func writeSentimentRow(b *strings.Builder, name string, count, total int) {
	pct := 0.0
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	fmt.Fprintf(b, "  %s: %d (%.1f%%)\n", name, count, pct)
}

func writeThemes(b *strings.Builder, themes []reviewlens.Pair) {
	limit := 5
	if len(themes) < limit {
		limit = len(themes)
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(b, "  %d. %s (mentioned %d times)\n", i+1, themes[i].Key, themes[i].Count)
	}
}

func writeKeywords(b *strings.Builder, keywords []reviewlens.Pair) {
	limit := 15
	if len(keywords) < limit {
		limit = len(keywords)
	}
	parts := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		parts = append(parts, fmt.Sprintf("%s (%d)", keywords[i].Key, keywords[i].Count))
	}
	fmt.Fprintf(b, "  %s\n", strings.Join(parts, ", "))
}

func writeAspects(b *strings.Builder, analysis map[string]reviewlens.AspectSentiment) {
	type row struct {
		name string
		stat reviewlens.AspectSentiment
	}
	rows := make([]row, 0, len(analysis))
	for name, stat := range analysis {
		rows = append(rows, row{name: name, stat: stat})
	}
	// Mention count descending; name ascending keeps equal counts
	// deterministic since the map has no order to preserve.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].stat.MentionCount != rows[j].stat.MentionCount {
			return rows[i].stat.MentionCount > rows[j].stat.MentionCount
		}
		return rows[i].name < rows[j].name
	})

	for _, r := range rows {
		marker := "-"
		if r.stat.AvgSentiment > 0.2 {
			marker = "+"
		} else if r.stat.AvgSentiment < -0.2 {
			marker = "!"
		}
		fmt.Fprintf(b, "  [%s] %s: %.2f sentiment (%d mentions)\n",
			marker, titleCase(r.name), r.stat.AvgSentiment, r.stat.MentionCount)
	}
}

func writeRatings(b *strings.Builder, dist map[int]int, totalReviews int) {
	for rating := 5; rating >= 1; rating-- {
		count := dist[rating]
		bar := strings.Repeat("*", rating) + strings.Repeat(".", 5-rating)
		pct := 0.0
		if totalReviews > 0 {
			pct = float64(count) / float64(totalReviews) * 100
		}
		fmt.Fprintf(b, "  %s: %d (%.1f%%)\n", bar, count, pct)
	}
}

// titleCase renders an aspect name for display: underscores become
// spaces and each word is capitalized.
func titleCase(aspect string) string {
	words := strings.Split(strings.ReplaceAll(aspect, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
