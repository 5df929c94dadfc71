// Package synthesis renders the executive summary: a short paragraph
// derived from the aggregated batch statistics, with inline <b> markup
// around the key terms.
package synthesis

import (
	"fmt"
	"sort"
	"strings"
)

// Aspect thresholds: an aspect reads as praised above praiseThreshold
// and as a concern below concernThreshold.
const (
	praiseThreshold  = 0.2
	concernThreshold = -0.2
)

// generalPraise labels the positive clause when no aspect clears the
// praise threshold.
const generalPraise = "general praise"

// Aspect is one aspect's aggregated sentiment, in first-mention order.
type Aspect struct {
	Name         string
	AvgSentiment float64
	MentionCount int
}

// Input carries everything the synthesizer reads. TopProKey is the full
// key of the highest-ranked pro ("aspect: snippet..."), or empty.
type Input struct {
	TotalReviews int
	OverallScore float64
	Trend        string
	Aspects      []Aspect
	TopProKey    string
}

// ExecutiveSummary builds the paragraph. The lead sentence always
// renders. When aspect data exists, the most-mentioned praised aspect
// and (if any) the most-mentioned concerning aspect fill the second and
// third sentences. Without aspect data the top pro's aspect label fills
// in; without that too, the paragraph ends after the lead. Synthesis is
// best-effort by construction and never fails the summary.
func ExecutiveSummary(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The %d reviews show a <b>%s</b> sentiment, with an average score of <b>%.1f/5.0</b>. ",
		in.TotalReviews, strings.ToLower(in.Trend), in.OverallScore)

	switch {
	case len(in.Aspects) > 0:
		ranked := make([]Aspect, len(in.Aspects))
		copy(ranked, in.Aspects)
		// Stable: equal mention counts keep first-mention order.
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].MentionCount > ranked[j].MentionCount
		})

		praised := generalPraise
		for _, a := range ranked {
			if a.AvgSentiment > praiseThreshold {
				praised = label(a.Name)
				break
			}
		}

		concern := ""
		for _, a := range ranked {
			if a.AvgSentiment < concernThreshold {
				concern = label(a.Name)
				break
			}
		}

		fmt.Fprintf(&b, "Customers frequently praised the <b>%s</b>. ", praised)
		if concern != "" {
			fmt.Fprintf(&b, "However, some concerns were raised about <b>%s</b>.", concern)
		}

	case in.TopProKey != "":
		fmt.Fprintf(&b, "Customers particularly loved the <b>%s</b>.", proAspect(in.TopProKey))
	}

	return strings.TrimSpace(b.String())
}

// label turns an aspect name into prose ("customer_service" ->
// "customer service").
func label(aspect string) string {
	return strings.ReplaceAll(aspect, "_", " ")
}

// proAspect extracts the aspect portion of a theme key, everything
// before the first colon.
func proAspect(key string) string {
	if idx := strings.Index(key, ":"); idx >= 0 {
		return key[:idx]
	}
	return key
}
