package keywords

import (
	"reflect"
	"testing"

	"github.com/reviewlens/reviewlens/pkg/reviewlens/ingest"
	"github.com/reviewlens/reviewlens/pkg/reviewlens/lexicon"
)

func newExtractor() *Extractor {
	return NewExtractor(ingest.NewTokenizer(lexicon.Default().Stopwords()))
}

func TestExtractRanksByCount(t *testing.T) {
	e := newExtractor()

	texts := []string{
		"great product great",
		"great product value",
		"nice value",
	}
	got := e.Extract(texts, 10)
	want := []Keyword{
		{Term: "great", Count: 3},
		{Term: "product", Count: 2},
		{Term: "value", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractDropsSingletons(t *testing.T) {
	e := newExtractor()

	got := e.Extract([]string{"unique words only here"}, 10)
	if len(got) != 0 {
		t.Errorf("count-1 tokens should be dropped, got %v", got)
	}
}

func TestExtractTieOrderStable(t *testing.T) {
	e := newExtractor()

	// product appears before value; equal counts keep that order.
	got := e.Extract([]string{"product value", "product value"}, 10)
	want := []Keyword{
		{Term: "product", Count: 2},
		{Term: "value", Count: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("equal counts must keep first-seen order: got %v", got)
	}
}

func TestExtractCap(t *testing.T) {
	e := newExtractor()

	texts := []string{
		"alpha bravo carrot delta",
		"alpha bravo carrot delta",
	}
	got := e.Extract(texts, 2)
	if len(got) != 2 {
		t.Errorf("expected cap at 2 keywords, got %v", got)
	}
}

func TestExtractDefaultTopN(t *testing.T) {
	e := newExtractor()

	// topN <= 0 falls back to the default cap.
	got := e.Extract([]string{"steady steady"}, 0)
	want := []Keyword{{Term: "steady", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
