package ingest

import (
	"reflect"
	"testing"
)

func TestSentencesSplitsOnTerminators(t *testing.T) {
	text := "Great quality overall. Bad delivery experience! Would buy again?"
	want := []string{"Great quality overall", "Bad delivery experience", "Would buy again"}
	if got := Sentences(text); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentencesTerminatorRuns(t *testing.T) {
	text := "Wonderful product!!! Totally worth it..."
	want := []string{"Wonderful product", "Totally worth it"}
	if got := Sentences(text); !reflect.DeepEqual(got, want) {
		t.Errorf("runs of terminators should split once: got %v", got)
	}
}

func TestSentencesDropsShortFragments(t *testing.T) {
	text := "Ok. Nope! This one is long enough to keep."
	want := []string{"This one is long enough to keep"}
	if got := Sentences(text); !reflect.DeepEqual(got, want) {
		t.Errorf("fragments of 10 chars or fewer should be dropped: got %v", got)
	}
}

func TestSentencesBoundaryLength(t *testing.T) {
	// Exactly 10 characters: dropped. Eleven: kept.
	if got := Sentences("0123456789."); len(got) != 0 {
		t.Errorf("10-char fragment should be dropped, got %v", got)
	}
	if got := Sentences("0123456789a."); len(got) != 1 {
		t.Errorf("11-char fragment should be kept, got %v", got)
	}
}

func TestSentencesNoTerminator(t *testing.T) {
	// Trailing text without a terminator still counts.
	want := []string{"no terminator here at all"}
	if got := Sentences("no terminator here at all"); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentencesEmpty(t *testing.T) {
	if got := Sentences(""); len(got) != 0 {
		t.Errorf("empty text should produce no sentences, got %v", got)
	}
	if got := Sentences("..."); len(got) != 0 {
		t.Errorf("terminators only should produce no sentences, got %v", got)
	}
}

func TestSentencesTrimsWhitespace(t *testing.T) {
	want := []string{"spaced out sentence"}
	if got := Sentences("   spaced out sentence   ."); !reflect.DeepEqual(got, want) {
		t.Errorf("fragments should be trimmed: got %v", got)
	}
}
