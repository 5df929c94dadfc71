package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMembership(t *testing.T) {
	lex := Default()

	if !lex.IsPositive("excellent") {
		t.Error("'excellent' should be a positive word")
	}
	if !lex.IsNegative("terrible") {
		t.Error("'terrible' should be a negative word")
	}
	if !lex.IsStopword("the") {
		t.Error("'the' should be a stopword")
	}
	if lex.IsPositive("terrible") || lex.IsNegative("excellent") {
		t.Error("word sets should not overlap")
	}
}

func TestDefaultAspectOrder(t *testing.T) {
	aspects := Default().Aspects()

	want := []string{"quality", "price", "durability", "design", "performance", "comfort", "delivery", "customer_service"}
	if len(aspects) != len(want) {
		t.Fatalf("expected %d aspects, got %d", len(want), len(aspects))
	}
	for i, name := range want {
		if aspects[i].Name != name {
			t.Errorf("aspect %d: expected %q, got %q", i, name, aspects[i].Name)
		}
	}
}

func TestMentionsSubstring(t *testing.T) {
	lex := Default()

	// Substring semantics: "worth" matches inside "worthless".
	if !lex.MentionsPositive("completely worthless") {
		t.Error("'worth' should match inside 'worthless'")
	}
	if !lex.MentionsNegative("felt cheaply made") {
		t.Error("'cheap' should match inside 'cheaply'")
	}
	if lex.MentionsPositive("mediocre gadget") {
		t.Error("no positive word occurs in 'mediocre gadget'")
	}
}

func TestNewNormalizesWords(t *testing.T) {
	lex := New([]string{" Great ", "great"}, []string{"BAD"}, []string{"The"}, nil)

	if !lex.IsPositive("great") {
		t.Error("words should be lowercased and trimmed")
	}
	if !lex.IsNegative("bad") {
		t.Error("negative words should be lowercased")
	}
	if !lex.IsStopword("the") {
		t.Error("stopwords should be lowercased")
	}
	if got := lex.Stats().PositiveWords; got != 1 {
		t.Errorf("duplicates should collapse, got %d positive words", got)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	content := `
positive: [splendid]
negative: [dreadful]
aspects:
  - name: battery
    keywords: [battery, charge]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	lex, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !lex.IsPositive("splendid") || lex.IsPositive("excellent") {
		t.Error("positive list should be fully replaced by the override")
	}
	if !lex.IsNegative("dreadful") {
		t.Error("negative override not applied")
	}
	// Stopwords were omitted, so defaults stay.
	if !lex.IsStopword("the") {
		t.Error("omitted sections should keep defaults")
	}
	aspects := lex.Aspects()
	if len(aspects) != 1 || aspects[0].Name != "battery" {
		t.Errorf("aspect override not applied: %+v", aspects)
	}
}

func TestLoadFromYAMLMissingFile(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
