package lexicon

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the fixed vocabulary used for opinion mining:
// - positive/negative indicator words for sentiment scoring
// - stopwords filtered out during tokenization
// - an ordered table of aspect categories with their trigger keywords
//
// A Lexicon is immutable after construction and safe to share across
// concurrent calls. All words are stored lowercase.
type Lexicon struct {
	positive  map[string]struct{}
	negative  map[string]struct{}
	stopwords map[string]struct{}
	aspects   []Category

	// kept for ordered substring scans over the phrase text
	positiveList []string
	negativeList []string
}

// Category is one aspect category with its trigger keywords.
// Category order is significant: aspect classification returns the
// first category whose keyword matches.
type Category struct {
	Name     string
	Keywords []string
}

// New builds a lexicon from explicit word lists. Words are lowercased
// and deduplicated; aspect keyword order within each category is kept.
func New(positive, negative, stopwords []string, aspects []Category) *Lexicon {
	lex := &Lexicon{
		positive:  make(map[string]struct{}, len(positive)),
		negative:  make(map[string]struct{}, len(negative)),
		stopwords: make(map[string]struct{}, len(stopwords)),
	}
	lex.positiveList = fillSet(lex.positive, positive)
	lex.negativeList = fillSet(lex.negative, negative)
	fillSet(lex.stopwords, stopwords)

	lex.aspects = make([]Category, 0, len(aspects))
	for _, cat := range aspects {
		keywords := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		lex.aspects = append(lex.aspects, Category{Name: cat.Name, Keywords: keywords})
	}
	return lex
}

func fillSet(set map[string]struct{}, words []string) []string {
	ordered := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := set[w]; ok {
			continue
		}
		set[w] = struct{}{}
		ordered = append(ordered, w)
	}
	return ordered
}

// IsPositive reports whether the token is a positive indicator word.
func (l *Lexicon) IsPositive(token string) bool {
	_, ok := l.positive[token]
	return ok
}

// IsNegative reports whether the token is a negative indicator word.
func (l *Lexicon) IsNegative(token string) bool {
	_, ok := l.negative[token]
	return ok
}

// IsStopword reports whether the token is on the stopword list.
func (l *Lexicon) IsStopword(token string) bool {
	_, ok := l.stopwords[token]
	return ok
}

// MentionsPositive reports whether any positive indicator word occurs
// as a raw substring of s. Substring semantics are deliberate: "worth"
// matches inside "worthless".
func (l *Lexicon) MentionsPositive(s string) bool {
	return mentionsAny(s, l.positiveList)
}

// MentionsNegative reports whether any negative indicator word occurs
// as a raw substring of s.
func (l *Lexicon) MentionsNegative(s string) bool {
	return mentionsAny(s, l.negativeList)
}

func mentionsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// PositiveWords returns a copy of the positive word list in insertion
// order.
func (l *Lexicon) PositiveWords() []string {
	return append([]string(nil), l.positiveList...)
}

// NegativeWords returns a copy of the negative word list in insertion
// order.
func (l *Lexicon) NegativeWords() []string {
	return append([]string(nil), l.negativeList...)
}

// Stopwords returns a copy of the stopword set.
func (l *Lexicon) Stopwords() []string {
	out := make([]string, 0, len(l.stopwords))
	for w := range l.stopwords {
		out = append(out, w)
	}
	return out
}

// Aspects returns the ordered aspect category table.
func (l *Lexicon) Aspects() []Category {
	return l.aspects
}

// Stats summarizes lexicon contents.
type Stats struct {
	PositiveWords int
	NegativeWords int
	Stopwords     int
	Aspects       int
}

// Stats returns counts of the lexicon contents.
func (l *Lexicon) Stats() Stats {
	return Stats{
		PositiveWords: len(l.positive),
		NegativeWords: len(l.negative),
		Stopwords:     len(l.stopwords),
		Aspects:       len(l.aspects),
	}
}

// LoadFromYAML loads a full lexicon from a YAML file.
//
// Expected format:
//
//	positive: [excellent, great]
//	negative: [bad, terrible]
//	stopwords: [the, a, an]
//	aspects:
//	  - name: quality
//	    keywords: [quality, build]
//
// Sections left empty fall back to the built-in defaults, so a file may
// override only the word lists it cares about. Aspect order in the file
// is preserved and determines classification priority.
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Positive  []string `yaml:"positive"`
		Negative  []string `yaml:"negative"`
		Stopwords []string `yaml:"stopwords"`
		Aspects   []struct {
			Name     string   `yaml:"name"`
			Keywords []string `yaml:"keywords"`
		} `yaml:"aspects"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if len(file.Positive) == 0 {
		file.Positive = defaultPositive()
	}
	if len(file.Negative) == 0 {
		file.Negative = defaultNegative()
	}
	if len(file.Stopwords) == 0 {
		file.Stopwords = defaultStopwords()
	}

	var aspects []Category
	if len(file.Aspects) == 0 {
		aspects = defaultAspects()
	} else {
		for _, a := range file.Aspects {
			aspects = append(aspects, Category{Name: a.Name, Keywords: a.Keywords})
		}
	}

	return New(file.Positive, file.Negative, file.Stopwords, aspects), nil
}
