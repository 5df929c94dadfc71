// Package config loads lexicon override files and builds the
// components the engine is constructed from.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reviewlens/reviewlens/pkg/reviewlens/lexicon"
)

// WordList represents a flat word-list override file.
type WordList struct {
	Terms []string `yaml:"terms"`
}

// LoadWordList loads a word list from a YAML file.
func LoadWordList(path string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wl WordList
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

// Loader resolves the lexicon for an engine. An empty LexiconPath
// yields the built-in default lexicon; extra word-list paths override
// individual sections of whichever base was chosen.
type Loader struct {
	LexiconPath   string
	StopwordsPath string
}

// Load builds the lexicon from the configured files.
func (l *Loader) Load() (*lexicon.Lexicon, error) {
	var lex *lexicon.Lexicon
	var err error

	if l.LexiconPath != "" {
		lex, err = lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
	} else {
		lex = lexicon.Default()
	}

	if l.StopwordsPath != "" {
		wl, err := LoadWordList(l.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		lex = lexicon.New(lex.PositiveWords(), lex.NegativeWords(), wl.Terms, lex.Aspects())
	}

	return lex, nil
}
