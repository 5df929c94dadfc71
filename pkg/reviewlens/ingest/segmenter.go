package ingest

import (
	"strings"
	"unicode/utf8"
)

// minSentenceLen is the shortest fragment, after trimming, that counts
// as a sentence. Shorter fragments ("Ok.", "Wow!") carry no theme.
const minSentenceLen = 10

// Sentences splits raw text into sentences. A run of one or more '.',
// '!' or '?' characters terminates a sentence. Fragments are trimmed of
// surrounding whitespace; fragments of 10 characters or fewer are
// discarded. The returned order matches the text, and the result may be
// empty.
func Sentences(text string) []string {
	var sentences []string
	start := 0

	flush := func(end int) {
		fragment := strings.TrimSpace(text[start:end])
		if utf8.RuneCountInString(fragment) > minSentenceLen {
			sentences = append(sentences, fragment)
		}
	}

	// Within a terminator run, start tracks just past the previous
	// terminator, so the run yields no empty fragments.
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if start < i {
				flush(i)
			}
			start = i + 1
		}
	}
	if start < len(text) {
		flush(len(text))
	}

	return sentences
}
