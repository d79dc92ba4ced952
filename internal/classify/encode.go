package classify

import (
	"regexp"
	"strings"
)

// nonWord splits text on runs of anything that is not a word character,
// mirroring how the corpus blobs themselves are tokenized.
var nonWord = regexp.MustCompile(`\W+`)

// tokenize lower-cases text and splits it into word tokens, discarding
// empties. Deterministic for any input, including empty strings and
// punctuation-only text.
func tokenize(text string) []string {
	parts := nonWord.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// encode turns text into a presence vector of length size()+1. Slot i is 1
// when vocabulary word i appears anywhere in the text; duplicates do not
// accumulate. Slot 0 stays 0: unknown tokens carry no signal.
func (v *vocabulary) encode(text string) []float64 {
	features := make([]float64, v.size()+1)
	for _, token := range tokenize(text) {
		if idx := v.index(token); idx > 0 {
			features[idx] = 1
		}
	}
	return features
}
