package classify

import (
	"strings"

	"spendtrack/internal/models"
)

// vocabulary holds the word-to-index mapping derived from the training corpus
// and the category-to-id bijection derived from the category list. Both are
// read-only after construction: a trained network is only meaningful against
// the exact indices it was trained with.
type vocabulary struct {
	wordIndex    map[string]int
	categoryID   map[string]int
	categoryByID map[int]string
}

// buildVocabulary deterministically derives the two indices. Words are taken
// from the corpus in declared order, split on whitespace, and numbered from 1;
// index 0 is reserved for out-of-vocabulary tokens. Categories are numbered by
// their position in models.Categories. Calling this again always reproduces
// the same mappings.
func buildVocabulary() *vocabulary {
	v := &vocabulary{
		wordIndex:    make(map[string]int),
		categoryID:   make(map[string]int, len(models.Categories)),
		categoryByID: make(map[int]string, len(models.Categories)),
	}

	index := 1
	for _, example := range trainingCorpus {
		for _, word := range strings.Fields(example.Text) {
			if _, seen := v.wordIndex[word]; !seen {
				v.wordIndex[word] = index
				index++
			}
		}
	}

	for id, name := range models.Categories {
		v.categoryID[name] = id
		v.categoryByID[id] = name
	}

	return v
}

// size returns the number of distinct corpus words.
func (v *vocabulary) size() int {
	return len(v.wordIndex)
}

// index returns the vocabulary index for word, or 0 when the word is unknown.
func (v *vocabulary) index(word string) int {
	return v.wordIndex[word]
}

// categoryIDFor returns the dense id for a category label.
func (v *vocabulary) categoryIDFor(name string) (int, bool) {
	id, ok := v.categoryID[name]
	return id, ok
}

// categoryName maps a dense id back to its category label.
func (v *vocabulary) categoryName(id int) (string, bool) {
	name, ok := v.categoryByID[id]
	return name, ok
}
