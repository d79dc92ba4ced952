package classify

import (
	"strings"
	"testing"

	"spendtrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVocabularyDeterministic(t *testing.T) {
	first := buildVocabulary()
	second := buildVocabulary()

	assert.Equal(t, first.wordIndex, second.wordIndex)
	assert.Equal(t, first.categoryID, second.categoryID)
	assert.Equal(t, first.categoryByID, second.categoryByID)
}

func TestBuildVocabularyIndices(t *testing.T) {
	v := buildVocabulary()

	// Words are numbered from 1 in corpus order; the first corpus word gets 1.
	assert.Equal(t, 1, v.index("starbucks"))
	assert.Equal(t, 2, v.index("coffee"))

	// Index 0 is reserved for unknown words.
	assert.Equal(t, 0, v.index("zzzznotaword"))
	assert.Equal(t, 0, v.index(""))

	// Every corpus word is present. The vocabulary splits on spaces, so
	// "disney+" is stored with its plus sign.
	assert.Positive(t, v.size())
	for _, example := range trainingCorpus {
		for _, word := range strings.Fields(example.Text) {
			assert.Positive(t, v.index(word), "word %q missing", word)
		}
	}
}

func TestVocabularyCategoryRoundTrip(t *testing.T) {
	v := buildVocabulary()

	for i, name := range models.Categories {
		id, ok := v.categoryIDFor(name)
		require.True(t, ok, "category %q missing", name)
		assert.Equal(t, i, id)

		back, ok := v.categoryName(id)
		require.True(t, ok)
		assert.Equal(t, name, back)
	}

	_, ok := v.categoryIDFor("No Such Category")
	assert.False(t, ok)

	_, ok = v.categoryName(len(models.Categories))
	assert.False(t, ok)
}

func TestEncode(t *testing.T) {
	v := buildVocabulary()

	t.Run("empty text", func(t *testing.T) {
		features := v.encode("")
		assert.Len(t, features, v.size()+1)
		for _, f := range features {
			assert.Zero(t, f)
		}
	})

	t.Run("known words set their slots", func(t *testing.T) {
		features := v.encode("starbucks coffee")
		assert.Equal(t, 1.0, features[v.index("starbucks")])
		assert.Equal(t, 1.0, features[v.index("coffee")])
	})

	t.Run("duplicates do not accumulate", func(t *testing.T) {
		features := v.encode("coffee coffee coffee")
		assert.Equal(t, 1.0, features[v.index("coffee")])
	})

	t.Run("unknown words leave slot zero untouched", func(t *testing.T) {
		features := v.encode("zzzznotaword flurble")
		assert.Equal(t, 0.0, features[0])
		for _, f := range features {
			assert.Zero(t, f)
		}
	})

	t.Run("case and punctuation normalized", func(t *testing.T) {
		assert.Equal(t, v.encode("UBER, ride!"), v.encode("uber ride"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, v.encode("netflix and rent"), v.encode("netflix and rent"))
	})
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "empty", text: "", expected: []string{}},
		{name: "punctuation only", text: "?!...,", expected: []string{}},
		{name: "mixed case", text: "Uber Ride", expected: []string{"uber", "ride"}},
		{name: "punctuation separators", text: "coffee,lunch;dinner", expected: []string{"coffee", "lunch", "dinner"}},
		{name: "digits kept", text: "order 1234", expected: []string{"order", "1234"}},
		{name: "unicode symbols split", text: "coffee☕break", expected: []string{"coffee", "break"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.text))
		})
	}
}
