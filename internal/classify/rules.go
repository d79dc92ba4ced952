package classify

import (
	"strings"

	"spendtrack/internal/models"
)

// classifyByRules scans the description's tokens against the training corpus
// and returns the category of the first corpus entry whose keyword blob
// contains the token as a substring. Earlier tokens and earlier corpus entries
// win ties. Substring containment is deliberate: a short token can match
// inside a longer corpus word, and changing that would change observable
// results. Total function, defaults to "Other".
func classifyByRules(description string) string {
	for _, token := range tokenize(description) {
		for _, example := range trainingCorpus {
			if strings.Contains(example.Text, token) {
				return example.Category
			}
		}
	}
	return models.CategoryOther
}
