// Package assistant interprets free-form questions about an expense ledger and
// answers them from loaded transaction data. Detection is rule based: a small
// set of keyword checks maps a query onto one of a few known intents.
package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// Action identifies what a query is asking for.
type Action string

const (
	// ActionExport asks for transactions to be written out as a file.
	ActionExport Action = "export"
	// ActionNavigate asks to be shown a particular view.
	ActionNavigate Action = "navigate"
	// ActionInvoice asks about creating or processing an invoice or receipt.
	ActionInvoice Action = "invoice"
	// ActionSummary asks for an overview of spending.
	ActionSummary Action = "summary"
	// ActionSearch looks for matching transactions.
	ActionSearch Action = "search"
	// ActionHelp is the fallback when nothing else matches.
	ActionHelp Action = "help"
)

// Intent is the structured reading of a user query.
type Intent struct {
	Action      Action
	SearchTerms []string
	Amount      float64
	HasAmount   bool
	Category    string
	Month       string
	Today       bool
	Target      string
}

// commonWords are frequent English words excluded from search term extraction
// to avoid treating every query as a transaction search.
var commonWords = map[string]struct{}{
	"the": {}, "and": {}, "that": {}, "have": {}, "for": {}, "not": {},
	"with": {}, "you": {}, "this": {}, "but": {}, "his": {}, "from": {},
	"they": {}, "she": {}, "will": {}, "would": {}, "there": {}, "their": {},
	"what": {}, "about": {}, "which": {}, "when": {}, "make": {}, "like": {},
	"time": {}, "just": {}, "know": {}, "take": {}, "person": {}, "into": {},
	"year": {}, "your": {}, "good": {}, "some": {}, "could": {}, "them": {},
	"other": {}, "than": {}, "then": {}, "look": {}, "only": {}, "come": {},
	"over": {}, "think": {}, "also": {},
}

// categoryKeywords map query words onto ledger categories for filtering.
var categoryKeywords = []string{
	"food", "transport", "utilities", "entertainment", "shopping",
	"housing", "healthcare", "education", "travel", "personal", "gifts",
}

var amountPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
}

// DetectIntent classifies a raw query string. It never fails; queries that
// match nothing yield ActionHelp.
func DetectIntent(query string) Intent {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return Intent{Action: ActionHelp}
	}

	if isExportQuery(lower) {
		intent := Intent{Action: ActionExport}
		intent.Category = findCategory(lower)
		intent.Month = findMonth(lower)
		return intent
	}

	if strings.Contains(lower, "go to") || strings.Contains(lower, "navigate to") || strings.Contains(lower, "show me") {
		for _, target := range []string{"transaction", "invoice", "dashboard", "summary"} {
			if strings.Contains(lower, target) {
				return Intent{Action: ActionNavigate, Target: target}
			}
		}
	}

	if strings.Contains(lower, "invoice") || strings.Contains(lower, "bill") || strings.Contains(lower, "receipt") {
		return Intent{Action: ActionInvoice}
	}

	if strings.Contains(lower, "summary") || strings.Contains(lower, "overview") || strings.Contains(lower, "total") ||
		(strings.Contains(lower, "how much") && strings.Contains(lower, "spen")) {
		intent := Intent{Action: ActionSummary}
		intent.Category = findCategory(lower)
		intent.Month = findMonth(lower)
		return intent
	}

	if isSearchQuery(lower) {
		intent := Intent{Action: ActionSearch}
		intent.SearchTerms = searchTerms(lower)
		intent.Category = findCategory(lower)
		intent.Today = strings.Contains(lower, "today")
		if m := amountPattern.FindStringSubmatch(lower); m != nil {
			if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
				intent.Amount = amount
				intent.HasAmount = true
			}
		}
		return intent
	}

	return Intent{Action: ActionHelp}
}

func isExportQuery(lower string) bool {
	for _, keyword := range []string{"csv", "export", "download", "report"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return strings.Contains(lower, "get") && strings.Contains(lower, "transactions")
}

func isSearchQuery(lower string) bool {
	for _, keyword := range []string{"transaction", "expense", "spending", "paid", "purchase", "find", "search"} {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	// A query with any uncommon word of four or more letters is treated as a
	// search for that word.
	for _, word := range strings.Fields(lower) {
		if len(word) > 3 {
			if _, ok := commonWords[word]; !ok {
				return true
			}
		}
	}
	return false
}

// searchTerms extracts the words worth searching for: longer than three
// letters and not in the common word list.
func searchTerms(lower string) []string {
	var terms []string
	for _, word := range strings.Fields(lower) {
		if len(word) <= 3 {
			continue
		}
		if _, ok := commonWords[word]; ok {
			continue
		}
		terms = append(terms, word)
	}
	return terms
}

func findCategory(lower string) string {
	for _, category := range categoryKeywords {
		if strings.Contains(lower, category) {
			return category
		}
	}
	return ""
}

func findMonth(lower string) string {
	for _, name := range monthNames {
		if strings.Contains(lower, name) {
			return name
		}
	}
	return ""
}
