package ledger

import (
	"strings"
	"time"

	"spendtrack/internal/dateutils"
	"spendtrack/internal/models"

	"github.com/shopspring/decimal"
)

// FilterByCategory returns the transactions whose category matches,
// case-insensitively.
func FilterByCategory(transactions []models.Transaction, category string) []models.Transaction {
	var out []models.Transaction
	for _, t := range transactions {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByMonth returns the transactions dated within the given calendar
// month. Transactions with unparseable dates are skipped.
func FilterByMonth(transactions []models.Transaction, month time.Time) []models.Transaction {
	var out []models.Transaction
	for _, t := range transactions {
		date, err := dateutils.ParseDate(t.Date)
		if err != nil {
			continue
		}
		if dateutils.SameMonth(date, month) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDay returns the transactions dated on the given calendar day.
func FilterByDay(transactions []models.Transaction, day time.Time) []models.Transaction {
	var out []models.Transaction
	for _, t := range transactions {
		date, err := dateutils.ParseDate(t.Date)
		if err != nil {
			continue
		}
		if dateutils.SameDay(date, day) {
			out = append(out, t)
		}
	}
	return out
}

// SearchByTerm returns the transactions whose description or category
// contains the lower-cased term.
func SearchByTerm(transactions []models.Transaction, term string) []models.Transaction {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []models.Transaction
	for _, t := range transactions {
		if strings.Contains(strings.ToLower(t.Description), term) ||
			strings.Contains(strings.ToLower(t.Category), term) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByMinAmount returns the transactions with an amount of at least min.
func FilterByMinAmount(transactions []models.Transaction, min decimal.Decimal) []models.Transaction {
	var out []models.Transaction
	for _, t := range transactions {
		if t.Amount.GreaterThanOrEqual(min) {
			out = append(out, t)
		}
	}
	return out
}
