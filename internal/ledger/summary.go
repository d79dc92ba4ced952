package ledger

import (
	"sort"
	"time"

	"spendtrack/internal/dateutils"
	"spendtrack/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal aggregates spending for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// Summary holds the spending metrics shown on the dashboard: overall and
// current-month totals, the largest single expense, and per-category
// breakdowns.
type Summary struct {
	Currency         string
	Total            decimal.Decimal
	ThisMonth        decimal.Decimal
	LargestExpense   decimal.Decimal
	TransactionCount int
	CategoryCount    int
	ByCategory       []CategoryTotal
}

// Summarize computes spending metrics over the transactions. The now argument
// anchors the "this month" window so callers and tests control the clock.
// Uncategorized transactions are counted under "Other".
func Summarize(transactions []models.Transaction, now time.Time) Summary {
	s := Summary{
		Total:          decimal.Zero,
		ThisMonth:      decimal.Zero,
		LargestExpense: decimal.Zero,
	}

	byCategory := make(map[string]*CategoryTotal)

	for _, t := range transactions {
		s.TransactionCount++
		s.Total = s.Total.Add(t.Amount)

		if t.Amount.GreaterThan(s.LargestExpense) {
			s.LargestExpense = t.Amount
		}

		if date, err := dateutils.ParseDate(t.Date); err == nil && dateutils.SameMonth(date, now) {
			s.ThisMonth = s.ThisMonth.Add(t.Amount)
		}

		category := t.Category
		if category == "" {
			category = models.CategoryOther
		}
		ct, ok := byCategory[category]
		if !ok {
			ct = &CategoryTotal{Category: category, Total: decimal.Zero}
			byCategory[category] = ct
		}
		ct.Total = ct.Total.Add(t.Amount)
		ct.Count++

		if s.Currency == "" && t.Currency != "" {
			s.Currency = t.Currency
		}
	}

	s.CategoryCount = len(byCategory)
	s.ByCategory = make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		s.ByCategory = append(s.ByCategory, *ct)
	}
	// Largest spenders first; ties resolved by name for stable output.
	sort.Slice(s.ByCategory, func(i, j int) bool {
		cmp := s.ByCategory[i].Total.Cmp(s.ByCategory[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return s.ByCategory[i].Category < s.ByCategory[j].Category
	})

	return s
}
