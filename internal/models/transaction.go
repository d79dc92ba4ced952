package models

import (
	"strings"

	"spendtrack/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// Transaction represents a single recorded expense.
type Transaction struct {
	ID          string          `csv:"ID"`          // Stable identifier, assigned on import if missing
	Date        string          `csv:"Date"`        // Transaction date in YYYY-MM-DD format
	Description string          `csv:"Description"` // Free-text description entered by the user
	Amount      decimal.Decimal `csv:"Amount"`      // Amount as decimal value
	Currency    string          `csv:"Currency"`    // Currency code (USD, EUR, etc)
	Category    string          `csv:"Category"`    // Expense category, empty until categorized
}

// ParseAmount parses a string amount to decimal.Decimal with proper formatting.
// It tolerates currency symbols, spaces, comma decimal separators and
// apostrophe thousand separators. Unparseable input yields zero.
func ParseAmount(amountStr string) decimal.Decimal {
	dec, err := currencyutils.ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// IsCategorized returns true if the transaction already carries a category.
func (t *Transaction) IsCategorized() bool {
	return strings.TrimSpace(t.Category) != ""
}

// GetAmountAsDecimal returns the Amount as a decimal.Decimal for precise
// calculations.
func (t *Transaction) GetAmountAsDecimal() decimal.Decimal {
	return t.Amount
}
