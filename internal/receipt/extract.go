// Package receipt extracts transaction details from receipt text produced by
// an OCR engine.
package receipt

import (
	"fmt"
	"regexp"
	"strings"

	"spendtrack/internal/models"

	"github.com/shopspring/decimal"
)

// ScanResult holds whatever could be extracted from a receipt's text. Fields
// are best effort: any of them may be empty when the OCR output gives no
// usable signal.
type ScanResult struct {
	Merchant  string
	Amount    decimal.Decimal
	HasAmount bool
	Date      string // ISO format when detected
	Text      string // Full recognized text
}

var (
	amountPattern = regexp.MustCompile(`\$?(\d+\.\d{2})`)
	datePattern   = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)
)

// Parse extracts the merchant, the first monetary amount and the first date
// from OCR text. The first non-empty line usually carries the merchant name;
// dates are read month-first and normalized to ISO.
func Parse(text string) ScanResult {
	result := ScanResult{Text: text}

	if matches := amountPattern.FindStringSubmatch(text); len(matches) > 1 {
		result.Amount = models.ParseAmount(matches[1])
		result.HasAmount = true
	}

	if matches := datePattern.FindStringSubmatch(text); len(matches) > 3 {
		result.Date = formatDate(matches[1], matches[2], matches[3])
	}

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			result.Merchant = trimmed
			break
		}
	}

	return result
}

// formatDate renders a month/day/year capture as YYYY-MM-DD. Two-digit years
// are assumed to be in the 2000s.
func formatDate(month, day, year string) string {
	if len(year) == 2 {
		year = "20" + year
	}
	if len(month) == 1 {
		month = "0" + month
	}
	if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

// SuggestText returns the text a classifier should see for a category
// suggestion: the merchant line when present, otherwise the full recognized
// text.
func (r ScanResult) SuggestText() string {
	if r.Merchant != "" {
		return r.Merchant
	}
	return r.Text
}
