// Package currencyutils provides common currency and decimal operations used
// throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyChars matches currency symbols, ISO code letters and whitespace
// that may surround an amount.
var currencyChars = regexp.MustCompile(`[€$£¥₹\sA-Za-z]`)

// StandardizeAmount converts various amount string formats to one that
// decimal.NewFromString accepts. Handles patterns like "USD 1,234.56",
// "€1.234,56", "1'200.00" and "1234,56".
func StandardizeAmount(amountStr string) string {
	amountStr = currencyChars.ReplaceAllString(amountStr, "")

	// European format (1.234,56): dots are thousand separators.
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts[len(parts)-1]) <= 2 {
			// Comma as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma as thousand separator (1,234567 is not a thing)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	return strings.ReplaceAll(amountStr, "'", "")
}

// ParseAmount parses a string representation of an amount into a decimal
// value after standardizing its format.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(StandardizeAmount(amountStr))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatAmount renders an amount with two decimal places, prefixed with the
// currency code when one is known. Returns strings like "USD 1234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}
