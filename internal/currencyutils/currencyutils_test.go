package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "1234.56", expected: "1234.56"},
		{name: "us thousands", input: "1,234.56", expected: "1234.56"},
		{name: "european", input: "1.234,56", expected: "1234.56"},
		{name: "comma decimal", input: "1234,56", expected: "1234.56"},
		{name: "comma thousands only", input: "1,234", expected: "1234"},
		{name: "apostrophe thousands", input: "1'234.56", expected: "1234.56"},
		{name: "dollar prefix", input: "$1,234.56", expected: "1234.56"},
		{name: "currency code", input: "USD 1234.56", expected: "1234.56"},
		{name: "spaces", input: " 1234.56 ", expected: "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StandardizeAmount(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("€1.234,56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", amount.StringFixed(2))

	amount, err = ParseAmount("")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	_, err = ParseAmount("!!")
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")

	assert.Equal(t, "USD 1234.50", FormatAmount(amount, "USD"))
	assert.Equal(t, "1234.50", FormatAmount(amount, ""))
	assert.Equal(t, "EUR 0.00", FormatAmount(decimal.Zero, "EUR"))
}
