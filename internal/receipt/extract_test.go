package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantMerchant string
		wantAmount   string
		hasAmount    bool
		wantDate     string
	}{
		{
			name:         "typical receipt",
			text:         "STARBUCKS COFFEE\n123 Main St\n03/15/2026\nLatte $4.50\nTotal $4.50",
			wantMerchant: "STARBUCKS COFFEE",
			wantAmount:   "4.50",
			hasAmount:    true,
			wantDate:     "2026-03-15",
		},
		{
			name:         "amount without dollar sign",
			text:         "CORNER DELI\nSandwich 8.75",
			wantMerchant: "CORNER DELI",
			wantAmount:   "8.75",
			hasAmount:    true,
		},
		{
			name:         "two digit year and dashes",
			text:         "SHOP\n3-7-26\nItem $1.00",
			wantMerchant: "SHOP",
			wantAmount:   "1.00",
			hasAmount:    true,
			wantDate:     "2026-03-07",
		},
		{
			name:         "leading blank lines before merchant",
			text:         "\n\n  UBER TRIP  \nFare $17.80",
			wantMerchant: "UBER TRIP",
			wantAmount:   "17.80",
			hasAmount:    true,
		},
		{
			name:         "no amount",
			text:         "PARKING GARAGE\nThank you",
			wantMerchant: "PARKING GARAGE",
			hasAmount:    false,
		},
		{
			name:      "empty text",
			text:      "",
			hasAmount: false,
		},
		{
			name:         "first amount wins",
			text:         "CAFE\nCoffee $3.25\nTotal $3.25\nCash $5.00",
			wantMerchant: "CAFE",
			wantAmount:   "3.25",
			hasAmount:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.text)

			assert.Equal(t, tt.wantMerchant, result.Merchant)
			assert.Equal(t, tt.hasAmount, result.HasAmount)
			if tt.hasAmount {
				assert.Equal(t, tt.wantAmount, result.Amount.StringFixed(2))
			}
			assert.Equal(t, tt.wantDate, result.Date)
			assert.Equal(t, tt.text, result.Text)
		})
	}
}

func TestSuggestText(t *testing.T) {
	withMerchant := ScanResult{Merchant: "STARBUCKS", Text: "STARBUCKS\nLatte $4.50"}
	assert.Equal(t, "STARBUCKS", withMerchant.SuggestText())

	noMerchant := ScanResult{Text: "just some text"}
	assert.Equal(t, "just some text", noMerchant.SuggestText())
}
