package classify

import (
	"testing"

	"spendtrack/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByRules(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{
			name:        "empty description",
			description: "",
			expected:    models.CategoryOther,
		},
		{
			name:        "whitespace only",
			description: "   \t\n  ",
			expected:    models.CategoryOther,
		},
		{
			name:        "coffee purchase",
			description: "coffee and lunch",
			expected:    models.CategoryFoodBeverage,
		},
		{
			name:        "ride share",
			description: "uber ride downtown",
			expected:    models.CategoryTransportation,
		},
		{
			name:        "rent payment",
			description: "paid rent this month",
			expected:    models.CategoryHousing,
		},
		{
			name:        "online shopping",
			description: "Amazon order #1234",
			expected:    models.CategoryShopping,
		},
		{
			name:        "streaming subscription",
			description: "NETFLIX monthly subscription",
			expected:    models.CategoryEntertainment,
		},
		{
			name:        "utility bill",
			description: "electricity bill march",
			expected:    models.CategoryUtilities,
		},
		{
			name:        "pharmacy visit",
			description: "pharmacy prescription refill",
			expected:    models.CategoryHealthcare,
		},
		{
			name:        "tuition payment",
			description: "spring tuition installment",
			expected:    models.CategoryEducation,
		},
		{
			name:        "flight booking",
			description: "flight to lisbon",
			expected:    models.CategoryTravel,
		},
		{
			name:        "salon appointment",
			description: "haircut at the salon",
			expected:    models.CategoryPersonalCare,
		},
		{
			name:        "charitable giving",
			description: "donation to the food bank",
			expected:    models.CategoryGiftsDonations,
		},
		{
			name:        "no keywords",
			description: "xyzxyz qqqq",
			expected:    models.CategoryOther,
		},
		{
			name:        "case insensitive",
			description: "STARBUCKS Reserve",
			expected:    models.CategoryFoodBeverage,
		},
		{
			name:        "punctuation stripped",
			description: "uber, airport!",
			expected:    models.CategoryTransportation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyByRules(tt.description))
		})
	}
}

// A short token can match inside a longer corpus word; "car" hits the
// transportation blob's "car" but also sits inside "care". Corpus order
// resolves the tie.
func TestClassifyByRulesSubstringSemantics(t *testing.T) {
	// "cab" appears verbatim in the transportation blob.
	assert.Equal(t, models.CategoryTransportation, classifyByRules("cab fare"))

	// "bus" matches the transportation blob before anything else.
	assert.Equal(t, models.CategoryTransportation, classifyByRules("bus pass"))

	// "care" appears in the healthcare blob before the personal care blob, so
	// the earlier corpus entry wins.
	assert.Equal(t, models.CategoryHealthcare, classifyByRules("care package"))
}

func TestClassifyByRulesEarlierTokenWins(t *testing.T) {
	// The first token that matches any blob decides the category even when a
	// later token would match an earlier corpus entry.
	assert.Equal(t, models.CategoryTransportation, classifyByRules("uber coffee"))
	assert.Equal(t, models.CategoryFoodBeverage, classifyByRules("coffee uber"))
}
