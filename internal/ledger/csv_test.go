package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"spendtrack/internal/logging"
	"spendtrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "tx-1",
			Date:        "2026-03-01",
			Description: "starbucks coffee",
			Amount:      decimal.RequireFromString("4.50"),
			Currency:    "USD",
			Category:    models.CategoryFoodBeverage,
		},
		{
			ID:          "tx-2",
			Date:        "2026-03-02",
			Description: "uber ride",
			Amount:      decimal.RequireFromString("17.80"),
			Currency:    "USD",
			Category:    "",
		},
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "ledger.csv")

	require.NoError(t, WriteTransactions(sampleTransactions(), path, logger))

	got, err := ReadTransactions(path, logger)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "tx-1", got[0].ID)
	assert.Equal(t, "2026-03-01", got[0].Date)
	assert.Equal(t, "starbucks coffee", got[0].Description)
	assert.True(t, decimal.RequireFromString("4.50").Equal(got[0].Amount))
	assert.Equal(t, models.CategoryFoodBeverage, got[0].Category)

	assert.Equal(t, "", got[1].Category)
	assert.False(t, got[1].IsCategorized())
}

func TestWriteTransactionsNormalizes(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "out", "ledger.csv")

	transactions := []models.Transaction{
		{
			ID:          "tx-1",
			Date:        "01.03.2026", // European format
			Description: "rent",
			Amount:      decimal.RequireFromString("1200"),
			Currency:    "EUR",
			Category:    models.CategoryHousing,
		},
	}

	require.NoError(t, WriteTransactions(transactions, path, logger))

	got, err := ReadTransactions(path, logger)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-03-01", got[0].Date)
	assert.Equal(t, "1200.00", got[0].Amount.StringFixed(2))
}

func TestWriteTransactionsNil(t *testing.T) {
	err := WriteTransactions(nil, filepath.Join(t.TempDir(), "x.csv"), logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil transactions")
}

func TestWriteTransactionsEmpty(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteTransactions([]models.Transaction{}, path, logger))

	_, err := os.Stat(path)
	assert.NoError(t, err, "an empty ledger still writes a header-only file")
}

func TestReadTransactionsMissingFile(t *testing.T) {
	_, err := ReadTransactions(filepath.Join(t.TempDir(), "nope.csv"), logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening CSV file")
}

func TestCustomDelimiter(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "semicolon.csv")

	SetDelimiter(';')
	defer SetDelimiter(',')

	require.NoError(t, WriteTransactions(sampleTransactions(), path, logger))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), ";")

	got, err := ReadTransactions(path, logger)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
