// Package ledger provides reading, writing, filtering and bulk categorization
// of transaction files.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"spendtrack/internal/dateutils"
	"spendtrack/internal/fileutils"
	"spendtrack/internal/logging"
	"spendtrack/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter is the CSV delimiter used for reading and writing transaction
// files. It can be overridden from configuration before any file is touched.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ReadTransactions reads a transaction CSV file into a slice of structs.
func ReadTransactions(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	logger.WithField(logging.FieldFile, filePath).Info("Reading transaction CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var transactions []models.Transaction
	if err := gocsv.UnmarshalCSV(reader, &transactions); err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.WithField(logging.FieldCount, len(transactions)).Info("Successfully read transactions")
	return transactions, nil
}

// WriteTransactions writes transactions to a CSV file in a standardized
// format: dates normalized to ISO and amounts fixed to two decimal places.
func WriteTransactions(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(csvFile)); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	for i := range transactions {
		if transactions[i].Date != "" {
			transactions[i].Date = dateutils.NormalizeDate(transactions[i].Date)
		}
		transactions[i].Amount = models.ParseAmount(transactions[i].Amount.StringFixed(2))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Successfully wrote transactions to CSV file")

	return nil
}
