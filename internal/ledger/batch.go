package ledger

import (
	"context"
	"fmt"
	"path/filepath"

	"spendtrack/internal/fileutils"
	"spendtrack/internal/logging"
)

// ProcessDirectory categorizes every CSV file in inputDir and writes the
// results under the same base names in outputDir. Files are handled in sorted
// order so repeated runs behave identically.
func (p *Pipeline) ProcessDirectory(ctx context.Context, inputDir, outputDir string) error {
	files, err := fileutils.ListFilesWithExtension(inputDir, ".csv")
	if err != nil {
		return fmt.Errorf("error reading input directory: %w", err)
	}

	if len(files) == 0 {
		p.logger.Warn("No CSV files found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inputDir},
		)
		return nil
	}

	for _, name := range files {
		inputFile := filepath.Join(inputDir, name)
		outputFile := filepath.Join(outputDir, name)

		transactions, err := ReadTransactions(inputFile, p.logger)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", name, err)
		}

		stats := p.Categorize(ctx, transactions)
		stats.LogSummary(p.logger.WithField(logging.FieldInputFile, inputFile))

		if err := WriteTransactions(transactions, outputFile, p.logger); err != nil {
			return fmt.Errorf("error writing %s: %w", name, err)
		}
	}

	p.logger.Info("Batch categorization complete",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
	)
	return nil
}
