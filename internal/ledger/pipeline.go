package ledger

import (
	"context"

	"spendtrack/internal/classify"
	"spendtrack/internal/logging"
	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// Pipeline runs bulk categorization over transactions. Transactions that
// already carry a category are left untouched; the rest are filled in by the
// classifier, optionally through the trained model.
type Pipeline struct {
	classifier *classify.Classifier
	logger     logging.Logger
	useModel   bool
}

// NewPipeline creates a categorization pipeline.
func NewPipeline(classifier *classify.Classifier, logger logging.Logger, useModel bool) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Pipeline{
		classifier: classifier,
		logger:     logger,
		useModel:   useModel,
	}
}

// Categorize fills missing categories and IDs in place and returns run
// statistics. It never fails: every description maps to some category, with
// "Other" as the floor.
func (p *Pipeline) Categorize(ctx context.Context, transactions []models.Transaction) *models.CategorizationStats {
	stats := models.NewCategorizationStats()

	for i := range transactions {
		stats.IncrementTotal()

		if transactions[i].ID == "" {
			transactions[i].ID = uuid.New().String()
		}

		if transactions[i].IsCategorized() {
			stats.IncrementAlreadyCategorized()
			continue
		}

		var category string
		var source classify.Source
		if p.useModel {
			prediction := p.classifier.PredictWithModel(ctx, transactions[i].Description)
			category, source = prediction.Category, prediction.Source
		} else {
			category, source = p.classifier.Predict(transactions[i].Description), classify.SourceRuleBased
		}

		transactions[i].Category = category
		stats.IncrementAutoCategorized()
		if source == classify.SourceModel {
			stats.ModelPredictions++
		} else {
			stats.RuleBasedFallbacks++
		}
		if category == models.CategoryOther {
			stats.IncrementDefaulted()
		}

		p.logger.Debug("Categorized transaction",
			logging.Field{Key: logging.FieldDescription, Value: transactions[i].Description},
			logging.Field{Key: logging.FieldCategory, Value: category},
			logging.Field{Key: logging.FieldSource, Value: string(source)},
		)
	}

	return stats
}
