package models

import (
	"spendtrack/internal/logging"
)

// CategorizationStats tracks statistics for a bulk categorization run.
type CategorizationStats struct {
	Total              int // Total number of transactions processed
	AutoCategorized    int // Number of transactions assigned a category by a classifier
	AlreadyCategorized int // Number of transactions that arrived with a category
	Defaulted          int // Number of transactions that fell through to the default category
	ModelPredictions   int // Number of predictions produced by the trained model
	RuleBasedFallbacks int // Number of predictions produced by the rule-based scan
}

// NewCategorizationStats creates a new CategorizationStats instance.
func NewCategorizationStats() *CategorizationStats {
	return &CategorizationStats{}
}

// LogSummary logs a summary of categorization statistics.
func (cs CategorizationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	logger.Info("Categorization summary",
		logging.Field{Key: "total_transactions", Value: cs.Total},
		logging.Field{Key: "auto_categorized", Value: cs.AutoCategorized},
		logging.Field{Key: "already_categorized", Value: cs.AlreadyCategorized},
		logging.Field{Key: "defaulted", Value: cs.Defaulted},
		logging.Field{Key: "model_predictions", Value: cs.ModelPredictions},
		logging.Field{Key: "rule_based", Value: cs.RuleBasedFallbacks},
		logging.Field{Key: "auto_rate", Value: cs.GetAutoRate()},
	)
}

// GetAutoRate calculates the share of transactions categorized automatically
// as a percentage.
func (cs CategorizationStats) GetAutoRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.AutoCategorized) / float64(cs.Total) * 100.0
}

// IncrementTotal increments the total transaction count.
func (cs *CategorizationStats) IncrementTotal() {
	cs.Total++
}

// IncrementAutoCategorized increments the auto-categorized count.
func (cs *CategorizationStats) IncrementAutoCategorized() {
	cs.AutoCategorized++
}

// IncrementAlreadyCategorized increments the already-categorized count.
func (cs *CategorizationStats) IncrementAlreadyCategorized() {
	cs.AlreadyCategorized++
}

// IncrementDefaulted increments the defaulted count.
func (cs *CategorizationStats) IncrementDefaulted() {
	cs.Defaulted++
}
