// Package report renders spending summaries in machine-readable formats.
package report

import (
	"encoding/json"
	"fmt"

	"spendtrack/internal/ledger"
	"spendtrack/internal/logging"

	"gopkg.in/yaml.v3"
)

// Generator provides functionality to generate spending reports in various
// formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger.WithField("component", "ReportGenerator")}
}

// categoryDoc is the serialized form of a per-category aggregate. Amounts are
// rendered as fixed two-decimal strings so both encoders agree on formatting.
type categoryDoc struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
	Count    int    `json:"count" yaml:"count"`
}

// summaryDoc is the serialized form of a ledger.Summary.
type summaryDoc struct {
	Currency         string        `json:"currency,omitempty" yaml:"currency,omitempty"`
	Total            string        `json:"total" yaml:"total"`
	ThisMonth        string        `json:"this_month" yaml:"this_month"`
	LargestExpense   string        `json:"largest_expense" yaml:"largest_expense"`
	TransactionCount int           `json:"transaction_count" yaml:"transaction_count"`
	CategoryCount    int           `json:"category_count" yaml:"category_count"`
	ByCategory       []categoryDoc `json:"by_category" yaml:"by_category"`
}

// Generate renders a summary in the specified format (json or yaml). It
// returns the report as a byte slice and an error if generation fails or the
// format is unsupported.
func (g *Generator) Generate(summary ledger.Summary, format string) ([]byte, error) {
	doc := toDoc(summary)

	switch format {
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return out, nil
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func toDoc(s ledger.Summary) summaryDoc {
	doc := summaryDoc{
		Currency:         s.Currency,
		Total:            s.Total.StringFixed(2),
		ThisMonth:        s.ThisMonth.StringFixed(2),
		LargestExpense:   s.LargestExpense.StringFixed(2),
		TransactionCount: s.TransactionCount,
		CategoryCount:    s.CategoryCount,
		ByCategory:       make([]categoryDoc, 0, len(s.ByCategory)),
	}
	for _, ct := range s.ByCategory {
		doc.ByCategory = append(doc.ByCategory, categoryDoc{
			Category: ct.Category,
			Total:    ct.Total.StringFixed(2),
			Count:    ct.Count,
		})
	}
	return doc
}
