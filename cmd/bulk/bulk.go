// Package bulk handles batch categorization of ledger CSV files
package bulk

import (
	"spendtrack/cmd/root"
	"spendtrack/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the bulk command
var Cmd = &cobra.Command{
	Use:   "bulk",
	Short: "Categorize every uncategorized transaction in a ledger CSV",
	Long: `Read a ledger CSV, assign a category to every transaction that does
not have one yet, and write the result. With --input-dir and --output-dir a
whole directory of CSV files is processed instead.`,
	Run: bulkFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&root.UseModel, "model", "m", false, "Use the trained model instead of rules only")
	Cmd.Flags().StringVar(&root.InputDir, "input-dir", "", "Directory of ledger CSV files to process")
	Cmd.Flags().StringVar(&root.OutputDir, "output-dir", "", "Directory to write categorized CSV files to")
}

func bulkFunc(cmd *cobra.Command, args []string) {
	pipeline := root.App.NewPipeline(root.UseModel)

	if root.InputDir != "" || root.OutputDir != "" {
		if root.InputDir == "" || root.OutputDir == "" {
			root.Log.Error("Both --input-dir and --output-dir are required for directory processing")
			return
		}
		if err := pipeline.ProcessDirectory(cmd.Context(), root.InputDir, root.OutputDir); err != nil {
			root.Log.WithError(err).Fatal("Directory processing failed")
		}
		return
	}

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Error("Both --input and --output are required")
		return
	}

	transactions, err := ledger.ReadTransactions(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read ledger")
	}

	stats := pipeline.Categorize(cmd.Context(), transactions)
	stats.LogSummary(root.Log)

	if err := ledger.WriteTransactions(transactions, root.SharedFlags.Output, root.Log); err != nil {
		root.Log.WithError(err).Fatal("Failed to write ledger")
	}
}
