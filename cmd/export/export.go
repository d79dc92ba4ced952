// Package export handles filtered CSV export commands
package export

import (
	"spendtrack/cmd/root"
	"spendtrack/internal/dateutils"
	"spendtrack/internal/ledger"
	"spendtrack/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export ledger transactions to a CSV file",
	Long: `Export transactions from a ledger CSV to a new CSV file, optionally
filtered by category or by month (YYYY-MM).`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Only export transactions in this category")
	Cmd.Flags().StringVarP(&root.Month, "month", "t", "", "Only export transactions in this month (YYYY-MM)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Error("Both --input and --output are required")
		return
	}

	transactions, err := ledger.ReadTransactions(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read ledger")
	}

	if root.Category != "" {
		transactions = ledger.FilterByCategory(transactions, root.Category)
	}
	if root.Month != "" {
		month, err := dateutils.ParseMonth(root.Month)
		if err != nil {
			root.Log.WithError(err).Fatal("Invalid month, expected YYYY-MM")
		}
		transactions = ledger.FilterByMonth(transactions, month)
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output},
	).Info("Exporting transactions")

	if err := ledger.WriteTransactions(transactions, root.SharedFlags.Output, root.Log); err != nil {
		root.Log.WithError(err).Fatal("Failed to write export")
	}
}
