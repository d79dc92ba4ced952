// Package summary handles spending summary commands
package summary

import (
	"fmt"
	"time"

	"spendtrack/cmd/root"
	"spendtrack/internal/currencyutils"
	"spendtrack/internal/ledger"

	"github.com/spf13/cobra"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize spending in a ledger CSV",
	Long: `Summarize a ledger CSV: total spending, spending this month, the
largest expense, and per-category totals. Output is plain text by default, or
a structured report with --format json or --format yaml.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "text", "Output format: text, json or yaml")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Error("--input is required")
		return
	}

	transactions, err := ledger.ReadTransactions(root.SharedFlags.Input, root.Log)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read ledger")
	}

	summary := ledger.Summarize(transactions, time.Now())

	if root.Format == "text" {
		printText(summary)
		return
	}

	data, err := root.App.GetReporter().Generate(summary, root.Format)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to generate report")
	}
	fmt.Println(string(data))
}

func printText(s ledger.Summary) {
	fmt.Printf("Transactions:    %d\n", s.TransactionCount)
	fmt.Printf("Total spending:  %s\n", currencyutils.FormatAmount(s.Total, s.Currency))
	fmt.Printf("This month:      %s\n", currencyutils.FormatAmount(s.ThisMonth, s.Currency))
	fmt.Printf("Largest expense: %s\n", currencyutils.FormatAmount(s.LargestExpense, s.Currency))
	fmt.Printf("Categories:      %d\n", s.CategoryCount)
	if len(s.ByCategory) > 0 {
		fmt.Println("\nBy category:")
		for _, c := range s.ByCategory {
			fmt.Printf("  %-20s %10s  (%d)\n", c.Category, c.Total.StringFixed(2), c.Count)
		}
	}
}
