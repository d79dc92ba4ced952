// Package assist handles assistant query commands
package assist

import (
	"fmt"

	"spendtrack/cmd/root"
	"spendtrack/internal/ledger"
	"spendtrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the assist command
var Cmd = &cobra.Command{
	Use:   "assist",
	Short: "Ask the assistant about your expenses",
	Long: `Ask a free-form question about the ledger, such as "how much did I
spend on food" or "find the uber transaction". When --input names a ledger
CSV the answer is built from its transactions.`,
	Run: assistFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Query, "query", "q", "", "Question to ask")
	_ = Cmd.MarkFlagRequired("query")
}

func assistFunc(cmd *cobra.Command, args []string) {
	var transactions []models.Transaction
	if root.SharedFlags.Input != "" {
		loaded, err := ledger.ReadTransactions(root.SharedFlags.Input, root.Log)
		if err != nil {
			root.Log.WithError(err).Fatal("Failed to read ledger")
		}
		transactions = loaded
	}

	fmt.Println(root.App.GetAssistant().Answer(root.Query, transactions))
}
