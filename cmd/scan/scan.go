// Package scan handles receipt scanning commands
package scan

import (
	"fmt"

	"spendtrack/cmd/root"
	"spendtrack/internal/receipt"

	"github.com/spf13/cobra"
)

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract expense details from a receipt",
	Long: `Extract merchant, amount and date from receipt text and suggest a
category for the expense. The text can be given directly with --text, or an
image can be sent through the configured OCR service with --image.`,
	Run: scanFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Text, "text", "t", "", "Receipt text to parse")
	Cmd.Flags().StringVar(&root.ImagePath, "image", "", "Receipt image to run through OCR")
}

func scanFunc(cmd *cobra.Command, args []string) {
	text := root.Text
	if text == "" && root.ImagePath != "" {
		recognized, err := root.App.GetOCRClient().RecognizeFile(cmd.Context(), root.ImagePath)
		if err != nil {
			root.Log.WithError(err).Fatal("OCR failed")
		}
		text = recognized
	}
	if text == "" {
		root.Log.Error("Either --text or --image is required")
		return
	}

	result := receipt.Parse(text)
	category := root.App.GetClassifier().Predict(result.SuggestText())

	fmt.Printf("Merchant: %s\n", result.Merchant)
	if result.HasAmount {
		fmt.Printf("Amount:   %s\n", result.Amount.StringFixed(2))
	} else {
		fmt.Println("Amount:   not found")
	}
	if result.Date != "" {
		fmt.Printf("Date:     %s\n", result.Date)
	}
	fmt.Printf("Category: %s\n", category)
}
