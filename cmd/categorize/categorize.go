// Package categorize handles single-description categorization commands
package categorize

import (
	"fmt"

	"spendtrack/cmd/root"
	"spendtrack/internal/logging"
	"spendtrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize a single transaction description. By default a rule-based
matcher is used; with --model the description is classified by the trained
model, falling back to the rules when the model cannot produce a prediction.
With --correct the given category is recorded as a user correction instead.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().BoolVarP(&root.UseModel, "model", "m", false, "Use the trained model instead of rules only")
	Cmd.Flags().StringVar(&root.Correction, "correct", "", "Record this category as the correct one for the description")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	classifier := root.App.GetClassifier()

	if root.Correction != "" {
		if !models.IsValidCategory(root.Correction) {
			root.Log.WithField(logging.FieldCategory, root.Correction).Error("Unknown category")
			return
		}
		classifier.RecordCorrection(root.Description, root.Correction)
		fmt.Printf("Recorded correction: %q -> %s\n", root.Description, root.Correction)
		return
	}

	if root.UseModel {
		prediction := classifier.PredictWithModel(cmd.Context(), root.Description)
		root.Log.WithFields(
			logging.Field{Key: logging.FieldCategory, Value: prediction.Category},
			logging.Field{Key: logging.FieldSource, Value: string(prediction.Source)},
		).Debug("Model prediction complete")
		fmt.Printf("Category: %s (%s)\n", prediction.Category, prediction.Source)
		return
	}

	category := classifier.Predict(root.Description)
	fmt.Printf("Category: %s\n", category)
}
