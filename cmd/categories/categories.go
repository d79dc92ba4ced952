// Package categories lists the known expense categories
package categories

import (
	"fmt"

	"spendtrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the known expense categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, category := range models.Categories {
			fmt.Println(category)
		}
	},
}
