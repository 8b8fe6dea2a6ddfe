// Package categorize implements the categorize command: a one-off category
// lookup for a transaction description.
package categorize

import (
	"github.com/spf13/cobra"

	"github.com/Deepak11085/Expenses-measure/cmd/root"
)

var (
	description string
	merchant    string
)

// Cmd is the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize matches a transaction description (and optionally a merchant
name) against the keyword rule catalog and prints the winning category.`,
	Run: categorizeFunc,
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	if description == "" {
		log.Fatal("Description is required")
	}

	engine := root.NewEngine()
	rule := engine.Categorize(description, merchant)

	log.Infof("Category: %s", rule.Category)
	log.Infof("Color: %s  Icon: %s  Budget: %s", rule.Color, rule.Icon, rule.Budget.StringFixed(2))
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description (required)")
	Cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "Merchant name (optional second signal)")
	if err := Cmd.MarkFlagRequired("description"); err != nil {
		panic(err)
	}
}
