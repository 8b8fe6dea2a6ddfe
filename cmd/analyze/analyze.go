// Package analyze implements the analyze command: decode a CSV export, run
// the categorization pipeline and print the spending report.
package analyze

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Deepak11085/Expenses-measure/cmd/root"
	"github.com/Deepak11085/Expenses-measure/internal/csvio"
	"github.com/Deepak11085/Expenses-measure/internal/pipeline"
	"github.com/Deepak11085/Expenses-measure/internal/report"
)

// Cmd is the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CSV export of transactions",
	Long: `Analyze decodes a bank or wallet CSV export, infers the date, description
and amount columns, categorizes every transaction and prints per-category
totals with budget alerts. With --output the normalized transactions are also
written to a CSV file.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	if root.SharedFlags.Input == "" {
		log.Fatal("Input file is required")
	}

	ds, err := csvio.DecodeFile(root.SharedFlags.Input)
	if err != nil {
		log.Fatalf("Error decoding CSV: %v", err)
	}

	engine := root.NewEngine()
	p := root.NewPipeline(engine)

	session := pipeline.NewSession()
	result, err := session.Run(p, ds)
	if err != nil {
		log.Fatalf("Error processing transactions: %v", err)
	}

	generator := report.NewGenerator(os.Stdout)
	if err := generator.Write(result, root.SharedFlags.Format); err != nil {
		log.Fatalf("Error writing report: %v", err)
	}

	if root.SharedFlags.Output != "" {
		if err := csvio.WriteTransactions(result.Transactions, root.SharedFlags.Output); err != nil {
			log.Fatalf("Error writing transactions: %v", err)
		}
		log.Infof("Wrote %d normalized transactions to %s", len(result.Transactions), root.SharedFlags.Output)
	}
}
