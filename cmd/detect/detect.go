// Package detect implements the detect command: show which CSV headers were
// inferred as the date, description and amount columns.
package detect

import (
	"github.com/spf13/cobra"

	"github.com/Deepak11085/Expenses-measure/cmd/root"
	"github.com/Deepak11085/Expenses-measure/internal/columns"
	"github.com/Deepak11085/Expenses-measure/internal/csvio"
)

// Cmd is the detect command.
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the inferred column mapping for a CSV file",
	Run:   detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	log := root.Log

	if root.SharedFlags.Input == "" {
		log.Fatal("Input file is required")
	}

	ds, err := csvio.DecodeFile(root.SharedFlags.Input)
	if err != nil {
		log.Fatalf("Error decoding CSV: %v", err)
	}
	if len(ds.Rows) == 0 {
		log.Fatal("Empty dataset: no data rows after decode")
	}

	mapping := columns.Detect(ds)
	log.Infof("Date column: %s", orUndetected(mapping.Date))
	log.Infof("Description column: %s", orUndetected(mapping.Description))
	log.Infof("Amount column: %s", orUndetected(mapping.Amount))

	if missing := mapping.Missing(); len(missing) > 0 {
		log.Fatalf("Required columns not detected: %v", missing)
	}
}

func orUndetected(header string) string {
	if header == "" {
		return "(not detected)"
	}
	return header
}
