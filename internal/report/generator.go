// Package report renders a spending summary for a pipeline run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Deepak11085/Expenses-measure/internal/pipeline"
)

// Generator renders pipeline results in text or JSON form.
type Generator struct {
	w io.Writer
}

// NewGenerator creates a Generator writing to w.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{w: w}
}

// Write renders the result in the requested format ("text" or "json").
func (g *Generator) Write(result *pipeline.Result, format string) error {
	switch format {
	case "json":
		return g.writeJSON(result)
	case "text", "":
		return g.writeText(result)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) writeJSON(result *pipeline.Result) error {
	enc := json.NewEncoder(g.w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (g *Generator) writeText(result *pipeline.Result) error {
	total := decimal.Zero
	for _, tx := range result.Transactions {
		total = total.Add(tx.Amount)
	}

	if _, err := fmt.Fprintf(g.w, "Transactions: %d\nTotal spend: %s\n\n", len(result.Transactions), total.StringFixed(2)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(g.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSPENT\tBUDGET\tUSED\tTXNS")
	for _, cat := range result.Categories {
		used := "-"
		if cat.Budget.IsPositive() {
			pct, _ := cat.Total.Div(cat.Budget).Mul(decimal.NewFromInt(100)).Float64()
			used = fmt.Sprintf("%.1f%%", pct)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			cat.Name, cat.Total.StringFixed(2), cat.Budget.StringFixed(2), used, cat.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.Alerts) == 0 {
		_, err := fmt.Fprintln(g.w, "\nNo budget alerts.")
		return err
	}

	if _, err := fmt.Fprintln(g.w, "\nAlerts:"); err != nil {
		return err
	}
	for _, alert := range result.Alerts {
		if _, err := fmt.Fprintf(g.w, "  [%s] %s at %.1f%% of budget (%s of %s)\n",
			alert.Severity, alert.Category, alert.Percentage,
			alert.Spent.StringFixed(2), alert.Budget.StringFixed(2)); err != nil {
			return err
		}
	}
	return nil
}
