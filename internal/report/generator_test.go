package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepak11085/Expenses-measure/internal/models"
	"github.com/Deepak11085/Expenses-measure/internal/pipeline"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		RunID: "run-1",
		Mapping: models.ColumnMapping{
			Date:        "Date",
			Description: "Description",
			Amount:      "Amount",
		},
		Transactions: []models.Transaction{
			{ID: "txn-0", Date: "2024-01-01", Description: "Swiggy order", Merchant: "Swiggy", Amount: decimal.RequireFromString("450"), Category: "Food & Dining"},
			{ID: "txn-1", Date: "2024-01-02", Description: "Uber ride", Merchant: "Uber", Amount: decimal.RequireFromString("220"), Category: "Transportation"},
		},
		Categories: []models.Category{
			{Name: "Food & Dining", Total: decimal.RequireFromString("450"), Count: 1, Color: "#EF4444", Icon: models.IconUtensils, Budget: decimal.NewFromInt(500)},
			{Name: "Transportation", Total: decimal.RequireFromString("220"), Count: 1, Color: "#3B82F6", Icon: models.IconCar, Budget: decimal.NewFromInt(800)},
		},
		Alerts: []models.BudgetAlert{
			{Category: "Food & Dining", Spent: decimal.RequireFromString("450"), Budget: decimal.NewFromInt(500), Percentage: 90, Severity: models.SeverityWarning},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	g := NewGenerator(&buf)

	require.NoError(t, g.Write(sampleResult(), "text"))

	out := buf.String()
	assert.Contains(t, out, "Transactions: 2")
	assert.Contains(t, out, "Total spend: 670.00")
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Food & Dining")
	assert.Contains(t, out, "90.0%")
	assert.Contains(t, out, "[warning] Food & Dining at 90.0% of budget (450.00 of 500.00)")
}

func TestWriteTextNoAlerts(t *testing.T) {
	result := sampleResult()
	result.Alerts = nil

	var buf bytes.Buffer
	require.NoError(t, NewGenerator(&buf).Write(result, ""))
	assert.Contains(t, buf.String(), "No budget alerts.")
}

func TestWriteTextZeroBudget(t *testing.T) {
	result := sampleResult()
	result.Categories[0].Budget = decimal.Zero
	result.Categories[1].Budget = decimal.Zero
	result.Alerts = nil

	var buf bytes.Buffer
	require.NoError(t, NewGenerator(&buf).Write(result, "text"))
	assert.NotContains(t, buf.String(), "%", "zero budgets render no usage percentage")
	assert.Contains(t, buf.String(), "0.00")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewGenerator(&buf).Write(sampleResult(), "json"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["RunID"])
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewGenerator(&buf).Write(sampleResult(), "xml")
	assert.ErrorContains(t, err, "unsupported report format")
}
