package pipeline

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepak11085/Expenses-measure/internal/aggregate"
	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/models"
	"github.com/Deepak11085/Expenses-measure/internal/normalize"
	"github.com/Deepak11085/Expenses-measure/internal/pipelineerror"
	"github.com/Deepak11085/Expenses-measure/internal/rules"
)

func newPipeline() *Pipeline {
	logger := logging.NewMockLogger()
	engine := rules.NewEngine(nil, logger)
	return New(
		normalize.New(engine, false, logger),
		aggregate.New(engine, nil, logger),
		logger,
	)
}

func testDataset() models.Dataset {
	headers := []string{"Date", "Description", "Amount"}
	rows := []models.RawRow{
		{"Date": "2024-01-01", "Description": "Swiggy order #123", "Amount": "450"},
		{"Date": "2024-01-02", "Description": "Netflix", "Amount": "-15.99"},
		{"Date": "2024-01-03", "Description": "garbage", "Amount": "n/a"},
	}
	return models.Dataset{Headers: headers, Rows: rows}
}

func TestRunHappyPath(t *testing.T) {
	p := newPipeline()

	result, err := p.Run(testDataset())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.RunID)

	assert.Equal(t, models.ColumnMapping{Date: "Date", Description: "Description", Amount: "Amount"}, result.Mapping)

	require.Len(t, result.Transactions, 2)
	assert.Equal(t, "Food & Dining", result.Transactions[0].Category)
	assert.Equal(t, "Entertainment", result.Transactions[1].Category)

	require.Len(t, result.Categories, 2)
	assert.Equal(t, "Food & Dining", result.Categories[0].Name)

	// 450 of a 1000 budget and 15.99 of 500: no alerts.
	assert.Empty(t, result.Alerts)
}

func TestRunEmptyDataset(t *testing.T) {
	p := newPipeline()

	result, err := p.Run(models.Dataset{Headers: []string{"Date"}})
	assert.Nil(t, result)

	var emptyErr *pipelineerror.EmptyDatasetError
	require.True(t, errors.As(err, &emptyErr))
}

func TestRunColumnDetectionFailure(t *testing.T) {
	p := newPipeline()

	ds := models.Dataset{
		Headers: []string{"When", "What", "How Much"},
		Rows:    []models.RawRow{{"When": "2024-01-01", "What": "x", "How Much": "5"}},
	}
	result, err := p.Run(ds)
	assert.Nil(t, result, "no partial result on detection failure")

	var detectErr *pipelineerror.ColumnDetectionError
	require.True(t, errors.As(err, &detectErr))
	assert.Equal(t, []string{"date", "description", "amount"}, detectErr.Missing)
}

func TestRunBudgetAlert(t *testing.T) {
	logger := logging.NewMockLogger()
	engine := rules.NewEngine(nil, logger)
	override := func(category string) (decimal.Decimal, bool) {
		return decimal.NewFromInt(500), category == "Food & Dining"
	}
	p := New(
		normalize.New(engine, false, logger),
		aggregate.New(engine, override, logger),
		logger,
	)

	result, err := p.Run(testDataset())
	require.NoError(t, err)

	require.Len(t, result.Alerts, 1)
	alert := result.Alerts[0]
	assert.Equal(t, "Food & Dining", alert.Category)
	assert.Equal(t, models.SeverityWarning, alert.Severity)
	assert.InDelta(t, 90, alert.Percentage, 0.0001)
}

func TestRunIsRepeatable(t *testing.T) {
	p := newPipeline()
	ds := testDataset()

	first, err := p.Run(ds)
	require.NoError(t, err)
	second, err := p.Run(ds)
	require.NoError(t, err)

	// Everything except the generated run ID is identical.
	assert.Equal(t, first.Mapping, second.Mapping)
	assert.Equal(t, first.Transactions, second.Transactions)
	assert.Equal(t, first.Categories, second.Categories)
	assert.Equal(t, first.Alerts, second.Alerts)
	assert.NotEqual(t, first.RunID, second.RunID)
}
