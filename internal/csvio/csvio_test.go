package csvio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepak11085/Expenses-measure/internal/models"
	"github.com/Deepak11085/Expenses-measure/internal/pipelineerror"
)

func TestDecodeReader(t *testing.T) {
	input := "Date,Description,Amount\n" +
		"2024-01-01,Swiggy order,450\n" +
		"2024-01-02,Netflix,15.99\n"

	ds, err := DecodeReader(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "Description", "Amount"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, models.RawRow{
		"Date":        "2024-01-01",
		"Description": "Swiggy order",
		"Amount":      "450",
	}, ds.Rows[0])
	assert.Equal(t, "15.99", ds.Rows[1]["Amount"])
}

func TestDecodeReaderEmptyInput(t *testing.T) {
	ds, err := DecodeReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ds.Headers)
	assert.Empty(t, ds.Rows)
}

func TestDecodeReaderHeaderOnly(t *testing.T) {
	ds, err := DecodeReader(strings.NewReader("Date,Description,Amount\n"))
	require.NoError(t, err)
	assert.Len(t, ds.Headers, 3)
	assert.Empty(t, ds.Rows)
}

func TestDecodeReaderRaggedRow(t *testing.T) {
	input := "Date,Description,Amount\n" +
		"2024-01-01,Swiggy order\n"

	_, err := DecodeReader(strings.NewReader(input))
	var decodeErr *pipelineerror.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Line)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestWriteTransactions(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out", "transactions.csv")

	transactions := []models.Transaction{
		{
			ID:          "txn-0",
			Date:        "2024-01-01",
			Description: "Swiggy order",
			Merchant:    "Swiggy",
			Amount:      decimal.NewFromInt(450),
			Category:    "Food & Dining",
		},
	}
	require.NoError(t, WriteTransactions(transactions, outFile))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "ID,Date,Description,Merchant,Amount,Category")
	assert.Contains(t, content, "txn-0,2024-01-01,Swiggy order,Swiggy,450.00,Food & Dining")
}

func TestWriteTransactionsNil(t *testing.T) {
	err := WriteTransactions(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}
