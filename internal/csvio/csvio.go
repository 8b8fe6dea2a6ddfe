// Package csvio decodes uploaded CSV exports into raw row records and writes
// normalized transactions back out.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/models"
	"github.com/Deepak11085/Expenses-measure/internal/pipelineerror"
)

var log = logging.GetLogger()

// Global CSV delimiter - configured from the application config at startup.
var delimiter rune = ','

// SetDelimiter sets the delimiter used for both decoding and export.
func SetDelimiter(delim rune) {
	delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// DecodeReader decodes CSV data into a Dataset. The first record is the
// header row and defines the keys of every RawRow; header order is preserved
// for deterministic column inference.
//
// The header keys are decoded with encoding/csv rather than gocsv because the
// column names are unknown ahead of time and their file order matters; gocsv
// is used for the fixed-schema export side.
func DecodeReader(r io.Reader) (models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter

	headers, err := reader.Read()
	if err == io.EOF {
		// No header row at all: an empty dataset, not a decode failure.
		return models.Dataset{}, nil
	}
	if err != nil {
		return models.Dataset{}, wrapDecodeError(err)
	}

	ds := models.Dataset{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.Dataset{}, wrapDecodeError(err)
		}

		row := make(models.RawRow, len(headers))
		for i, h := range headers {
			row[h] = record[i]
		}
		ds.Rows = append(ds.Rows, row)
	}

	log.WithField(logging.FieldCount, len(ds.Rows)).Debug("Decoded CSV rows")
	return ds, nil
}

// DecodeFile opens and decodes a CSV file into a Dataset.
func DecodeFile(filePath string) (models.Dataset, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return DecodeReader(file)
}

// wrapDecodeError turns a csv reader error into a DecodeError, carrying the
// 1-based line number when the reader knows it.
func wrapDecodeError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &pipelineerror.DecodeError{Line: parseErr.Line, Err: err}
	}
	return &pipelineerror.DecodeError{Err: err}
}

// transactionCSVRow is the flat export shape of a normalized transaction.
type transactionCSVRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Merchant    string `csv:"Merchant"`
	Amount      string `csv:"Amount"`
	Category    string `csv:"Category"`
}

// WriteTransactions writes normalized transactions to a CSV file.
func WriteTransactions(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionCSVRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, transactionCSVRow{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Merchant:    tx.Merchant,
			Amount:      tx.Amount.StringFixed(2),
			Category:    tx.Category,
		})
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
