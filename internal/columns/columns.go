// Package columns infers which headers of an uploaded CSV carry the date,
// description and amount of a transaction.
//
// Bank and wallet exports do not agree on header names, so each semantic
// field has a ranked vocabulary of known spellings. An earlier fragment beats
// a later one even when both appear somewhere in the header set; within one
// fragment the first header in column order wins.
package columns

import (
	"sort"
	"strings"

	"github.com/Deepak11085/Expenses-measure/internal/models"
)

var dateFragments = []string{
	"date", "transaction date", "txn date", "timestamp", "created_at",
	"posting date", "value date", "effective date", "process date",
	"settlement date", "booking date", "trans date", "tran date",
	"transaction_date", "post_date", "posted_date", "cleared_date",
}

var descriptionFragments = []string{
	"description", "details", "merchant", "txn details", "narration", "reference",
	"particulars", "remarks", "payee", "memo", "note", "comment",
	"transaction details", "trans details", "purpose", "reason",
	"beneficiary", "vendor", "supplier", "customer", "counterparty",
}

var amountFragments = []string{
	"amount", "debit", "credit", "txn amount", "transaction amount", "value",
	"price", "cost", "debit amount", "credit amount", "net amount",
	"gross amount", "total", "sum", "balance", "withdrawal", "deposit",
	"payment", "receipt", "charge", "fee", "trans amount", "tran amount",
}

// Detect infers the column mapping from the dataset's header set. An empty
// dataset fails closed to an all-empty mapping rather than an error; the
// caller must check Missing before normalizing.
//
// Detect is a pure function over the headers of the first row: all rows are
// assumed to share the same header set.
func Detect(ds models.Dataset) models.ColumnMapping {
	if len(ds.Rows) == 0 {
		return models.ColumnMapping{}
	}

	headers := ds.Headers
	if len(headers) == 0 {
		// Dataset built from bare rows: fall back to the first row's keys in
		// a deterministic order.
		for h := range ds.Rows[0] {
			headers = append(headers, h)
		}
		sort.Strings(headers)
	}

	return models.ColumnMapping{
		Date:        findHeader(headers, dateFragments),
		Description: findHeader(headers, descriptionFragments),
		Amount:      findHeader(headers, amountFragments),
	}
}

// findHeader scans the ranked fragments and returns the original-case header
// containing the first fragment that matches anywhere, or "" when none does.
func findHeader(headers, fragments []string) string {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(h)
	}

	for _, fragment := range fragments {
		for i, h := range lowered {
			if strings.Contains(h, fragment) {
				return headers[i]
			}
		}
	}
	return ""
}
