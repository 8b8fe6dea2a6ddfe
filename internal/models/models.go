// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// RawRow is one decoded CSV data line, keyed by the original header names.
// Rows are produced by the CSV decoder and only read by the pipeline.
type RawRow map[string]string

// Dataset is the decoded form of one uploaded CSV file: the header names in
// column order plus one RawRow per data line. All rows share the same headers.
type Dataset struct {
	Headers []string
	Rows    []RawRow
}

// ColumnMapping associates the semantic transaction fields with concrete
// header names from the uploaded file. An empty field means the column could
// not be inferred from the headers.
type ColumnMapping struct {
	Date        string
	Description string
	Amount      string
}

// Complete reports whether all three columns were inferred.
func (m ColumnMapping) Complete() bool {
	return m.Date != "" && m.Description != "" && m.Amount != ""
}

// Missing returns the names of the semantic fields that could not be mapped.
func (m ColumnMapping) Missing() []string {
	var missing []string
	if m.Date == "" {
		missing = append(missing, "date")
	}
	if m.Description == "" {
		missing = append(missing, "description")
	}
	if m.Amount == "" {
		missing = append(missing, "amount")
	}
	return missing
}

// Icon identifiers form a closed set so that renderers can map each one to an
// implementation, with a statically known fallback.
const (
	IconUtensils       = "utensils"
	IconShoppingBag    = "shopping-bag"
	IconCar            = "car"
	IconPlayCircle     = "play-circle"
	IconBookOpen       = "book-open"
	IconHospital       = "hospital"
	IconZap            = "zap"
	IconMoreHorizontal = "more-horizontal"
)

// CategoryRule is one entry of the ordered categorization catalog. Keywords
// are lowercase substrings; catalog position determines match priority.
type CategoryRule struct {
	Category string
	Keywords []string
	Color    string
	Icon     string
	Budget   decimal.Decimal
}

// Transaction is a normalized transaction record produced from one RawRow.
// Transactions are never mutated after creation and are replaced wholesale on
// the next upload.
type Transaction struct {
	ID           string
	Date         string
	Description  string
	Merchant     string
	Amount       decimal.Decimal
	Category     string
	OriginalData RawRow
}

// Category is the aggregate view of all transactions sharing one category
// name, merged with the catalog's display metadata.
type Category struct {
	Name   string
	Total  decimal.Decimal
	Count  int
	Color  string
	Icon   string
	Budget decimal.Decimal
}

// Severity grades a budget alert.
type Severity string

const (
	// SeverityWarning indicates spend above 80% of the category budget.
	SeverityWarning Severity = "warning"
	// SeverityDanger indicates spend above the category budget.
	SeverityDanger Severity = "danger"
)

// BudgetAlert is emitted for every category whose aggregate spend exceeds
// 80% of its budget.
type BudgetAlert struct {
	Category   string
	Spent      decimal.Decimal
	Budget     decimal.Decimal
	Percentage float64
	Severity   Severity
}
