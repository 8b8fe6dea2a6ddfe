package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a raw cell value into a decimal amount. Values that
// cannot be parsed coerce to zero so that a malformed row degrades instead of
// aborting the whole import.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
