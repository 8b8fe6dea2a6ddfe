package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected decimal.Decimal
	}{
		{name: "integer", raw: "100", expected: decimal.NewFromInt(100)},
		{name: "fractional", raw: "75.5", expected: decimal.NewFromFloat(75.5)},
		{name: "negative", raw: "-50", expected: decimal.NewFromInt(-50)},
		{name: "surrounding spaces", raw: "  12.30 ", expected: decimal.NewFromFloat(12.3)},
		{name: "unparseable coerces to zero", raw: "abc", expected: decimal.Zero},
		{name: "empty coerces to zero", raw: "", expected: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestColumnMappingMissing(t *testing.T) {
	tests := []struct {
		name     string
		mapping  ColumnMapping
		missing  []string
		complete bool
	}{
		{
			name:     "all present",
			mapping:  ColumnMapping{Date: "Date", Description: "Details", Amount: "Amount"},
			missing:  nil,
			complete: true,
		},
		{
			name:     "all absent",
			mapping:  ColumnMapping{},
			missing:  []string{"date", "description", "amount"},
			complete: false,
		},
		{
			name:     "amount absent",
			mapping:  ColumnMapping{Date: "Date", Description: "Details"},
			missing:  []string{"amount"},
			complete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, tt.mapping.Missing())
			assert.Equal(t, tt.complete, tt.mapping.Complete())
		})
	}
}
