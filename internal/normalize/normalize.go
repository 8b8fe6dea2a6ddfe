// Package normalize converts raw CSV rows into transaction records using a
// column mapping and the category rule engine.
package normalize

import (
	"fmt"
	"strings"

	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/models"
	"github.com/Deepak11085/Expenses-measure/internal/rules"
)

// Normalizer turns raw rows into Transactions. It is stateless apart from its
// collaborators, so Normalize is pure: the same input always yields
// structurally identical output.
type Normalizer struct {
	engine      *rules.Engine
	useMerchant bool
	logger      logging.Logger
}

// New creates a Normalizer. When useMerchant is set, the derived merchant
// token is passed to the rule engine as a second categorization signal; by
// default only the description is matched.
func New(engine *rules.Engine, useMerchant bool, logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{
		engine:      engine,
		useMerchant: useMerchant,
		logger:      logger,
	}
}

// Normalize produces one Transaction per valid input row, preserving input
// order. IDs are "txn-<index>" over the 0-based input position and are not
// renumbered when earlier rows are filtered out.
//
// Amounts are taken by absolute value, so a negative raw amount counts as a
// positive spend. Rows whose amount is unparseable or zero are dropped
// silently; a missing description or date coerces to the empty string and the
// row is kept. The caller must pass a complete mapping.
func (n *Normalizer) Normalize(rows []models.RawRow, mapping models.ColumnMapping) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(rows))
	dropped := 0

	for i, row := range rows {
		amount := models.ParseAmount(row[mapping.Amount]).Abs()
		if !amount.IsPositive() {
			dropped++
			continue
		}

		description := row[mapping.Description]
		merchant := firstToken(description)

		ruleMerchant := ""
		if n.useMerchant {
			ruleMerchant = merchant
		}
		rule := n.engine.Categorize(description, ruleMerchant)

		transactions = append(transactions, models.Transaction{
			ID:           fmt.Sprintf("txn-%d", i),
			Date:         row[mapping.Date],
			Description:  description,
			Merchant:     merchant,
			Amount:       amount,
			Category:     rule.Category,
			OriginalData: row,
		})
	}

	if dropped > 0 {
		n.logger.WithFields(
			logging.Field{Key: logging.FieldDropped, Value: dropped},
			logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		).Debug("Dropped rows without a positive amount")
	}
	return transactions
}

// firstToken returns the first whitespace-delimited token of the description,
// or "Unknown" when there is none.
func firstToken(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return "Unknown"
	}
	return fields[0]
}
