// Package aggregate derives per-category spending totals and budget alerts
// from a normalized transaction set.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/models"
	"github.com/Deepak11085/Expenses-measure/internal/rules"
)

// alertThreshold is the budget fraction above which a category raises an alert.
var alertThreshold = decimal.NewFromFloat(0.8)

var oneHundred = decimal.NewFromInt(100)

// BudgetOverride resolves a session-local budget override for a category.
// It is consulted before the catalog default and never affects categorization.
type BudgetOverride func(category string) (decimal.Decimal, bool)

// Aggregator computes category aggregates. It groups by the Category field
// already stamped on each transaction; the rule engine is only consulted for
// display metadata and default budgets.
type Aggregator struct {
	engine   *rules.Engine
	override BudgetOverride
	logger   logging.Logger
}

// New creates an Aggregator. The override may be nil, in which case catalog
// budgets apply unchanged.
func New(engine *rules.Engine, override BudgetOverride, logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{
		engine:   engine,
		override: override,
		logger:   logger,
	}
}

// Aggregate recomputes the full category view and its budget alerts from
// scratch. Category order is the order of first occurrence of each category
// name in the transaction sequence; alert order follows category order.
func (a *Aggregator) Aggregate(transactions []models.Transaction) ([]models.Category, []models.BudgetAlert) {
	totals := make(map[string]*models.Category)
	var order []string

	for _, tx := range transactions {
		cat, ok := totals[tx.Category]
		if !ok {
			rule, found := a.engine.RuleFor(tx.Category)
			if !found {
				// Covers "Others" and any externally injected category name.
				rule = rules.Fallback()
			}
			cat = &models.Category{
				Name:   tx.Category,
				Color:  rule.Color,
				Icon:   rule.Icon,
				Budget: rule.Budget,
			}
			if a.override != nil {
				if budget, ok := a.override(tx.Category); ok && budget.IsPositive() {
					cat.Budget = budget
				}
			}
			totals[tx.Category] = cat
			order = append(order, tx.Category)
		}
		cat.Total = cat.Total.Add(tx.Amount)
		cat.Count++
	}

	categories := make([]models.Category, 0, len(order))
	var alerts []models.BudgetAlert
	for _, name := range order {
		cat := *totals[name]
		categories = append(categories, cat)

		if !cat.Budget.IsPositive() {
			continue
		}
		if cat.Total.GreaterThan(cat.Budget.Mul(alertThreshold)) {
			severity := models.SeverityWarning
			if cat.Total.GreaterThan(cat.Budget) {
				severity = models.SeverityDanger
			}
			percentage, _ := cat.Total.Div(cat.Budget).Mul(oneHundred).Float64()
			alerts = append(alerts, models.BudgetAlert{
				Category:   name,
				Spent:      cat.Total,
				Budget:     cat.Budget,
				Percentage: percentage,
				Severity:   severity,
			})
		}
	}

	if len(alerts) > 0 {
		a.logger.WithField(logging.FieldCount, len(alerts)).Debug("Budget alerts raised")
	}
	return categories, alerts
}
