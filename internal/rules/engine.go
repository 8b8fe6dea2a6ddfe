// Package rules implements keyword-based transaction categorization over a
// fixed ordered rule catalog.
package rules

import (
	"strings"

	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/models"
)

// Engine matches transaction descriptions against an ordered rule catalog.
// Matching is a case-insensitive unanchored substring test over the
// description plus an optional merchant signal; the first rule with any
// matching keyword wins.
type Engine struct {
	catalog []models.CategoryRule
	logger  logging.Logger
}

// NewEngine creates an Engine over the given catalog. A nil or empty catalog
// falls back to the builtin rule table.
func NewEngine(catalog []models.CategoryRule, logger logging.Logger) *Engine {
	if len(catalog) == 0 {
		catalog = builtinCatalog()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		catalog: catalog,
		logger:  logger,
	}
}

// Categorize returns the first catalog rule with a keyword contained in the
// search text, or the fallback rule when nothing matches. The merchant is an
// optional second signal and may be empty. Categorize never fails.
func (e *Engine) Categorize(description, merchant string) models.CategoryRule {
	search := strings.ToLower(strings.TrimSpace(description + " " + merchant))

	for _, rule := range e.catalog {
		for _, keyword := range rule.Keywords {
			if strings.Contains(search, strings.ToLower(keyword)) {
				e.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Category},
				).Debug("Transaction categorized by keyword")
				return rule
			}
		}
	}

	return Fallback()
}

// RuleFor looks up a catalog rule by category name. The fallback rule is not
// part of the catalog, so "Others" reports false like any unknown name.
func (e *Engine) RuleFor(category string) (models.CategoryRule, bool) {
	for _, rule := range e.catalog {
		if rule.Category == category {
			return rule, true
		}
	}
	return models.CategoryRule{}, false
}

// Catalog returns a copy of the ordered rule table for read-only rendering
// of legends and icons.
func (e *Engine) Catalog() []models.CategoryRule {
	out := make([]models.CategoryRule, len(e.catalog))
	copy(out, e.catalog)
	return out
}
