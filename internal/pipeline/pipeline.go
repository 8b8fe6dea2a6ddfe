// Package pipeline wires column detection, categorization and aggregation
// into a single one-shot run over a decoded dataset.
//
// A run is synchronous and pure with respect to its own logic: it receives
// fully decoded rows, derives everything in one pass and performs no network
// or disk I/O of its own.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/Deepak11085/Expenses-measure/internal/aggregate"
	"github.com/Deepak11085/Expenses-measure/internal/columns"
	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/models"
	"github.com/Deepak11085/Expenses-measure/internal/normalize"
	"github.com/Deepak11085/Expenses-measure/internal/pipelineerror"
)

// Result is the complete derived state of one pipeline run. It is replaced
// wholesale by the next run; consumers never see a partial mix of old and new
// state.
type Result struct {
	RunID        string
	Mapping      models.ColumnMapping
	Transactions []models.Transaction
	Categories   []models.Category
	Alerts       []models.BudgetAlert
}

// Pipeline runs the column-inference + categorization + aggregation chain.
type Pipeline struct {
	normalizer *normalize.Normalizer
	aggregator *aggregate.Aggregator
	logger     logging.Logger
}

// New creates a Pipeline from its stages.
func New(normalizer *normalize.Normalizer, aggregator *aggregate.Aggregator, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Pipeline{
		normalizer: normalizer,
		aggregator: aggregator,
		logger:     logger,
	}
}

// Run executes one full pipeline pass over the dataset. It fails terminally
// with an EmptyDatasetError when there are no data rows, and with a
// ColumnDetectionError when any of the date/description/amount columns could
// not be inferred; no partial result is produced in either case.
func (p *Pipeline) Run(ds models.Dataset) (*Result, error) {
	if len(ds.Rows) == 0 {
		return nil, &pipelineerror.EmptyDatasetError{}
	}

	runID := uuid.New().String()
	log := p.logger.WithField(logging.FieldRunID, runID)

	mapping := columns.Detect(ds)
	if missing := mapping.Missing(); len(missing) > 0 {
		return nil, &pipelineerror.ColumnDetectionError{Missing: missing}
	}
	log.WithFields(
		logging.Field{Key: "date_column", Value: mapping.Date},
		logging.Field{Key: "description_column", Value: mapping.Description},
		logging.Field{Key: "amount_column", Value: mapping.Amount},
	).Debug("Detected transaction columns")

	transactions := p.normalizer.Normalize(ds.Rows, mapping)
	categories, alerts := p.aggregator.Aggregate(transactions)

	log.WithFields(
		logging.Field{Key: "rows", Value: len(ds.Rows)},
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "categories", Value: len(categories)},
		logging.Field{Key: "alerts", Value: len(alerts)},
	).Info("Pipeline run completed")

	return &Result{
		RunID:        runID,
		Mapping:      mapping,
		Transactions: transactions,
		Categories:   categories,
		Alerts:       alerts,
	}, nil
}
