// Package root contains the root command for the application.
package root

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Deepak11085/Expenses-measure/internal/aggregate"
	"github.com/Deepak11085/Expenses-measure/internal/config"
	"github.com/Deepak11085/Expenses-measure/internal/csvio"
	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/normalize"
	"github.com/Deepak11085/Expenses-measure/internal/pipeline"
	"github.com/Deepak11085/Expenses-measure/internal/rules"
	"github.com/Deepak11085/Expenses-measure/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags holds the common flags accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "expenses-measure",
		Short: "Categorize bank CSV exports and measure spending against budgets.",
		Long: `expenses-measure ingests a CSV of financial transactions from any bank or
wallet export, infers which columns carry the date, description and amount,
assigns each transaction to a spending category by keyword matching, and
reports per-category totals with budget alerts.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expenses-measure!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			adapter := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetLogger(adapter)
			csvio.SetLogger(adapter)
			csvio.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file for normalized transactions")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "text", "Report format (text or json)")
}

// NewEngine builds the rule engine from the configured catalog, falling back
// to the builtin catalog when no rules file is present.
func NewEngine() *rules.Engine {
	logger := logging.GetLogger()
	catalogStore := store.NewCatalogStore(Cfg.Rules.File, logger)
	catalog, err := catalogStore.LoadCatalog()
	if err != nil {
		logger.WithError(err).Warn("Failed to load rules file, using builtin catalog")
		catalog = nil
	}
	return rules.NewEngine(catalog, logger)
}

// NewPipeline wires the full pipeline from the loaded configuration.
func NewPipeline(engine *rules.Engine) *pipeline.Pipeline {
	logger := logging.GetLogger()
	overrides := Cfg.BudgetOverrides()
	var override aggregate.BudgetOverride
	if len(overrides) > 0 {
		override = func(category string) (decimal.Decimal, bool) {
			budget, ok := overrides[category]
			return budget, ok
		}
	}

	normalizer := normalize.New(engine, Cfg.Categorization.UseMerchant, logger)
	aggregator := aggregate.New(engine, override, logger)
	return pipeline.New(normalizer, aggregator, logger)
}
