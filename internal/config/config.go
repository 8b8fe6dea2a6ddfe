// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Categorization struct {
		// UseMerchant feeds the derived merchant token into keyword matching
		// as a second signal alongside the description.
		UseMerchant bool `mapstructure:"use_merchant" yaml:"use_merchant"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	// Budgets maps a category name to a session-local budget override used
	// for alert and progress rendering. Overrides never affect categorization
	// and are not persisted by the core.
	Budgets map[string]string `mapstructure:"budgets" yaml:"budgets"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then EXPENSES_-prefixed environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expenses-measure")
	v.AddConfigPath(".expenses-measure")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXPENSES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("categorization.use_merchant", false)

	v.SetDefault("rules.file", "rules.yaml")

	v.SetDefault("budgets", map[string]string{})
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	for category, raw := range config.Budgets {
		budget, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid budget override for %s: %s", category, raw)
		}
		if !budget.IsPositive() {
			return fmt.Errorf("budget override for %s must be positive, got: %s", category, raw)
		}
	}

	return nil
}

// BudgetOverrides converts the raw budget override map into decimal values.
// Call after validateConfig has accepted the configuration.
func (c *Config) BudgetOverrides() map[string]decimal.Decimal {
	overrides := make(map[string]decimal.Decimal, len(c.Budgets))
	for category, raw := range c.Budgets {
		budget, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		overrides[category] = budget
	}
	return overrides
}

// ConfigureLogging configures a logrus logger based on the Config struct.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
