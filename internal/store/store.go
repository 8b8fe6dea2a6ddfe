// Package store loads the optional user-provided rule catalog from YAML.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Deepak11085/Expenses-measure/internal/logging"
	"github.com/Deepak11085/Expenses-measure/internal/models"
)

// ruleConfig is the YAML shape of one catalog entry.
type ruleConfig struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Color    string   `yaml:"color"`
	Icon     string   `yaml:"icon"`
	Budget   float64  `yaml:"budget"`
}

// catalogFile is the top-level structure of the rules YAML file.
type catalogFile struct {
	Categories []ruleConfig `yaml:"categories"`
}

// CatalogStore manages loading of the rule catalog override file.
type CatalogStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewCatalogStore creates a store for the given rules file. An empty filename
// defaults to "rules.yaml".
func NewCatalogStore(rulesFile string, logger logging.Logger) *CatalogStore {
	if rulesFile == "" {
		rulesFile = "rules.yaml"
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CatalogStore{
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CatalogStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// Check the user's home directory under .config/expenses-measure/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "expenses-measure", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCatalog loads the rule catalog from the YAML file. A missing file is
// not an error: it returns a nil catalog so the caller keeps the builtin one.
func (s *CatalogStore) LoadCatalog() ([]models.CategoryRule, error) {
	filePath, err := s.FindConfigFile(s.RulesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.RulesFile).Debug("Rules file not found, using builtin catalog")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	catalog := make([]models.CategoryRule, 0, len(file.Categories))
	for _, rc := range file.Categories {
		if rc.Category == "" {
			continue
		}
		rule := models.CategoryRule{
			Category: rc.Category,
			Color:    rc.Color,
			Icon:     rc.Icon,
			Budget:   decimal.NewFromFloat(rc.Budget),
		}
		// Keywords are matched lowercase; normalize here once.
		for _, kw := range rc.Keywords {
			rule.Keywords = append(rule.Keywords, strings.ToLower(kw))
		}
		if !rule.Budget.IsPositive() {
			s.logger.WithField(logging.FieldCategory, rc.Category).Warn("Rule has no positive budget, using fallback budget")
			rule.Budget = decimal.NewFromInt(500)
		}
		catalog = append(catalog, rule)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(catalog)},
	).Debug("Loaded rule catalog")
	return catalog, nil
}
