// Package store provides functionality for storing and retrieving application data.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"looper/finance-dashboard/internal/config"
	"looper/finance-dashboard/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// RuleStore manages loading of category rule data
type RuleStore struct {
	RulesFile string
}

// NewRuleStore creates a new store for category rules
func NewRuleStore(rulesFile string) *RuleStore {
	return &RuleStore{
		RulesFile: rulesFile,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	// Check if it's an absolute path
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	// Common locations to check for config files
	locations := []string{
		filename,                          // Current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	// Try each location
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	// If still not found, check in user's home directory under .config/finance-dashboard/
	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "finance-dashboard", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadRules loads the ordered category rule list from the YAML file.
// A missing file yields an empty list, not an error, so callers can fall
// back to the builtin rule table.
func (s *RuleStore) LoadRules() ([]models.CategoryRule, error) {
	filename := s.RulesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("Category rules file not found: %s", filename)
			return []models.CategoryRule{}, nil
		}
		return nil, fmt.Errorf("error resolving category rules file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading category rules file: %w", err)
	}

	// Preferred structure: "categories: [...]"
	var rulesConfig models.RulesConfig
	err = yaml.Unmarshal(data, &rulesConfig)
	if err == nil && len(rulesConfig.Categories) > 0 {
		log.Debugf("Loaded %d category rules from %s", len(rulesConfig.Categories), filePath)
		return rulesConfig.Categories, nil
	}

	// Fallback: a bare rule array without the top-level key
	var rules []models.CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing category rules file: %w", err)
	}

	log.Debugf("Loaded %d category rules from %s using direct array", len(rules), filePath)
	return rules, nil
}

// SaveRules writes the ordered rule list back to the YAML file.
func (s *RuleStore) SaveRules(rules []models.CategoryRule) error {
	filename := s.RulesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil && err != os.ErrNotExist {
		return fmt.Errorf("error resolving category rules file: %w", err)
	}
	if err == os.ErrNotExist {
		filePath = filename
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.RulesConfig{Categories: rules})
	if err != nil {
		return fmt.Errorf("error marshaling category rules: %w", err)
	}

	if err := os.WriteFile(filePath, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing category rules: %w", err)
	}

	log.Debugf("Saved %d category rules to %s", len(rules), filePath)
	return nil
}
