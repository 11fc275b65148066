// Package categorizer assigns category labels to transactions based on
// their descriptions, using ordered keyword rules.
package categorizer

import (
	"strings"

	"looper/finance-dashboard/internal/logging"
	"looper/finance-dashboard/internal/models"
)

// RuleStore loads category rules from an external source (e.g. a YAML file).
type RuleStore interface {
	LoadRules() ([]models.CategoryRule, error)
}

// DefaultRules is the builtin ordered rule table. Order matters: the first
// rule containing a matching keyword wins, so a description mentioning both
// "netflix" and "rent" is Entertainment, not Rent.
var DefaultRules = []models.CategoryRule{
	{Name: models.CategoryFood, Keywords: []string{"swiggy", "zomato", "uber eats"}},
	{Name: models.CategoryFuel, Keywords: []string{"petrol", "shell", "fuel"}},
	{Name: models.CategoryShopping, Keywords: []string{"flipkart", "amazon", "myntra"}},
	{Name: models.CategoryUtilities, Keywords: []string{"electricity", "water", "gas"}},
	{Name: models.CategoryEntertainment, Keywords: []string{"movie", "netflix", "bookmyshow"}},
	{Name: models.CategoryRent, Keywords: []string{"rent", "apartment"}},
}

// Categorizer matches transaction descriptions against an ordered rule list.
type Categorizer struct {
	rules  []models.CategoryRule
	logger logging.Logger
}

// New creates a Categorizer using the builtin rule table.
func New(logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Categorizer{
		rules:  DefaultRules,
		logger: logger,
	}
}

// NewWithStore creates a Categorizer whose rules come from the store.
// If the store has no rules or fails to load, the builtin table is used.
func NewWithStore(store RuleStore, logger logging.Logger) *Categorizer {
	c := New(logger)
	if store == nil {
		return c
	}

	rules, err := store.LoadRules()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load category rules, using builtin table")
		return c
	}
	if len(rules) == 0 {
		c.logger.Debug("Rule store is empty, using builtin table")
		return c
	}

	c.logger.WithField(logging.FieldCount, len(rules)).Debug("Loaded category rules from store")
	c.rules = rules
	return c
}

// Rules returns the ordered rule list in use.
func (c *Categorizer) Rules() []models.CategoryRule {
	return c.rules
}

// Categorize maps a transaction description to a category label using
// case-insensitive substring matching. The first rule whose keyword set
// contains a match wins. An empty or unmatched description yields Other.
func (c *Categorizer) Categorize(description string) string {
	if strings.TrimSpace(description) == "" {
		return models.CategoryOther
	}

	desc := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, strings.ToLower(keyword)) {
				c.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Name},
				).Debug("Description categorized by keyword")
				return rule.Name
			}
		}
	}

	return models.CategoryOther
}
