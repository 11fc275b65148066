// Package models defines the core data structures shared across the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the settlement state of a transaction.
// Exactly two values are valid.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
)

// IsValid returns true if the status is one of the two known values.
func (s Status) IsValid() bool {
	return s == StatusPaid || s == StatusPending
}

// Transaction represents a single financial record of the snapshot.
// Once loaded, a transaction is treated as immutable: filtering,
// aggregation, and pagination never modify it.
type Transaction struct {
	ID          string          `json:"id" yaml:"id"`
	Date        time.Time       `json:"date" yaml:"date"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    string          `json:"category" yaml:"category"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	UserID      string          `json:"user_id" yaml:"user_id"`
	Status      Status          `json:"status" yaml:"status"`
}

// CategoryRule maps a set of keywords to a category label.
// Rules are ordered; the first rule containing a matching keyword wins.
type CategoryRule struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// RulesConfig is the top-level structure of a category rules YAML file.
type RulesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}
