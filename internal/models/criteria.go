package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterCriteria is the set of user-chosen conditions that narrow a
// snapshot. Zero-valued or nil fields are no-ops. Criteria are ephemeral:
// they are rebuilt on every interaction and never persisted.
type FilterCriteria struct {
	Month     int    // calendar month 1-12, irrespective of year; 0 means any
	Status    Status // exact match
	Category  string // exact match
	UserID    string // exact match
	MinAmount *decimal.Decimal // inclusive lower bound
	MaxAmount *decimal.Decimal // inclusive upper bound
	StartDate *time.Time       // inclusive lower bound
	EndDate   *time.Time       // inclusive upper bound
	Search    string           // free text, matched against the union of fields
}

// IsZero reports whether no criterion is active.
func (c FilterCriteria) IsZero() bool {
	return c.Month == 0 &&
		c.Status == "" &&
		c.Category == "" &&
		c.UserID == "" &&
		c.MinAmount == nil &&
		c.MaxAmount == nil &&
		c.StartDate == nil &&
		c.EndDate == nil &&
		c.Search == ""
}

// AmountOption parses a decimal bound from user input. Unparseable input
// is treated as an absent criterion, never as an error.
func AmountOption(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// DateOption parses an ISO date bound from user input. Unparseable input
// is treated as an absent criterion, never as an error.
func DateOption(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// MonthOption parses a 1-12 month number from user input. Out-of-range or
// unparseable input is treated as an absent criterion.
func MonthOption(raw string) int {
	if raw == "" {
		return 0
	}
	var month int
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0
		}
		month = month*10 + int(r-'0')
		if month > 12 {
			return 0
		}
	}
	return month
}
