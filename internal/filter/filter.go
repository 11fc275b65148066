// Package filter narrows a transaction snapshot with conjunctive criteria
// plus an optional free-text search that spans fields disjunctively.
package filter

import (
	"strings"

	"looper/finance-dashboard/internal/models"
)

// searchDateLayout is the short date form the dashboard renders (M/D/YYYY),
// fixed here so free-text search over dates does not depend on process locale.
const searchDateLayout = "1/2/2006"

// Apply returns the transactions that satisfy every active criterion,
// preserving input order. The input slice is never modified.
func Apply(transactions []models.Transaction, criteria models.FilterCriteria) []models.Transaction {
	pred := Compile(criteria)

	result := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if pred(t) {
			result = append(result, t)
		}
	}
	return result
}

// Compile turns criteria into a single predicate: the conjunction of every
// active criterion, with the free-text search contributing one conjunct
// that is itself a disjunction across fields.
func Compile(c models.FilterCriteria) Predicate {
	preds := make([]Predicate, 0, 9)

	if c.Month >= 1 && c.Month <= 12 {
		month := c.Month
		preds = append(preds, func(t models.Transaction) bool {
			return int(t.Date.Month()) == month
		})
	}
	if c.Status != "" {
		status := c.Status
		preds = append(preds, func(t models.Transaction) bool {
			return t.Status == status
		})
	}
	if c.Category != "" {
		category := c.Category
		preds = append(preds, func(t models.Transaction) bool {
			return t.Category == category
		})
	}
	if c.UserID != "" {
		userID := c.UserID
		preds = append(preds, func(t models.Transaction) bool {
			return t.UserID == userID
		})
	}
	if c.MinAmount != nil {
		minAmount := *c.MinAmount
		preds = append(preds, func(t models.Transaction) bool {
			return t.Amount.GreaterThanOrEqual(minAmount)
		})
	}
	if c.MaxAmount != nil {
		maxAmount := *c.MaxAmount
		preds = append(preds, func(t models.Transaction) bool {
			return t.Amount.LessThanOrEqual(maxAmount)
		})
	}
	if c.StartDate != nil {
		start := *c.StartDate
		preds = append(preds, func(t models.Transaction) bool {
			return !t.Date.Before(start)
		})
	}
	if c.EndDate != nil {
		end := *c.EndDate
		preds = append(preds, func(t models.Transaction) bool {
			return !t.Date.After(end)
		})
	}
	if query := strings.TrimSpace(c.Search); query != "" {
		preds = append(preds, searchPredicate(query))
	}

	return All(preds...)
}

// searchPredicate matches the query case-insensitively against the union of
// user id, status, category, description, the decimal string form of the
// amount, and the formatted date. A record matches if any field contains it.
func searchPredicate(query string) Predicate {
	q := strings.ToLower(query)
	contains := func(field func(models.Transaction) string) Predicate {
		return func(t models.Transaction) bool {
			return strings.Contains(strings.ToLower(field(t)), q)
		}
	}

	return Any(
		contains(func(t models.Transaction) string { return t.UserID }),
		contains(func(t models.Transaction) string { return string(t.Status) }),
		contains(func(t models.Transaction) string { return t.Category }),
		contains(func(t models.Transaction) string { return t.Description }),
		contains(func(t models.Transaction) string { return t.Amount.String() }),
		contains(func(t models.Transaction) string { return t.Date.Format(searchDateLayout) }),
	)
}
