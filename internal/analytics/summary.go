package analytics

import (
	"sort"

	"looper/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Summary holds the headline metrics shown above the transaction table.
type Summary struct {
	Total        decimal.Decimal `json:"total"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
}

// Summarize computes the headline metrics over the filtered collection.
func Summarize(transactions []models.Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		s.Total = s.Total.Add(t.Amount)
		switch t.Status {
		case models.StatusPaid:
			s.TotalPaid = s.TotalPaid.Add(t.Amount)
		case models.StatusPending:
			s.TotalPending = s.TotalPending.Add(t.Amount)
		}
	}
	return s
}

// Recent returns the newest n transactions by date, newest first.
// The input slice is left untouched.
func Recent(transactions []models.Transaction, n int) []models.Transaction {
	sorted := append([]models.Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Categories returns the distinct category labels in first-seen order.
func Categories(transactions []models.Transaction) []string {
	return distinct(transactions, func(t models.Transaction) string { return t.Category })
}

// Users returns the distinct user ids in first-seen order.
func Users(transactions []models.Transaction) []string {
	return distinct(transactions, func(t models.Transaction) string { return t.UserID })
}

func distinct(transactions []models.Transaction, key func(models.Transaction) string) []string {
	seen := make(map[string]struct{}, len(transactions))
	var values []string
	for _, t := range transactions {
		k := key(t)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	return values
}
