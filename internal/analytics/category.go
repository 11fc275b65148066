// Package analytics computes the aggregated views the dashboard renders:
// category totals, fixed twelve-bucket calendar totals, and headline
// summary metrics. All functions are pure and never modify their input.
package analytics

import (
	"looper/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"value"`
}

// ByCategory groups the collection by category label and sums amounts.
// Records without a category are grouped under Uncategorized, a fallback
// deliberately distinct from the categorizer's Other. Emission order is
// the insertion order of first occurrence, not sorted.
func ByCategory(transactions []models.Transaction) []CategoryTotal {
	index := make(map[string]int, 8)
	totals := make([]CategoryTotal, 0, 8)

	for _, t := range transactions {
		name := t.Category
		if name == "" {
			name = models.CategoryUncategorized
		}
		if i, ok := index[name]; ok {
			totals[i].Total = totals[i].Total.Add(t.Amount)
			continue
		}
		index[name] = len(totals)
		totals = append(totals, CategoryTotal{Name: name, Total: t.Amount})
	}

	return totals
}
