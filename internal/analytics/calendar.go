package analytics

import (
	"time"

	"looper/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// MonthsPerYear is the fixed length of every calendar aggregation.
const MonthsPerYear = 12

// WeeksPerMonth is the maximum number of week buckets a month can produce
// under the week-of-month convention used here.
const WeeksPerMonth = 5

// MonthBucket is one of the twelve fixed calendar slots. Total is always
// populated; Weeks carries the W1..W5 sub-totals only when grouping by week.
type MonthBucket struct {
	Name  string                          `json:"name"`
	Total decimal.Decimal                 `json:"total"`
	Weeks [WeeksPerMonth]decimal.Decimal  `json:"weeks,omitempty"`
}

// WeekOfMonth returns the 1-based week bucket of a date:
//
//	ceil((dayOfMonth + weekdayOffset) / 7)
//
// where weekdayOffset is the 0-based weekday of the first of the month
// (Sunday = 0). This is a bespoke convention, not ISO weeks; boundary
// dates shift bucket depending on which weekday the month starts on, and
// any substitution changes visible totals. The result is clamped to 5.
func WeekOfMonth(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	offset := int(first.Weekday())

	week := (date.Day() + offset + 6) / 7
	if week > WeeksPerMonth {
		week = WeeksPerMonth
	}
	return week
}

// ByMonth aggregates amounts into twelve calendar buckets, January through
// December, merging years: a January 2024 and a January 2025 transaction
// land in the same bucket. Months with no transactions emit zero totals.
// When groupByWeek is set, each bucket additionally carries five weekly
// sub-totals whose sum equals the bucket total.
func ByMonth(transactions []models.Transaction, groupByWeek bool) []MonthBucket {
	buckets := make([]MonthBucket, MonthsPerYear)
	for i := range buckets {
		buckets[i].Name = time.Month(i + 1).String()[:3]
	}

	for _, t := range transactions {
		b := &buckets[int(t.Date.Month())-1]
		b.Total = b.Total.Add(t.Amount)
		if groupByWeek {
			w := WeekOfMonth(t.Date) - 1
			b.Weeks[w] = b.Weeks[w].Add(t.Amount)
		}
	}

	return buckets
}
