// Package dashboard derives the views a renderer consumes from one
// snapshot and one set of filter criteria. Recomputation is pure:
// identical inputs always yield identical views.
package dashboard

import (
	"looper/finance-dashboard/internal/analytics"
	"looper/finance-dashboard/internal/export"
	"looper/finance-dashboard/internal/filter"
	"looper/finance-dashboard/internal/logging"
	"looper/finance-dashboard/internal/models"
	"looper/finance-dashboard/internal/paginate"
)

// DefaultPageSize matches the dashboard table's fixed row count.
const DefaultPageSize = 10

// recentCount is the length of the recent-transactions card.
const recentCount = 5

// Options control the parts of a recompute that are not filter criteria.
type Options struct {
	GroupByWeek bool
	PageSize    int
	CurrentPage int
}

// View is everything derived from one snapshot and one criteria set.
// It holds no independent identity and is rebuilt wholesale on any change.
type View struct {
	Filtered   []models.Transaction
	Summary    analytics.Summary
	ByCategory []analytics.CategoryTotal
	ByMonth    []analytics.MonthBucket
	Page       paginate.Page[models.Transaction]
	PageIndex  []paginate.Entry

	// Derived from the full snapshot, not the filtered view.
	Recent     []models.Transaction
	Categories []string
	Users      []string
}

// Pipeline recomputes derived views. It carries no state besides a logger.
type Pipeline struct {
	logger logging.Logger
}

// New creates a Pipeline.
func New(logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = &logging.MockLogger{}
	}
	return &Pipeline{logger: logger}
}

// Recompute derives the full view from a snapshot and criteria.
func (p *Pipeline) Recompute(snapshot []models.Transaction, criteria models.FilterCriteria, opts Options) View {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.CurrentPage <= 0 {
		opts.CurrentPage = 1
	}

	filtered := filter.Apply(snapshot, criteria)
	page := paginate.Slice(filtered, opts.PageSize, opts.CurrentPage)

	view := View{
		Filtered:   filtered,
		Summary:    analytics.Summarize(filtered),
		ByCategory: analytics.ByCategory(filtered),
		ByMonth:    analytics.ByMonth(filtered, opts.GroupByWeek),
		Page:       page,
		PageIndex:  paginate.CompressedRange(opts.CurrentPage, page.TotalPages),
		Recent:     analytics.Recent(snapshot, recentCount),
		Categories: analytics.Categories(snapshot),
		Users:      analytics.Users(snapshot),
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(filtered)},
		logging.Field{Key: logging.FieldPage, Value: opts.CurrentPage},
		logging.Field{Key: logging.FieldTotalPages, Value: page.TotalPages},
	).Debug("Recomputed dashboard view")

	return view
}

// ExportDisplay returns the 6-field CSV form of the filtered view.
func (p *Pipeline) ExportDisplay(filtered []models.Transaction) string {
	return export.Display(filtered)
}
