package dashboard

import "looper/finance-dashboard/internal/models"

// Session tracks one viewer's snapshot, criteria, and page position.
// The snapshot is replaced wholesale on refresh, never merged; criteria
// changes always reset the page position to 1.
type Session struct {
	pipeline *Pipeline
	snapshot []models.Transaction
	criteria models.FilterCriteria
	opts     Options
}

// NewSession creates a Session with an empty snapshot.
func NewSession(pipeline *Pipeline) *Session {
	return &Session{
		pipeline: pipeline,
		opts: Options{
			PageSize:    DefaultPageSize,
			CurrentPage: 1,
		},
	}
}

// ReplaceSnapshot swaps in a fresh snapshot atomically and resets the
// page position.
func (s *Session) ReplaceSnapshot(transactions []models.Transaction) {
	s.snapshot = transactions
	s.opts.CurrentPage = 1
}

// SetCriteria installs new filter criteria and resets the page to 1.
func (s *Session) SetCriteria(criteria models.FilterCriteria) {
	s.criteria = criteria
	s.opts.CurrentPage = 1
}

// ClearCriteria removes all filters and resets the page to 1.
func (s *Session) ClearCriteria() {
	s.SetCriteria(models.FilterCriteria{})
}

// SetPage moves to the given page. Values below 1 clamp to 1.
func (s *Session) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.opts.CurrentPage = page
}

// SetGroupByWeek toggles weekly sub-totals in the calendar aggregation.
func (s *Session) SetGroupByWeek(groupByWeek bool) {
	s.opts.GroupByWeek = groupByWeek
}

// SetPageSize changes the page size and resets the page to 1.
func (s *Session) SetPageSize(size int) {
	if size < 1 {
		size = DefaultPageSize
	}
	s.opts.PageSize = size
	s.opts.CurrentPage = 1
}

// Criteria returns the currently installed criteria.
func (s *Session) Criteria() models.FilterCriteria {
	return s.criteria
}

// Snapshot returns the current snapshot.
func (s *Session) Snapshot() []models.Transaction {
	return s.snapshot
}

// View recomputes the derived view for the current state.
func (s *Session) View() View {
	return s.pipeline.Recompute(s.snapshot, s.criteria, s.opts)
}
