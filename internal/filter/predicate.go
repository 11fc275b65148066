package filter

import "looper/finance-dashboard/internal/models"

// Predicate reports whether a transaction satisfies one criterion.
type Predicate func(models.Transaction) bool

// All combines predicates conjunctively. With no predicates it accepts
// everything, which makes empty criteria the identity filter.
func All(preds ...Predicate) Predicate {
	return func(t models.Transaction) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Any combines predicates disjunctively. With no predicates it rejects
// everything.
func Any(preds ...Predicate) Predicate {
	return func(t models.Transaction) bool {
		for _, p := range preds {
			if p(t) {
				return true
			}
		}
		return false
	}
}
