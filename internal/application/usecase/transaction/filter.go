// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"

	"github.com/finance-tracker/wallet/internal/domain/entity"
)

// Criteria is the full filter state of a transaction view.
type Criteria struct {
	Filters entity.TransactionFilters
	Search  string // Case-insensitive substring of description or category, matched as given
}

// Filter returns the transactions satisfying every active criterion, in input order.
// The input slice is never modified. Empty criteria return every transaction.
func Filter(transactions []*entity.Transaction, criteria Criteria) []*entity.Transaction {
	term := strings.ToLower(criteria.Search)

	out := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if term != "" && !matchesSearch(t, term) {
			continue
		}
		if !criteria.Filters.Matches(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchesSearch expects term already lower-cased.
func matchesSearch(t *entity.Transaction, term string) bool {
	return strings.Contains(strings.ToLower(t.Description), term) ||
		strings.Contains(strings.ToLower(t.Category), term)
}
