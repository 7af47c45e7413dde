// Package filter implements the transaction filter strategies used to highlight ledger rows.
package filter

import (
	"expense_tracker/internal/core/domain"
)

// TransactionFilter selects a subsequence of transactions by a single criterion.
// Implementations must not modify the input and must keep the relative order of matches.
type TransactionFilter interface {
	// Filter returns a new slice holding only the matching transactions.
	Filter(transactions []*domain.Transaction) []*domain.Transaction

	// Name returns the kind of the filter for logging and API responses.
	Name() string
}

// Filter kinds.
const (
	KindAmount   = "amount"
	KindCategory = "category"
)

func selectMatching(transactions []*domain.Transaction, match func(*domain.Transaction) bool) []*domain.Transaction {
	filtered := make([]*domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx != nil && match(tx) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}
