// Package repository defines interfaces for data storage and retrieval operations.
package repository

import (
	"expense_tracker/internal/core/domain"
)

// Listener is notified after every state change of a TransactionStore.
// Implementations are compared by identity, so they should be pointer types.
type Listener interface {
	// Update is called synchronously with the store that changed. It must not mutate the store.
	Update(store TransactionStore)
}

// TransactionStore defines the observable, ordered transaction model.
type TransactionStore interface {
	// Add appends a transaction and clears the matched filter indices.
	Add(tx *domain.Transaction) error

	// Remove deletes the first occurrence of tx (by identity) and clears the matched filter indices.
	Remove(tx *domain.Transaction)

	// Transactions returns a copy of the stored transactions in insertion order.
	Transactions() []*domain.Transaction

	// SetMatchedFilterIndices replaces the matched filter indices if every index is in range.
	SetMatchedFilterIndices(indices []int) error

	// MatchedFilterIndices returns a copy of the matched filter indices.
	MatchedFilterIndices() []int

	// Register adds a listener. It reports whether the listener set changed.
	Register(l Listener) bool

	// Unregister removes a listener. It reports whether the listener set changed.
	Unregister(l Listener) bool

	// NumberOfListeners returns the count of registered listeners.
	NumberOfListeners() int

	// ContainsListener reports whether l is registered.
	ContainsListener(l Listener) bool
}
