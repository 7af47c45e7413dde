// Package transaction provides an in-memory implementation of the TransactionStore interface.
package transaction

import (
	"fmt"
	"sync"

	"expense_tracker/internal/core/domain"
	"expense_tracker/internal/core/domain/repository"
)

// InMemoryTransactionStore implements the TransactionStore interface using in-memory storage.
//
// writeMu serialises every mutation together with its notification pass, so listeners never
// observe a half-applied change. mu guards the state itself and is released before listeners
// run, which lets them read the store from inside Update.
type InMemoryTransactionStore struct {
	writeMu sync.Mutex

	mu             sync.RWMutex
	transactions   []*domain.Transaction
	matchedIndices []int
	listeners      *listenerSet
}

// Compile-time check to ensure InMemoryTransactionStore implements repository.TransactionStore
var _ repository.TransactionStore = (*InMemoryTransactionStore)(nil)

// NewInMemoryTransactionStore creates a new, empty in-memory transaction store.
func NewInMemoryTransactionStore() *InMemoryTransactionStore {
	return &InMemoryTransactionStore{
		transactions:   make([]*domain.Transaction, 0),
		matchedIndices: make([]int, 0),
		listeners:      newListenerSet(),
	}
}

// Add appends tx to the end of the ledger.
func (s *InMemoryTransactionStore) Add(tx *domain.Transaction) error {
	if tx == nil {
		return fmt.Errorf("%w: the new transaction must be non-nil", domain.ErrInvalidArgument)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.transactions = append(s.transactions, tx)
	s.matchedIndices = s.matchedIndices[:0]
	s.mu.Unlock()

	s.notifyAll()
	return nil
}

// Remove deletes the first occurrence of tx. Listeners are notified even if tx was not stored.
func (s *InMemoryTransactionStore) Remove(tx *domain.Transaction) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	for i, stored := range s.transactions {
		if stored == tx {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			break
		}
	}
	s.matchedIndices = s.matchedIndices[:0]
	s.mu.Unlock()

	s.notifyAll()
}

// Transactions returns a copy of the stored transactions in insertion order.
func (s *InMemoryTransactionStore) Transactions() []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txCopy := make([]*domain.Transaction, len(s.transactions))
	copy(txCopy, s.transactions)

	return txCopy
}

// SetMatchedFilterIndices replaces the matched filter indices. Either every index is in
// [0, number of transactions) and the whole set is stored, or nothing changes.
func (s *InMemoryTransactionStore) SetMatchedFilterIndices(indices []int) error {
	if indices == nil {
		return fmt.Errorf("%w: the matched filter indices must be non-nil", domain.ErrInvalidArgument)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	size := len(s.transactions)
	for _, idx := range indices {
		if idx < 0 || idx >= size {
			s.mu.Unlock()
			return fmt.Errorf(
				"%w: matched filter index %d must be between 0 (inclusive) and %d (exclusive)",
				domain.ErrInvalidArgument, idx, size,
			)
		}
	}
	s.matchedIndices = append(s.matchedIndices[:0], indices...)
	s.mu.Unlock()

	s.notifyAll()
	return nil
}

// MatchedFilterIndices returns a copy of the indices set by the last filter application.
func (s *InMemoryTransactionStore) MatchedFilterIndices() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxCopy := make([]int, len(s.matchedIndices))
	copy(idxCopy, s.matchedIndices)

	return idxCopy
}

// Register adds l to the listeners. It returns false for nil or already registered listeners.
func (s *InMemoryTransactionStore) Register(l repository.Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listeners.add(l)
}

// Unregister removes l from the listeners. It returns false for nil or unknown listeners.
func (s *InMemoryTransactionStore) Unregister(l repository.Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listeners.remove(l)
}

// NumberOfListeners returns the number of registered listeners.
func (s *InMemoryTransactionStore) NumberOfListeners() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listeners.len()
}

// ContainsListener reports whether l is registered.
func (s *InMemoryTransactionStore) ContainsListener(l repository.Listener) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listeners.exists(l)
}

// notifyAll calls Update once on every listener registered when the pass starts.
// Callers must hold writeMu and must not hold mu.
func (s *InMemoryTransactionStore) notifyAll() {
	s.mu.RLock()
	listeners := s.listeners.snapshot()
	s.mu.RUnlock()

	for _, l := range listeners {
		l.Update(s)
	}
}
