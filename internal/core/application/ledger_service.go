// Package application contains the core application service logic for the expense ledger.
package application

import (
	"errors"
	"fmt"
	"sync"

	"expense_tracker/internal/core/domain"
	"expense_tracker/internal/core/domain/client"
	"expense_tracker/internal/core/domain/repository"
	"expense_tracker/internal/core/filter"
	"expense_tracker/internal/logger"
	"expense_tracker/pkg/ledger"
)

// LedgerService implements the ledger.Ledger interface. It validates raw input, drives the
// transaction store and forwards store notifications to the presenter.
type LedgerService struct {
	store     repository.TransactionStore
	presenter client.Presenter
	logger    logger.AppLogger

	// opMu keeps read-then-write sequences (apply, undo) from interleaving with each other.
	opMu   sync.Mutex
	filter filter.TransactionFilter
}

// Compile-time checks to ensure LedgerService implements ledger.Ledger and repository.Listener
var (
	_ ledger.Ledger       = (*LedgerService)(nil)
	_ repository.Listener = (*LedgerService)(nil)
)

// NewLedgerService creates a new LedgerService and registers it as a listener of store.
func NewLedgerService(
	store repository.TransactionStore,
	presenter client.Presenter,
	appLogger logger.AppLogger,
) (*LedgerService, error) {
	if appLogger == nil {
		return nil, errors.New("NewLedgerService: appLogger is nil")
	}
	if store == nil {
		appLogger.Error("NewLedgerService: store is nil")
		return nil, errors.New("NewLedgerService: store is nil")
	}
	if presenter == nil {
		appLogger.Error("NewLedgerService: presenter is nil")
		return nil, errors.New("NewLedgerService: presenter is nil")
	}

	s := &LedgerService{
		store:     store,
		presenter: presenter,
		logger:    appLogger.WithComponent("ledger"),
	}
	store.Register(s)

	return s, nil
}

// SetFilter replaces the active filter. Passing nil clears it.
func (s *LedgerService) SetFilter(f filter.TransactionFilter) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.filter = f
	if f == nil {
		s.logger.Debug("Filter cleared")
		return
	}
	s.logger.Debug("Filter selected", logger.FieldFilter, fmt.Sprint(f))
}

// Filter returns the active filter, or nil if none is selected.
func (s *LedgerService) Filter() filter.TransactionFilter {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.filter
}

// AddTransaction records a new transaction if both amount and category are valid.
func (s *LedgerService) AddTransaction(amount float64, category string) bool {
	log := s.logger.With(logger.FieldAmount, amount, logger.FieldCategory, category)

	if !domain.IsValidAmount(amount) {
		log.Warn("Transaction rejected: invalid amount")
		return false
	}
	if !domain.IsValidCategory(category) {
		log.Warn("Transaction rejected: invalid category")
		return false
	}

	tx, err := domain.NewTransaction(amount, category)
	if err != nil {
		log.Error("Failed to create validated transaction", logger.FieldError, err)
		return false
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.store.Add(tx); err != nil {
		log.Error("Failed to add transaction to store", logger.FieldError, err)
		return false
	}

	log.Info("Transaction added", "id", tx.ID().String())
	return true
}

// ApplyFilter runs the active filter over the stored transactions and records the positions
// of the matches in the store. With no active filter the presenter is told so and nothing changes.
func (s *LedgerService) ApplyFilter() (bool, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.filter == nil {
		s.logger.Info("Apply requested without a filter")
		s.presenter.ShowMessage(client.MessageNoFilterApplied)
		return false, nil
	}

	transactions := s.store.Transactions()
	filtered := s.filter.Filter(transactions)

	rowIndexes := make([]int, 0, len(filtered))
	for _, tx := range filtered {
		if idx := indexOf(transactions, tx); idx != -1 {
			rowIndexes = append(rowIndexes, idx)
		}
	}

	if err := s.store.SetMatchedFilterIndices(rowIndexes); err != nil {
		s.logger.Error("Failed to store matched filter indices", logger.FieldFilter, fmt.Sprint(s.filter), logger.FieldError, err)
		return false, fmt.Errorf("apply filter %s: %w", s.filter.Name(), err)
	}

	s.logger.Info("Filter applied", logger.FieldFilter, fmt.Sprint(s.filter), "matched", len(rowIndexes))
	return true, nil
}

// UndoTransaction removes the transaction shown at row. The row is checked against the
// current number of transactions, then the transaction found there is removed by identity.
func (s *LedgerService) UndoTransaction(row int) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	transactions := s.store.Transactions()
	if row < 0 || row >= len(transactions) {
		s.logger.Warn("Undo rejected: row out of range", logger.FieldRow, row, "size", len(transactions))
		return false
	}

	removed := transactions[row]
	s.store.Remove(removed)

	s.logger.Info("Transaction removed", logger.FieldRow, row, "id", removed.ID().String())
	return true
}

// Update forwards store notifications to the presenter.
func (s *LedgerService) Update(store repository.TransactionStore) {
	s.presenter.Update(store)
}

// indexOf returns the position of the first element identical to tx, or -1.
func indexOf(transactions []*domain.Transaction, tx *domain.Transaction) int {
	for i, candidate := range transactions {
		if candidate == tx {
			return i
		}
	}
	return -1
}
