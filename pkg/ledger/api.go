// Package ledger defines the public API contracts for the expense ledger service.
package ledger

import (
	"time"

	"expense_tracker/internal/core/filter"
)

// Ledger defines the input boundary of the expense ledger.
type Ledger interface {
	// SetFilter selects the filter used by ApplyFilter. A nil filter clears the selection.
	SetFilter(f filter.TransactionFilter)

	// Filter returns the currently selected filter, or nil.
	Filter() filter.TransactionFilter

	// AddTransaction validates and records a transaction. It returns false if the input was rejected.
	AddTransaction(amount float64, category string) bool

	// ApplyFilter highlights the rows matching the selected filter.
	// It returns false, without touching the ledger, when no filter is selected.
	ApplyFilter() (applied bool, err error)

	// UndoTransaction removes the transaction at row. It returns false if row is out of range.
	UndoTransaction(row int) bool
}

// Row represents one rendered ledger row returned by the API.
type Row struct {
	Row         int       `json:"row"`
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	Highlighted bool      `json:"highlighted"`
}

// Snapshot is the rendered state of the ledger.
type Snapshot struct {
	Rows           []Row  `json:"rows"`
	Total          string `json:"total"`
	MatchedIndices []int  `json:"matched_indices"`
	Message        string `json:"message,omitempty"`
}
