// Package client defines interfaces for the outer collaborators driven by the core,
// such as the presentation layer.
package client

import (
	"expense_tracker/internal/core/domain/repository"
)

// MessageNoFilterApplied is shown when a filter is applied while none is selected.
const MessageNoFilterApplied = "No filter applied"

// Presenter renders the ledger for a user.
type Presenter interface {
	// Update re-renders from the current state of store.
	Update(store repository.TransactionStore)

	// ShowMessage surfaces an informational message to the user.
	ShowMessage(msg string)
}
