// Package restapi implements the RESTful API layer, including DTOs and handlers.
package restapi

import (
	"expense_tracker/pkg/ledger"
)

// Filter types accepted by PUT /filter.
const (
	FilterTypeAmount   = "amount"
	FilterTypeCategory = "category"
	FilterTypeNone     = "none"
)

// AddTransactionRequest defines the expected JSON body for the POST /transactions endpoint.
type AddTransactionRequest struct {
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
}

// SetFilterRequest defines the expected JSON body for the PUT /filter endpoint.
type SetFilterRequest struct {
	Type     string   `json:"type"`
	Amount   *float64 `json:"amount,omitempty"`
	Category string   `json:"category,omitempty"`
}

// FilterResponse describes the selected filter.
type FilterResponse struct {
	Type     string   `json:"type"`
	Amount   *float64 `json:"amount,omitempty"`
	Category string   `json:"category,omitempty"`
}

// ApplyFilterResponse defines the structure for the POST /filter/apply endpoint.
type ApplyFilterResponse struct {
	Applied        bool   `json:"applied"`
	Message        string `json:"message,omitempty"`
	MatchedIndices []int  `json:"matched_indices"`
}

// CategoriesResponse lists the accepted category labels.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// LedgerResponse wraps the rendered ledger.
type LedgerResponse struct {
	ledger.Snapshot
}

// ErrorResponse defines a standard structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
