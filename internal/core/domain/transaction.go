// Package domain defines the core domain models and business logic entities.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidArgument indicates that a caller passed a value that should have been rejected
// by validation before reaching the core (nil transaction, out-of-range index, bad filter value).
var ErrInvalidArgument = errors.New("invalid argument")

// Transaction represents one ledger entry.
// Transactions are compared by pointer: two entries with the same amount and category are distinct.
type Transaction struct {
	id        uuid.UUID
	amount    float64
	category  string
	createdAt time.Time
}

// NewTransaction creates a new Transaction after validating amount and category.
func NewTransaction(amount float64, category string) (*Transaction, error) {
	if !IsValidAmount(amount) {
		return nil, fmt.Errorf("%w: amount %v must be greater than 0 and at most %v", ErrInvalidArgument, amount, MaxAmount)
	}
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%w: category %q", ErrInvalidArgument, category)
	}
	return &Transaction{
		id:        uuid.New(),
		amount:    amount,
		category:  category,
		createdAt: time.Now().UTC(),
	}, nil
}

// ID returns the display identifier of the transaction.
func (t *Transaction) ID() uuid.UUID {
	return t.id
}

// Amount returns the transaction amount.
func (t *Transaction) Amount() float64 {
	return t.amount
}

// Category returns the category as it was entered.
func (t *Transaction) Category() string {
	return t.category
}

// CreatedAt returns the creation time in UTC.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// String implements fmt.Stringer.
func (t *Transaction) String() string {
	return fmt.Sprintf("%s(%.2f, %s)", t.id, t.amount, t.category)
}
