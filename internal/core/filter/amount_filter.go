package filter

import (
	"fmt"
	"strconv"

	"expense_tracker/internal/core/domain"
)

// AmountFilter keeps transactions whose amount equals the configured amount.
type AmountFilter struct {
	amount float64
}

// Compile-time check to ensure AmountFilter implements TransactionFilter
var _ TransactionFilter = (*AmountFilter)(nil)

// NewAmountFilter creates an AmountFilter. The amount is validated again here because
// filters can be built without going through the ledger service.
func NewAmountFilter(amount float64) (*AmountFilter, error) {
	if !domain.IsValidAmount(amount) {
		return nil, fmt.Errorf("%w: invalid amount filter %v", domain.ErrInvalidArgument, amount)
	}
	return &AmountFilter{amount: amount}, nil
}

// Filter returns the transactions whose amount is exactly equal to the filter amount.
// No tolerance is applied, so fractional amounts only match when bit-identical.
func (f *AmountFilter) Filter(transactions []*domain.Transaction) []*domain.Transaction {
	return selectMatching(transactions, func(tx *domain.Transaction) bool {
		return tx.Amount() == f.amount
	})
}

// Amount returns the amount being matched.
func (f *AmountFilter) Amount() float64 {
	return f.amount
}

// Name returns KindAmount.
func (f *AmountFilter) Name() string {
	return KindAmount
}

func (f *AmountFilter) String() string {
	return KindAmount + "=" + strconv.FormatFloat(f.amount, 'f', -1, 64)
}
