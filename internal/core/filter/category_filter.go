package filter

import (
	"fmt"
	"strings"

	"expense_tracker/internal/core/domain"
)

// CategoryFilter keeps transactions whose category matches, ignoring case.
type CategoryFilter struct {
	category string
}

// Compile-time check to ensure CategoryFilter implements TransactionFilter
var _ TransactionFilter = (*CategoryFilter)(nil)

// NewCategoryFilter creates a CategoryFilter after validating the category.
func NewCategoryFilter(category string) (*CategoryFilter, error) {
	if !domain.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: invalid category filter %q", domain.ErrInvalidArgument, category)
	}
	return &CategoryFilter{category: category}, nil
}

// Filter returns the transactions in the filter category.
func (f *CategoryFilter) Filter(transactions []*domain.Transaction) []*domain.Transaction {
	return selectMatching(transactions, func(tx *domain.Transaction) bool {
		return strings.EqualFold(tx.Category(), f.category)
	})
}

// Category returns the category being matched, as given to the constructor.
func (f *CategoryFilter) Category() string {
	return f.category
}

// Name returns KindCategory.
func (f *CategoryFilter) Name() string {
	return KindCategory
}

func (f *CategoryFilter) String() string {
	return KindCategory + "=" + strings.ToLower(f.category)
}
