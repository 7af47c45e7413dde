package domain_test

import (
	"errors"
	"math"
	"testing"

	"expense_tracker/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{name: "Zero", input: 0, want: false},
		{name: "Negative", input: -1, want: false},
		{name: "Smallest positive", input: 0.01, want: true},
		{name: "Typical", input: 50, want: true},
		{name: "Upper bound inclusive", input: 1000, want: true},
		{name: "Just above upper bound", input: 1000.0001, want: false},
		{name: "Far above upper bound", input: 1500, want: false},
		{name: "NaN", input: math.NaN(), want: false},
		{name: "Positive infinity", input: math.Inf(1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.IsValidAmount(tt.input); got != tt.want {
				t.Errorf("IsValidAmount(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Lowercase food", input: "food", want: true},
		{name: "Capitalised food", input: "Food", want: true},
		{name: "Uppercase travel", input: "TRAVEL", want: true},
		{name: "Bills", input: "bills", want: true},
		{name: "Entertainment", input: "Entertainment", want: true},
		{name: "Other", input: "other", want: true},
		{name: "Empty string", input: "", want: false},
		{name: "Only whitespace", input: "  ", want: false},
		{name: "Surrounding whitespace", input: " food ", want: false},
		{name: "Digits", input: "food2", want: false},
		{name: "Punctuation", input: "food!", want: false},
		{name: "Inner space", input: "fo od", want: false},
		{name: "Unknown word", input: "groceries", want: false},
		{name: "Non-ASCII letters", input: "fööd", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.IsValidCategory(tt.input); got != tt.want {
				t.Errorf("IsValidCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := domain.Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, []string{"food", "travel", "bills", "entertainment", "other"}, cats)

	cats[0] = "mutated"
	assert.Equal(t, "food", domain.Categories()[0])
}

func TestNewTransaction(t *testing.T) {
	tx, err := domain.NewTransaction(50, "Food")
	require.NoError(t, err)
	assert.Equal(t, 50.0, tx.Amount())
	assert.Equal(t, "Food", tx.Category())
	assert.False(t, tx.CreatedAt().IsZero())
	assert.NotEqual(t, tx.ID().String(), "")

	other, err := domain.NewTransaction(50, "Food")
	require.NoError(t, err)
	assert.NotSame(t, tx, other, "equal values must still be distinct entries")
	assert.NotEqual(t, tx.ID(), other.ID())
}

func TestNewTransaction_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		category string
	}{
		{name: "Zero amount", amount: 0, category: "food"},
		{name: "Amount too large", amount: 1500, category: "food"},
		{name: "Unknown category", amount: 10, category: "rent"},
		{name: "Empty category", amount: 10, category: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := domain.NewTransaction(tt.amount, tt.category)
			assert.Nil(t, tx)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument), "error should wrap ErrInvalidArgument")
		})
	}
}
