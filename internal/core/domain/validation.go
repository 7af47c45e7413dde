package domain

import (
	"math"
	"regexp"
	"strings"
)

// MaxAmount is the inclusive upper bound for a transaction amount.
const MaxAmount = 1000.0

// Category vocabulary.
const (
	CategoryFood          = "food"
	CategoryTravel        = "travel"
	CategoryBills         = "bills"
	CategoryEntertainment = "entertainment"
	CategoryOther         = "other"
)

var categories = []string{
	CategoryFood,
	CategoryTravel,
	CategoryBills,
	CategoryEntertainment,
	CategoryOther,
}

// Letters only, no digits, spaces or punctuation.
var categoryRegex = regexp.MustCompile("^[a-zA-Z]+$")

// IsValidAmount reports whether amount lies in (0, MaxAmount].
func IsValidAmount(amount float64) bool {
	if math.IsNaN(amount) {
		return false
	}
	return amount > 0 && amount <= MaxAmount
}

// IsValidCategory reports whether category is a known label, ignoring case.
func IsValidCategory(category string) bool {
	if strings.TrimSpace(category) == "" {
		return false
	}
	if !categoryRegex.MatchString(category) {
		return false
	}

	lower := strings.ToLower(category)
	for _, c := range categories {
		if c == lower {
			return true
		}
	}
	return false
}

// Categories returns the accepted category labels in lowercase.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
