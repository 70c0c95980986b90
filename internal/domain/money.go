// Package domain contains the core business entities and rules for the flight
// offers gateway. These types are provider-agnostic: the provider adapter maps
// its wire format into them, and everything downstream trusts their invariants.
package domain

import "strings"

// Money is an immutable monetary value with its ISO 4217 currency code.
// Construct it through NewMoney; the zero value is a valid "0 of no currency"
// only for internal defaulting and should not leave the mapping layer.
type Money struct {
	amount   float64
	currency string
}

// NewMoney creates a Money value.
// The amount must be non-negative and the currency must be non-blank.
// The currency code is trimmed and normalized to uppercase.
func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, NewValidationError("amount", "amount must not be negative")
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, NewValidationError("currency", "currency is required")
	}

	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the numeric value.
func (m Money) Amount() float64 {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Equals reports whether two Money values have the same amount and currency.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}
