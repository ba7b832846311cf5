package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMinIncrement is the smallest step a bid must raise the current price by
var DefaultMinIncrement = decimal.NewFromInt(1)

// Bounds on the decimal exponent of a parsed amount. Decimal comparisons rescale
// both operands to the smaller exponent.
const (
	MaxAmountScale    = 8
	MaxAmountExponent = 18
)

var (
	errEmptyAmount       = errors.New("amount is empty")
	errNonPositiveAmount = errors.New("amount must be positive")
	errAmountOutOfRange  = errors.New("amount out of range")
)

// ParseAmount parses a user supplied amount. Only finite, strictly positive values are accepted.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errEmptyAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if exp := amount.Exponent(); exp < -MaxAmountScale || exp > MaxAmountExponent {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", raw, errAmountOutOfRange)
	}
	if !amount.IsPositive() {
		return decimal.Zero, errNonPositiveAmount
	}
	return amount, nil
}

// MinimumBid returns the lowest amount that beats current
func MinimumBid(current, increment decimal.Decimal) decimal.Decimal {
	if !increment.IsPositive() {
		increment = DefaultMinIncrement
	}
	return current.Add(increment)
}

// IsZeroPrice reports whether a prize price denotes zero
func IsZeroPrice(price string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return false
	}
	return d.IsZero()
}

// Price is the price of a prize-sink entry. Prizes issued here are priced "0";
// other flows writing to the same sink store plain JSON numbers.
type Price string

// IsZero reports whether the price denotes zero
func (p Price) IsZero() bool {
	return IsZeroPrice(string(p))
}

// UnmarshalJSON accepts either a JSON string or a JSON number
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode price: %w", err)
		}
		*p = Price(strings.TrimSpace(s))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode price: %w", err)
		}
		*p = Price(n.String())
	}
	return nil
}
