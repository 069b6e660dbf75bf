package domain

import (
	"fmt"
	"math"
	"math/big"
)

// Money is a monetary amount held as a rational number to avoid float drift.
// Prices store each amount as a numerator/denominator pair of int64 columns.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from numerator and denominator.
// Example: NewMoney(249900, 100) is 2499.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// ParseMoney creates a Money from a decimal string such as "12.99".
func ParseMoney(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal amount", s)
	}
	return &Money{rat: rat}, nil
}

// Numerator returns the numerator of the normalized value.
func (m *Money) Numerator() int64 {
	return m.rat.Num().Int64()
}

// Denominator returns the denominator of the normalized value.
func (m *Money) Denominator() int64 {
	return m.rat.Denom().Int64()
}

// IsSafeForStorage reports whether both components fit in int64 columns.
func (m *Money) IsSafeForStorage() bool {
	maxInt := big.NewInt(math.MaxInt64)
	minInt := big.NewInt(math.MinInt64)
	num := m.rat.Num()
	denom := m.rat.Denom()
	return num.Cmp(maxInt) <= 0 && num.Cmp(minInt) >= 0 && denom.Cmp(maxInt) <= 0
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports whether the amount is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// LessThan reports whether this amount is less than other.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// Equals reports whether this amount equals other.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64, for display only.
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String formats the amount with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy returns a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
