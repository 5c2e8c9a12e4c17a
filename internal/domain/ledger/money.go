package ledger

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in paise. All ledger arithmetic is done on integers so
// that equality checks on settlements are exact.
type Money int64

const paiseExponent = -2

// Amount parsing errors
var (
	ErrMissing     = errors.New("is required")
	ErrNotNumeric  = errors.New("must be a number")
	ErrTooPrecise  = errors.New("must have at most two decimal places")
	ErrOutOfRange  = errors.New("is out of range")
	ErrNegative    = errors.New("must not be negative")
	maxMoneyAmount = decimal.New(1, 13)
)

const (
	// longest numeric text accepted for an amount or a reading
	maxInputLength = 32
	// values are below 10^13, so no accepted input has a larger exponent
	maxExponent = 13
)

// Rupees builds a Money value from a whole rupee amount
func Rupees(r int64) Money {
	return Money(r * 100)
}

// ParseAmount parses a decimal string such as "2500" or "2500.50".
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissing
	}

	d, err := parseBounded(s, ErrTooPrecise)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Round(2)) {
		return 0, ErrTooPrecise
	}
	if d.Abs().GreaterThanOrEqual(maxMoneyAmount) {
		return 0, ErrOutOfRange
	}

	return Money(d.Shift(2).IntPart()), nil
}

// parseBounded parses s and rejects exponents that would make Round or Cmp
// rescale into a huge coefficient. "1e10000000" is a few bytes of input but
// ten million digits once rescaled.
func parseBounded(s string, tooPrecise error) (decimal.Decimal, error) {
	if len(s) > maxInputLength {
		return decimal.Zero, ErrOutOfRange
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotNumeric
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if d.Exponent() > maxExponent {
		return decimal.Zero, ErrOutOfRange
	}
	if d.Exponent() < -maxInputLength {
		return decimal.Zero, tooPrecise
	}
	return d, nil
}

// AmountOrZero parses s for display purposes; anything unparsable is 0.
func AmountOrZero(s string) Money {
	m, err := ParseAmount(s)
	if err != nil {
		return 0
	}
	return m
}

// Decimal returns the amount in rupees as a decimal
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), paiseExponent)
}

// Float64 returns the amount in rupees. Use only for presentation.
func (m Money) Float64() float64 {
	return m.Decimal().InexactFloat64()
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON renders the amount in rupees as a JSON number
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
