package ledger

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Distance is a travelled distance in metres
type Distance int64

const metreExponent = -3

var errDistanceTooPrecise = errors.New("must have at most three decimal places")

// Kilometres builds a Distance from a whole kilometre count
func Kilometres(km int64) Distance {
	return Distance(km * 1000)
}

// ParseDistance parses a kilometre reading such as "412" or "412.5".
func ParseDistance(s string) (Distance, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissing
	}

	d, err := parseBounded(s, errDistanceTooPrecise)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}
	if !d.Equal(d.Round(3)) {
		return 0, errDistanceTooPrecise
	}
	if d.GreaterThanOrEqual(maxMoneyAmount) {
		return 0, ErrOutOfRange
	}

	return Distance(d.Shift(3).IntPart()), nil
}

// Decimal returns the distance in kilometres
func (d Distance) Decimal() decimal.Decimal {
	return decimal.New(int64(d), metreExponent)
}

// Km returns the distance in kilometres. Use only for presentation.
func (d Distance) Km() float64 {
	return d.Decimal().InexactFloat64()
}

func (d Distance) String() string {
	return d.Decimal().String()
}

// MarshalJSON renders the distance in kilometres as a JSON number
func (d Distance) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}
