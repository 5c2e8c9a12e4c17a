package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    Money
		wantErr error
	}{
		{"5000", Rupees(5000), nil},
		{" 2500.5 ", 250050, nil},
		{"0.01", 1, nil},
		{"-20", Rupees(-20), nil},
		{"", 0, ErrMissing},
		{"   ", 0, ErrMissing},
		{"abc", 0, ErrNotNumeric},
		{"12,000", 0, ErrNotNumeric},
		{"10.505", 0, ErrTooPrecise},
		{"10000000000000", 0, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountOrZero(t *testing.T) {
	assert.Equal(t, Money(0), AmountOrZero("not a number"))
	assert.Equal(t, Rupees(12), AmountOrZero("12"))
}

func TestComputeBalance(t *testing.T) {
	pairs := []struct{ total, advance Money }{
		{Rupees(5000), Rupees(5000)},
		{Rupees(5000), Rupees(2000)},
		{Rupees(1000), Rupees(1500)},
		{0, 0},
		{123456, 1},
	}
	for _, p := range pairs {
		assert.Equal(t, p.total-p.advance, ComputeBalance(p.total, p.advance))
	}
	assert.Equal(t, Rupees(-500), ComputeBalance(Rupees(1000), Rupees(1500)))
}

func TestProfitLaw(t *testing.T) {
	total := Rupees(5000)
	for _, e := range []Expenses{
		{},
		{Fuel: Rupees(500), Toll: Rupees(100), DriverSalary: Rupees(800)},
		{Fuel: Rupees(4000), Toll: Rupees(900), DriverSalary: Rupees(800), Other: 55},
	} {
		want := total - (e.Fuel + e.Toll + e.DriverSalary + e.Other)
		assert.Equal(t, want, ComputeNetProfit(total, e.Total()))
	}
}

func TestPreviewScenarioC(t *testing.T) {
	s := Preview(Rupees(5000), Rupees(2000), Expenses{
		Fuel:         Rupees(500),
		Toll:         Rupees(100),
		DriverSalary: Rupees(800),
	})

	assert.Equal(t, Rupees(3000), s.Balance)
	assert.Equal(t, Rupees(1400), s.TotalExpense)
	assert.Equal(t, Rupees(3600), s.NetProfit)
	assert.Equal(t, OutcomeProfit, s.Outcome)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeLoss, Classify(-1))
	assert.Equal(t, OutcomeBreakEven, Classify(0))
	assert.Equal(t, OutcomeProfit, Classify(1))
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{Amount: 300050})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 3000.50}`, string(data))

	data, err = json.Marshal(struct {
		Distance Distance `json:"distance"`
	}{Distance: Kilometres(12)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"distance": 12}`, string(data))
}

func TestParseRejectsExtremeExponentsQuickly(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"1e10000000", ErrOutOfRange},
		{"-1e10000000", ErrOutOfRange},
		{"1e-10000000", ErrTooPrecise},
		{"1e14", ErrOutOfRange},
		{"0e10000000", nil},
		{"12345678901234567890123456789012345", ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start := time.Now()
			_, err := ParseAmount(tt.in)
			assert.Less(t, time.Since(start), 100*time.Millisecond)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	start := time.Now()
	_, err := ParseDistance("1e10000000")
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ParseDistance("1e-10000000")
	assert.ErrorIs(t, err, errDistanceTooPrecise)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestParseDistance(t *testing.T) {
	d, err := ParseDistance("412.5")
	require.NoError(t, err)
	assert.Equal(t, Distance(412500), d)
	assert.Equal(t, "412.5", d.String())

	_, err = ParseDistance("-3")
	assert.ErrorIs(t, err, ErrNegative)

	_, err = ParseDistance("1.0001")
	assert.Error(t, err)

	_, err = ParseDistance("")
	assert.ErrorIs(t, err, ErrMissing)
}
