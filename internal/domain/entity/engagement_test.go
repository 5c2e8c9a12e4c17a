package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder() *Engagement {
	from := time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC)
	e := &Engagement{
		ID:           uuid.New(),
		ReferenceNo:  "NJV-0001",
		Status:       enum.EngagementStatusPending,
		CustomerName: "Ravi",
		Vehicle:      "TN 01 AB 1234",
		Driver:       "Kumar",
		FromDate:     &from,
		TotalAmount:  ledger.Rupees(5000),
		Advance:      ledger.Rupees(2000),
	}
	e.Recompute()
	return e
}

func TestRecomputePending(t *testing.T) {
	e := pendingOrder()
	e.NetProfit = ledger.Rupees(99)

	e.Recompute()

	assert.Equal(t, ledger.Rupees(3000), e.Balance)
	assert.Equal(t, ledger.Money(0), e.NetProfit)
}

func TestCompleteBuildsTrip(t *testing.T) {
	order := pendingOrder()
	operator := uuid.New()
	at := time.Date(2025, time.January, 14, 10, 0, 0, 0, time.UTC)

	trip := order.Complete(Settlement{
		Payment: ledger.Rupees(3000),
		Expenses: ledger.Expenses{
			Fuel:         ledger.Rupees(500),
			Toll:         ledger.Rupees(100),
			DriverSalary: ledger.Rupees(800),
		},
		Kms:         ledger.Kilometres(320),
		CompletedBy: operator,
		CompletedAt: at,
	})

	assert.Equal(t, order.ID, trip.ID)
	assert.True(t, trip.IsCompleted())
	assert.Equal(t, ledger.Money(0), trip.Balance)
	assert.Equal(t, ledger.Rupees(3600), trip.NetProfit)
	assert.Equal(t, ledger.Rupees(1400), trip.TotalExpense())
	assert.Equal(t, ledger.Rupees(3000), trip.PaymentReceived)
	require.NotNil(t, trip.CompletedBy)
	assert.Equal(t, operator, *trip.CompletedBy)

	// the order itself is untouched
	assert.True(t, order.IsPending())
	assert.Equal(t, ledger.Rupees(3000), order.Balance)
	assert.Nil(t, order.CompletedAt)
}

func TestMonthKey(t *testing.T) {
	e := pendingOrder()
	key, ok := e.MonthKey()
	assert.True(t, ok)
	assert.Equal(t, "Jan 2025", key)

	e.FromDate = nil
	_, ok = e.MonthKey()
	assert.False(t, ok)
}

func TestEngagementJSON(t *testing.T) {
	trip := pendingOrder().Complete(Settlement{
		Payment:  ledger.Rupees(3000),
		Expenses: ledger.Expenses{Fuel: ledger.Rupees(6000)},
	})

	data, err := json.Marshal(trip)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Completed", out["status"])
	assert.Equal(t, float64(6000), out["total_expense"])
	assert.Equal(t, float64(-1000), out["net_profit"])
	assert.Equal(t, "loss", out["outcome"])

	data, err = json.Marshal(pendingOrder())
	require.NoError(t, err)
	out = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &out))
	_, hasOutcome := out["outcome"]
	assert.False(t, hasOutcome)
	assert.Equal(t, float64(3000), out["balance"])
}
