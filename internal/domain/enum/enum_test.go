package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementStatusJSON(t *testing.T) {
	data, err := json.Marshal(EngagementStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, `"Completed"`, string(data))

	data, err = json.Marshal(EngagementStatusPending)
	require.NoError(t, err)
	assert.Equal(t, `"Pending"`, string(data))
}

func TestEngagementStatusScan(t *testing.T) {
	var s EngagementStatus
	require.NoError(t, s.Scan(int64(1)))
	assert.Equal(t, EngagementStatusCompleted, s)

	require.NoError(t, s.Scan(nil))
	assert.Equal(t, EngagementStatusPending, s)

	assert.Error(t, s.Scan("Completed"))
}

func TestEngagementStatusRoute(t *testing.T) {
	assert.Equal(t, "orders", EngagementStatusPending.Route())
	assert.Equal(t, "trips", EngagementStatusCompleted.Route())
}

func TestParseReportType(t *testing.T) {
	tests := map[string]ReportType{
		"":                 ReportMonthlyRevenue,
		"monthlyProfit":    ReportMonthlyProfit,
		"salarySummary":    ReportSalarySummary,
		"profitPerVehicle": ReportProfitPerVehicle,
		"profitVehicle":    ReportProfitPerVehicle,
	}
	for in, want := range tests {
		got, ok := ParseReportType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseReportType("weekly")
	assert.False(t, ok)
}
