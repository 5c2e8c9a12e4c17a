package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trip(day time.Time, vehicle, driver string, total int64, exp ledger.Expenses, km int64) entity.Engagement {
	e := entity.Engagement{
		Status:       enum.EngagementStatusCompleted,
		Vehicle:      vehicle,
		Driver:       driver,
		TotalAmount:  ledger.Rupees(total),
		FuelExpense:  exp.Fuel,
		TollExpense:  exp.Toll,
		DriverSalary: exp.DriverSalary,
		OtherExpense: exp.Other,
		Kms:          ledger.Kilometres(km),
	}
	if !day.IsZero() {
		e.FromDate = &day
	}
	e.Recompute()
	return e
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleTrips() []entity.Engagement {
	return []entity.Engagement{
		trip(date(2025, time.January, 3), "TN01", "Kumar", 1000, ledger.Expenses{Fuel: ledger.Rupees(200), DriverSalary: ledger.Rupees(100)}, 120),
		trip(date(2025, time.January, 20), "TN02", "Selvam", 2000, ledger.Expenses{Toll: ledger.Rupees(50), DriverSalary: ledger.Rupees(300)}, 250),
		trip(date(2025, time.February, 1), "TN01", "Kumar", 500, ledger.Expenses{Other: ledger.Rupees(700)}, 40),
		trip(date(2024, time.December, 28), "TN03", "", 800, ledger.Expenses{}, 90),
		trip(time.Time{}, "", "Selvam", 300, ledger.Expenses{DriverSalary: ledger.Rupees(50)}, 10),
	}
}

func TestGroupMonthlyRevenue(t *testing.T) {
	trips := []entity.Engagement{
		trip(date(2025, time.January, 5), "TN01", "Kumar", 1000, ledger.Expenses{}, 0),
		trip(date(2025, time.January, 19), "TN01", "Kumar", 2000, ledger.Expenses{}, 0),
		trip(date(2025, time.February, 7), "TN01", "Kumar", 500, ledger.Expenses{}, 0),
	}

	rows := Group(trips, enum.ReportMonthlyRevenue)

	assert.Equal(t, map[string]ledger.Money{
		"Jan 2025": ledger.Rupees(3000),
		"Feb 2025": ledger.Rupees(500),
	}, AsMap(rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Jan 2025", rows[0].Key)
	assert.Equal(t, 2, rows[0].Trips)
}

func TestGroupSkipsMissingKeys(t *testing.T) {
	trips := sampleTrips()

	monthly := Group(trips, enum.ReportMonthlyProfit)
	assert.Len(t, monthly, 3)
	assert.Equal(t, []string{"Dec 2024", "Jan 2025", "Feb 2025"}, keys(monthly))
	assert.Equal(t, ledger.Rupees(-200), AsMap(monthly)["Feb 2025"])

	salaries := Group(trips, enum.ReportSalarySummary)
	assert.Equal(t, map[string]ledger.Money{
		"Kumar":  ledger.Rupees(100),
		"Selvam": ledger.Rupees(350),
	}, AsMap(salaries))

	vehicles := Group(trips, enum.ReportProfitPerVehicle)
	assert.Equal(t, []string{"TN01", "TN02", "TN03"}, keys(vehicles))
	assert.Equal(t, ledger.Rupees(500), AsMap(vehicles)["TN01"])
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(sampleTrips())

	assert.Equal(t, 5, totals.TripCount)
	assert.Equal(t, ledger.Kilometres(510), totals.TotalKms)
	assert.Equal(t, ledger.Rupees(4600), totals.Revenue)
	assert.Equal(t, ledger.Rupees(450), totals.DriverSalary)
	assert.Equal(t, ledger.Rupees(1400), totals.TotalExpense)
	assert.Equal(t, totals.Revenue-totals.TotalExpense, totals.NetProfit)
}

func TestComputeTripStats(t *testing.T) {
	stats := ComputeTripStats(sampleTrips())

	assert.Equal(t, 5, stats.TotalTrips)
	assert.Equal(t, ledger.Kilometres(510), stats.TotalKms)
	require.Len(t, stats.Vehicles, 3)
	assert.Equal(t, Breakdown{Key: "TN01", Trips: 2, Kms: ledger.Kilometres(160)}, stats.Vehicles[0])
	require.Len(t, stats.Drivers, 2)
	assert.Equal(t, Breakdown{Key: "Selvam", Trips: 2, Kms: ledger.Kilometres(260)}, stats.Drivers[1])
}

func TestAggregationIgnoresInputOrder(t *testing.T) {
	trips := sampleTrips()
	rng := rand.New(rand.NewSource(42))

	wantTotals := ComputeTotals(trips)
	wantStats := ComputeTripStats(trips)
	want := make(map[enum.ReportType][]Row)
	for _, rt := range enum.ReportTypes {
		want[rt] = Group(trips, rt)
	}

	for i := 0; i < 50; i++ {
		shuffled := append([]entity.Engagement(nil), trips...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, wantTotals, ComputeTotals(shuffled))
		assert.Equal(t, wantStats, ComputeTripStats(shuffled))
		for _, rt := range enum.ReportTypes {
			assert.Equal(t, want[rt], Group(shuffled, rt), rt)
		}
	}
}

func keys(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Key)
	}
	return out
}
