// Package report derives cashbook and dashboard figures from completed trips.
// Every aggregate is an integer sum, so results do not depend on the order
// of the input.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/ledger"
)

// Totals are the scalar cashbook figures
type Totals struct {
	TripCount    int             `json:"trip_count"`
	TotalKms     ledger.Distance `json:"total_kms"`
	Revenue      ledger.Money    `json:"total_revenue"`
	Fuel         ledger.Money    `json:"total_fuel"`
	DriverSalary ledger.Money    `json:"total_driver_salary"`
	Toll         ledger.Money    `json:"total_toll"`
	Other        ledger.Money    `json:"total_other"`
	TotalExpense ledger.Money    `json:"total_expense"`
	NetProfit    ledger.Money    `json:"total_profit"`
}

// Row is one bucket of a grouped report
type Row struct {
	Key   string       `json:"key"`
	Value ledger.Money `json:"value"`
	Trips int          `json:"trips"`
}

// Breakdown is the per-vehicle or per-driver dashboard line
type Breakdown struct {
	Key   string          `json:"key"`
	Trips int             `json:"trips"`
	Kms   ledger.Distance `json:"kms"`
}

// TripStats is the trip-derived part of the dashboard
type TripStats struct {
	TotalTrips int             `json:"total_trips"`
	TotalKms   ledger.Distance `json:"total_kms"`
	Vehicles   []Breakdown     `json:"vehicles"`
	Drivers    []Breakdown     `json:"drivers"`
}

// ComputeTotals sums every trip
func ComputeTotals(trips []entity.Engagement) Totals {
	var t Totals
	for i := range trips {
		trip := &trips[i]
		t.TripCount++
		t.TotalKms += trip.Kms
		t.Revenue += trip.TotalAmount
		t.Fuel += trip.FuelExpense
		t.DriverSalary += trip.DriverSalary
		t.Toll += trip.TollExpense
		t.Other += trip.OtherExpense
		t.NetProfit += trip.NetProfit
	}
	t.TotalExpense = ledger.ComputeTotalExpense(t.Fuel, t.Toll, t.DriverSalary, t.Other)
	return t
}

// Group buckets trips by the key the report type selects. Trips without
// that key are left out. Monthly rows come back in calendar order, the
// others sorted by key.
func Group(trips []entity.Engagement, reportType enum.ReportType) []Row {
	buckets := make(map[string]*Row)
	months := make(map[string]time.Time)

	for i := range trips {
		trip := &trips[i]

		key, ok := groupKey(trip, reportType)
		if !ok {
			continue
		}
		if reportType.IsMonthly() {
			months[key] = time.Date(trip.FromDate.Year(), trip.FromDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		}

		row, exists := buckets[key]
		if !exists {
			row = &Row{Key: key}
			buckets[key] = row
		}
		row.Value += groupValue(trip, reportType)
		row.Trips++
	}

	rows := make([]Row, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if reportType.IsMonthly() {
			return months[rows[i].Key].Before(months[rows[j].Key])
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// AsMap returns the rows keyed by bucket
func AsMap(rows []Row) map[string]ledger.Money {
	out := make(map[string]ledger.Money, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out
}

// ComputeTripStats counts trips and distance per vehicle and per driver
func ComputeTripStats(trips []entity.Engagement) TripStats {
	vehicles := make(map[string]*Breakdown)
	drivers := make(map[string]*Breakdown)

	stats := TripStats{}
	for i := range trips {
		trip := &trips[i]
		stats.TotalTrips++
		stats.TotalKms += trip.Kms

		if key := strings.TrimSpace(trip.Vehicle); key != "" {
			accumulate(vehicles, key, trip.Kms)
		}
		if key := strings.TrimSpace(trip.Driver); key != "" {
			accumulate(drivers, key, trip.Kms)
		}
	}

	stats.Vehicles = sortedBreakdown(vehicles)
	stats.Drivers = sortedBreakdown(drivers)
	return stats
}

func groupKey(trip *entity.Engagement, reportType enum.ReportType) (string, bool) {
	switch reportType {
	case enum.ReportMonthlyRevenue, enum.ReportMonthlyProfit:
		return trip.MonthKey()
	case enum.ReportSalarySummary:
		key := strings.TrimSpace(trip.Driver)
		return key, key != ""
	case enum.ReportProfitPerVehicle:
		key := strings.TrimSpace(trip.Vehicle)
		return key, key != ""
	}
	return "", false
}

func groupValue(trip *entity.Engagement, reportType enum.ReportType) ledger.Money {
	switch reportType {
	case enum.ReportMonthlyRevenue:
		return trip.TotalAmount
	case enum.ReportSalarySummary:
		return trip.DriverSalary
	default:
		return trip.NetProfit
	}
}

func accumulate(m map[string]*Breakdown, key string, kms ledger.Distance) {
	b, exists := m[key]
	if !exists {
		b = &Breakdown{Key: key}
		m[key] = b
	}
	b.Trips++
	b.Kms += kms
}

func sortedBreakdown(m map[string]*Breakdown) []Breakdown {
	out := make([]Breakdown, 0, len(m))
	for _, b := range m {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}
