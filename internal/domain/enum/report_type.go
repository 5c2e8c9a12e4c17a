package enum

import "strings"

// ReportType selects how the cashbook groups completed trips
type ReportType string

const (
	ReportMonthlyRevenue   ReportType = "monthlyRevenue"
	ReportMonthlyProfit    ReportType = "monthlyProfit"
	ReportSalarySummary    ReportType = "salarySummary"
	ReportProfitPerVehicle ReportType = "profitPerVehicle"
)

// ReportTypes lists every grouping mode in display order
var ReportTypes = []ReportType{
	ReportMonthlyRevenue,
	ReportMonthlyProfit,
	ReportSalarySummary,
	ReportProfitPerVehicle,
}

// ParseReportType resolves a query value; an empty value selects monthly revenue
func ParseReportType(s string) (ReportType, bool) {
	switch strings.TrimSpace(s) {
	case "", string(ReportMonthlyRevenue):
		return ReportMonthlyRevenue, true
	case string(ReportMonthlyProfit):
		return ReportMonthlyProfit, true
	case string(ReportSalarySummary):
		return ReportSalarySummary, true
	case string(ReportProfitPerVehicle), "profitVehicle":
		return ReportProfitPerVehicle, true
	}
	return "", false
}

// Title is the heading used on reports and exports
func (r ReportType) Title() string {
	switch r {
	case ReportMonthlyRevenue:
		return "Monthly Revenue"
	case ReportMonthlyProfit:
		return "Monthly Profit"
	case ReportSalarySummary:
		return "Driver Salary Summary"
	case ReportProfitPerVehicle:
		return "Profit Per Vehicle"
	}
	return string(r)
}

// IsMonthly reports whether the grouping key is the trip month
func (r ReportType) IsMonthly() bool {
	return r == ReportMonthlyRevenue || r == ReportMonthlyProfit
}
