package service

import (
	"context"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/ledger"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/report"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/pkg/apperror"
)

// DashboardService provides dashboard and cashbook figures
type DashboardService struct {
	engagementRepo repository.EngagementRepository
	vehicleRepo    repository.VehicleRepository
	driverRepo     repository.DriverRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	engagementRepo repository.EngagementRepository,
	vehicleRepo repository.VehicleRepository,
	driverRepo repository.DriverRepository,
) *DashboardService {
	return &DashboardService{
		engagementRepo: engagementRepo,
		vehicleRepo:    vehicleRepo,
		driverRepo:     driverRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	report.TripStats
	PendingOrders int64 `json:"pending_orders"`
	TotalVehicles int64 `json:"total_vehicles"`
	TotalDrivers  int64 `json:"total_drivers"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	trips, err := s.engagementRepo.ListAll(ctx, enum.EngagementStatusCompleted, "")
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TripStats: report.ComputeTripStats(trips)}

	if stats.PendingOrders, err = s.engagementRepo.Count(ctx, enum.EngagementStatusPending); err != nil {
		return nil, err
	}
	if stats.TotalVehicles, err = s.vehicleRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDrivers, err = s.driverRepo.Count(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// CashbookInput selects the grouping and an optional vehicle
type CashbookInput struct {
	Type    string
	Vehicle string
}

// Cashbook is the summary cards plus one grouped report
type Cashbook struct {
	Type    enum.ReportType `json:"type"`
	Title   string          `json:"title"`
	Vehicle string          `json:"vehicle,omitempty"`
	Totals  report.Totals   `json:"totals"`
	Rows    []report.Row    `json:"rows"`
	Outcome ledger.Outcome  `json:"outcome"`
}

// GetCashbook aggregates completed trips for the cashbook view
func (s *DashboardService) GetCashbook(ctx context.Context, input *CashbookInput) (*Cashbook, error) {
	reportType, ok := enum.ParseReportType(input.Type)
	if !ok {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "type", Message: "Report type must be one of monthlyRevenue, monthlyProfit, salarySummary, profitPerVehicle"},
		})
	}

	trips, err := s.engagementRepo.ListAll(ctx, enum.EngagementStatusCompleted, input.Vehicle)
	if err != nil {
		return nil, err
	}

	totals := report.ComputeTotals(trips)
	return &Cashbook{
		Type:    reportType,
		Title:   reportType.Title(),
		Vehicle: input.Vehicle,
		Totals:  totals,
		Rows:    report.Group(trips, reportType),
		Outcome: ledger.Classify(totals.NetProfit),
	}, nil
}
