package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/pkg/pagination"
	"github.com/xuri/excelize/v2"
)

var tripExportHeaders = []string{
	"Reference", "Customer", "Phone", "Vehicle", "Driver", "From", "To",
	"From Date", "From Time", "To Date", "To Time", "Kms", "Total Amount", "Advance",
	"Fuel", "Toll", "Driver Salary", "Other", "Total Expense", "Net Profit",
}

// ExportService renders cashbook and trip data as xlsx workbooks
type ExportService struct {
	engagementRepo   repository.EngagementRepository
	dashboardService *DashboardService
}

// NewExportService creates a new export service
func NewExportService(engagementRepo repository.EngagementRepository, dashboardService *DashboardService) *ExportService {
	return &ExportService{
		engagementRepo:   engagementRepo,
		dashboardService: dashboardService,
	}
}

// CashbookWorkbook builds the summary cards and the selected grouping
func (s *ExportService) CashbookWorkbook(ctx context.Context, input *CashbookInput) (*bytes.Buffer, string, error) {
	cashbook, err := s.dashboardService.GetCashbook(ctx, input)
	if err != nil {
		return nil, "", err
	}

	w := newSheetWriter("Summary")
	defer w.close()

	w.row(1, "Cashbook", cashbook.Title)
	if cashbook.Vehicle != "" {
		w.row(2, "Vehicle", cashbook.Vehicle)
	}
	t := cashbook.Totals
	w.row(4, "Total Trips", t.TripCount)
	w.row(5, "Total Kms", t.TotalKms.Km())
	w.row(6, "Total Revenue", t.Revenue.Float64())
	w.row(7, "Driver Salary", t.DriverSalary.Float64())
	w.row(8, "Fuel", t.Fuel.Float64())
	w.row(9, "Toll", t.Toll.Float64())
	w.row(10, "Other", t.Other.Float64())
	w.row(11, "Total Expense", t.TotalExpense.Float64())
	w.row(12, "Net Profit", t.NetProfit.Float64())

	w.sheet(cashbook.Title)
	w.row(1, groupHeader(cashbook.Type), "Trips", "Amount")
	for i, r := range cashbook.Rows {
		w.row(i+2, r.Key, r.Trips, r.Value.Float64())
	}

	buf, err := w.finish("Summary")
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("cashbook-%s.xlsx", cashbook.Type), nil
}

// TripsWorkbook lists every completed trip matching the search
func (s *ExportService) TripsWorkbook(ctx context.Context, input *ListTripsInput) (*bytes.Buffer, string, error) {
	trips, err := s.matchingTrips(ctx, input)
	if err != nil {
		return nil, "", err
	}

	w := newSheetWriter("Trips")
	defer w.close()

	headers := make([]interface{}, len(tripExportHeaders))
	for i, h := range tripExportHeaders {
		headers[i] = h
	}
	w.row(1, headers...)

	for i := range trips {
		t := &trips[i]
		w.row(i+2,
			t.ReferenceNo, t.CustomerName, t.CustomerPhone, t.Vehicle, t.Driver,
			t.FromDestination, t.ToDestination,
			formatDate(t.FromDate), t.FromTime, formatDate(t.ToDate), t.ToTime,
			t.Kms.Km(), t.TotalAmount.Float64(), t.Advance.Float64(),
			t.FuelExpense.Float64(), t.TollExpense.Float64(), t.DriverSalary.Float64(), t.OtherExpense.Float64(),
			t.TotalExpense().Float64(), t.NetProfit.Float64(),
		)
	}

	buf, err := w.finish("Trips")
	if err != nil {
		return nil, "", err
	}
	return buf, "trips.xlsx", nil
}

// matchingTrips walks every page of the trip list so the export applies
// the same search and date filter as the screen
func (s *ExportService) matchingTrips(ctx context.Context, input *ListTripsInput) ([]entity.Engagement, error) {
	params := &repository.EngagementFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
		Status:     enum.EngagementStatusCompleted,
		Search:     input.Search,
		FromDate:   input.FromDate,
		SortOrder:  "desc",
	}

	var trips []entity.Engagement
	for {
		page, total, err := s.engagementRepo.List(ctx, params)
		if err != nil {
			return nil, err
		}
		trips = append(trips, page...)
		if len(page) == 0 || int64(len(trips)) >= total {
			return trips, nil
		}
		params.Pagination.Page++
	}
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}

func groupHeader(reportType enum.ReportType) string {
	switch reportType {
	case enum.ReportSalarySummary:
		return "Driver"
	case enum.ReportProfitPerVehicle:
		return "Vehicle"
	}
	return "Month"
}

// sheetWriter keeps the first excelize error so the row calls stay flat
type sheetWriter struct {
	f       *excelize.File
	current string
	err     error
}

func newSheetWriter(first string) *sheetWriter {
	f := excelize.NewFile()
	w := &sheetWriter{f: f}
	w.sheet(first)
	if w.err == nil {
		w.err = f.DeleteSheet("Sheet1")
	}
	return w
}

func (w *sheetWriter) sheet(name string) {
	if w.err != nil {
		return
	}
	_, w.err = w.f.NewSheet(name)
	w.current = name
}

func (w *sheetWriter) row(rowIndex int, values ...interface{}) {
	for col, v := range values {
		if w.err != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(col+1, rowIndex)
		if err != nil {
			w.err = err
			return
		}
		w.err = w.f.SetCellValue(w.current, cell, v)
	}
}

func (w *sheetWriter) finish(active string) (*bytes.Buffer, error) {
	if w.err != nil {
		return nil, w.err
	}
	index, err := w.f.GetSheetIndex(active)
	if err != nil {
		return nil, err
	}
	w.f.SetActiveSheet(index)
	return w.f.WriteToBuffer()
}

func (w *sheetWriter) close() {
	_ = w.f.Close()
}
