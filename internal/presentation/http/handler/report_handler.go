package handler

import (
	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard and the cashbook
type ReportHandler struct {
	dashboardService *service.DashboardService
	exportService    *service.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(dashboardService *service.DashboardService, exportService *service.ExportService) *ReportHandler {
	return &ReportHandler{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// Dashboard handles getting dashboard statistics
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// Cashbook returns the totals and one grouped report
func (h *ReportHandler) Cashbook(c *gin.Context) {
	cashbook, err := h.dashboardService.GetCashbook(c.Request.Context(), cashbookQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cashbook retrieved successfully", cashbook)
}

// ExportCashbook downloads the cashbook as a workbook
func (h *ReportHandler) ExportCashbook(c *gin.Context) {
	buf, filename, err := h.exportService.CashbookWorkbook(c.Request.Context(), cashbookQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Spreadsheet(c, filename, buf)
}

func cashbookQuery(c *gin.Context) *service.CashbookInput {
	return &service.CashbookInput{
		Type:    c.Query("type"),
		Vehicle: c.Query("vehicle"),
	}
}
