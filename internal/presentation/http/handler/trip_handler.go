package handler

import (
	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/ahamedrahman2000/njv-travels/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// TripHandler handles completed trips
type TripHandler struct {
	lifecycleService *service.LifecycleService
	exportService    *service.ExportService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(lifecycleService *service.LifecycleService, exportService *service.ExportService) *TripHandler {
	return &TripHandler{
		lifecycleService: lifecycleService,
		exportService:    exportService,
	}
}

// List handles listing trips, newest first, with optional search and start date
func (h *TripHandler) List(c *gin.Context) {
	input, ok := tripQuery(c)
	if !ok {
		return
	}

	result, err := h.lifecycleService.ListTrips(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Trips retrieved successfully", result)
}

// Get handles getting a single trip
func (h *TripHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "trip")
	if !ok {
		return
	}

	trip, err := h.lifecycleService.GetTrip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trip retrieved successfully", trip)
}

// Delete removes a trip after confirmation
func (h *TripHandler) Delete(c *gin.Context) {
	operatorID := requireOperator(c)
	if operatorID == nil {
		return
	}

	id, ok := parseID(c, "trip")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}

	if err := h.lifecycleService.DeleteTrip(c.Request.Context(), *operatorID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trip deleted successfully", nil)
}

// Export downloads the filtered trip list as a workbook
func (h *TripHandler) Export(c *gin.Context) {
	input, ok := tripQuery(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportService.TripsWorkbook(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Spreadsheet(c, filename, buf)
}

func tripQuery(c *gin.Context) (*service.ListTripsInput, bool) {
	fromDate, err := service.ParseDate(c.Query("from_date"))
	if err != nil {
		response.ValidationError(c, []apperror.FieldError{{Field: "from_date", Message: err.Error()}})
		return nil, false
	}

	return &service.ListTripsInput{
		Pagination: paginationFromQuery(c),
		Search:     c.Query("search"),
		FromDate:   fromDate,
	}, true
}
