package handler

import (
	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/request"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BookingHandler accepts new bookings
type BookingHandler struct {
	lifecycleService *service.LifecycleService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(lifecycleService *service.LifecycleService) *BookingHandler {
	return &BookingHandler{lifecycleService: lifecycleService}
}

// Create stores a booking as a trip when fully paid and as an order otherwise.
// The response names the list the record landed in.
func (h *BookingHandler) Create(c *gin.Context) {
	operatorID := requireOperator(c)
	if operatorID == nil {
		return
	}

	var req request.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.lifecycleService.CreateEngagement(c.Request.Context(), &service.CreateEngagementInput{
		OperatorID:      *operatorID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Vehicle:         req.Vehicle,
		Driver:          req.Driver,
		FromDestination: req.FromDestination,
		ToDestination:   req.ToDestination,
		FromDate:        req.FromDate,
		FromTime:        req.FromTime,
		ToDate:          req.ToDate,
		ToTime:          req.ToTime,
		TotalAmount:     req.TotalAmount.String(),
		Advance:         req.Advance.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, output.Engagement.Status.Label()+" saved successfully", gin.H{
		"route":      output.Route,
		"engagement": output.Engagement,
	})
}

// Preview returns the balance for the amounts typed so far
func (h *BookingHandler) Preview(c *gin.Context) {
	var req request.BookingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	summary := h.lifecycleService.PreviewBooking(&service.PreviewBookingInput{
		TotalAmount: req.TotalAmount.String(),
		Advance:     req.Advance.String(),
	})

	response.OK(c, "Preview computed", summary)
}
