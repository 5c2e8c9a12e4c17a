package handler

import (
	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/request"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles pending orders
type OrderHandler struct {
	lifecycleService *service.LifecycleService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(lifecycleService *service.LifecycleService) *OrderHandler {
	return &OrderHandler{lifecycleService: lifecycleService}
}

// List handles listing pending orders, oldest first
func (h *OrderHandler) List(c *gin.Context) {
	result, err := h.lifecycleService.ListOrders(c.Request.Context(), paginationFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}

	order, err := h.lifecycleService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Preview shows the expense total and profit for the expenses typed so far
func (h *OrderHandler) Preview(c *gin.Context) {
	id, ok := parseID(c, "order")
	if !ok {
		return
	}

	var req request.CompletionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	summary, err := h.lifecycleService.PreviewCompletion(c.Request.Context(), &service.PreviewCompletionInput{
		OrderID:      id,
		FuelExpense:  req.FuelExpense.String(),
		TollExpense:  req.TollExpense.String(),
		DriverSalary: req.DriverSalary.String(),
		OtherExpense: req.OtherExpense.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preview computed", summary)
}

// Complete settles an order and turns it into a trip
func (h *OrderHandler) Complete(c *gin.Context) {
	operatorID := requireOperator(c)
	if operatorID == nil {
		return
	}

	id, ok := parseID(c, "order")
	if !ok {
		return
	}

	var req request.CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	trip, err := h.lifecycleService.CompleteOrder(c.Request.Context(), &service.CompleteOrderInput{
		OperatorID:   *operatorID,
		OrderID:      id,
		Payment:      req.Payment.String(),
		FuelExpense:  req.FuelExpense.String(),
		TollExpense:  req.TollExpense.String(),
		DriverSalary: req.DriverSalary.String(),
		OtherExpense: req.OtherExpense.String(),
		Kms:          req.Kms.String(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order completed successfully", gin.H{
		"route":      trip.Status.Route(),
		"engagement": trip,
	})
}

// Delete removes a pending order after confirmation
func (h *OrderHandler) Delete(c *gin.Context) {
	operatorID := requireOperator(c)
	if operatorID == nil {
		return
	}

	id, ok := parseID(c, "order")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}

	if err := h.lifecycleService.DeleteOrder(c.Request.Context(), *operatorID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}
