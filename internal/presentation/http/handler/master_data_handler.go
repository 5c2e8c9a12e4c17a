package handler

import (
	"github.com/ahamedrahman2000/njv-travels/internal/application/service"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/request"
	"github.com/ahamedrahman2000/njv-travels/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// VehicleHandler handles vehicle master data
type VehicleHandler struct {
	vehicleService *service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// List handles listing vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicles retrieved successfully", vehicles)
}

// Create handles creating a vehicle
func (h *VehicleHandler) Create(c *gin.Context) {
	var req request.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req.VehicleName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle created successfully", vehicle)
}

// Get handles getting a vehicle
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle retrieved successfully", vehicle)
}

// Update handles renaming a vehicle
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}

	var req request.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), id, req.VehicleName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle updated successfully", vehicle)
}

// Delete handles deleting a vehicle
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "vehicle")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle deleted successfully", nil)
}

// DriverHandler handles driver master data
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// List handles listing drivers
func (h *DriverHandler) List(c *gin.Context) {
	drivers, err := h.driverService.ListDrivers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Drivers retrieved successfully", drivers)
}

// Create handles creating a driver
func (h *DriverHandler) Create(c *gin.Context) {
	var req request.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), &service.DriverInput{
		DriverName:   req.DriverName,
		DriverMobile: req.DriverMobile,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Driver created successfully", driver)
}

// Get handles getting a driver
func (h *DriverHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "driver")
	if !ok {
		return
	}

	driver, err := h.driverService.GetDriver(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Driver retrieved successfully", driver)
}

// Update handles updating a driver
func (h *DriverHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "driver")
	if !ok {
		return
	}

	var req request.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), id, &service.DriverInput{
		DriverName:   req.DriverName,
		DriverMobile: req.DriverMobile,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Driver updated successfully", driver)
}

// Delete handles deleting a driver
func (h *DriverHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "driver")
	if !ok {
		return
	}
	if !confirmed(c) {
		return
	}

	if err := h.driverService.DeleteDriver(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Driver deleted successfully", nil)
}
