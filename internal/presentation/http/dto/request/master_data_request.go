package request

// VehicleRequest represents a vehicle create or update request
type VehicleRequest struct {
	VehicleName string `json:"vehicle_name"`
}

// DriverRequest represents a driver create or update request
type DriverRequest struct {
	DriverName   string `json:"driver_name"`
	DriverMobile string `json:"driver_mobile"`
}
