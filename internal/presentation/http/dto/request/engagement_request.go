package request

// Amounts and distances arrive as the operator typed them. The service
// layer parses them so a malformed value becomes a field error rather than
// a generic bind failure.

// BookingRequest represents the booking form
type BookingRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	Vehicle         string `json:"vehicle"`
	Driver          string `json:"driver"`
	FromDestination string `json:"from_destination"`
	ToDestination   string `json:"to_destination"`
	FromDate        string `json:"from_date"`
	FromTime        string `json:"from_time"`
	ToDate          string `json:"to_date"`
	ToTime          string `json:"to_time"`
	TotalAmount     Amount `json:"total_amount"`
	Advance         Amount `json:"advance"`
}

// BookingPreviewRequest carries the two amounts a balance preview needs
type BookingPreviewRequest struct {
	TotalAmount Amount `json:"total_amount"`
	Advance     Amount `json:"advance"`
}

// CompleteOrderRequest represents the settlement form for a pending order
type CompleteOrderRequest struct {
	Payment      Amount `json:"payment"`
	FuelExpense  Amount `json:"fuel_expense"`
	TollExpense  Amount `json:"toll_expense"`
	DriverSalary Amount `json:"driver_salary"`
	OtherExpense Amount `json:"other_expense"`
	Kms          Amount `json:"kms"`
}

// CompletionPreviewRequest carries the expenses for a profit preview
type CompletionPreviewRequest struct {
	FuelExpense  Amount `json:"fuel_expense"`
	TollExpense  Amount `json:"toll_expense"`
	DriverSalary Amount `json:"driver_salary"`
	OtherExpense Amount `json:"other_expense"`
}
