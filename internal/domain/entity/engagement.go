package entity

import (
	"encoding/json"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engagement is a booked transport job. While Pending it is an order with
// money still owed; once Completed it is a trip carrying expenses and profit.
// The ID does not change across the transition.
type Engagement struct {
	ID              uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	ReferenceNo     string                `gorm:"size:50;uniqueIndex;not null" json:"reference_no"`
	Status          enum.EngagementStatus `gorm:"not null;default:0;index" json:"status"`
	CustomerName    string                `gorm:"size:255;not null;index" json:"customer_name"`
	CustomerPhone   string                `gorm:"size:50;not null" json:"customer_phone"`
	Vehicle         string                `gorm:"size:255;not null;index" json:"vehicle"`
	Driver          string                `gorm:"size:255;not null;index" json:"driver"`
	FromDestination string                `gorm:"size:255;not null" json:"from_destination"`
	ToDestination   string                `gorm:"size:255;not null" json:"to_destination"`
	FromDate        *time.Time            `gorm:"type:date;index" json:"from_date"`
	FromTime        string                `gorm:"size:10" json:"from_time"`
	ToDate          *time.Time            `gorm:"type:date" json:"to_date"`
	ToTime          string                `gorm:"size:10" json:"to_time"`
	TotalAmount     ledger.Money          `gorm:"not null;default:0" json:"total_amount"`
	Advance         ledger.Money          `gorm:"not null;default:0" json:"advance"`
	Balance         ledger.Money          `gorm:"not null;default:0" json:"balance"`
	Kms             ledger.Distance       `gorm:"not null;default:0" json:"kms"`
	FuelExpense     ledger.Money          `gorm:"not null;default:0" json:"fuel_expense"`
	TollExpense     ledger.Money          `gorm:"not null;default:0" json:"toll_expense"`
	DriverSalary    ledger.Money          `gorm:"not null;default:0" json:"driver_salary"`
	OtherExpense    ledger.Money          `gorm:"not null;default:0" json:"other_expense"`
	NetProfit       ledger.Money          `gorm:"not null;default:0" json:"net_profit"`
	PaymentReceived ledger.Money          `gorm:"not null;default:0" json:"payment_received"`
	CreatedBy       uuid.UUID             `gorm:"type:uuid;index" json:"created_by"`
	CompletedBy     *uuid.UUID            `gorm:"type:uuid" json:"completed_by,omitempty"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	DeletedAt       gorm.DeletedAt        `gorm:"index" json:"-"`
}

// Settlement is what the operator records when an order is completed
type Settlement struct {
	Payment     ledger.Money
	Expenses    ledger.Expenses
	Kms         ledger.Distance
	CompletedBy uuid.UUID
	CompletedAt time.Time
}

// MarshalJSON adds the derived figures shown next to an engagement
func (e Engagement) MarshalJSON() ([]byte, error) {
	type Alias Engagement
	return json.Marshal(&struct {
		Alias
		TotalExpense ledger.Money   `json:"total_expense"`
		Outcome      ledger.Outcome `json:"outcome,omitempty"`
	}{
		Alias:        Alias(e),
		TotalExpense: e.TotalExpense(),
		Outcome:      e.outcome(),
	})
}

// BeforeCreate generates a UUID before creating a new engagement
func (e *Engagement) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// AfterFind recomputes the derived money fields from their inputs
func (e *Engagement) AfterFind(tx *gorm.DB) error {
	e.Recompute()
	return nil
}

// TableName returns the table name for the Engagement model
func (Engagement) TableName() string {
	return "engagements"
}

// IsPending reports whether the engagement is still an open order
func (e *Engagement) IsPending() bool {
	return e.Status == enum.EngagementStatusPending
}

// IsCompleted reports whether the engagement is a completed trip
func (e *Engagement) IsCompleted() bool {
	return e.Status == enum.EngagementStatusCompleted
}

// Expenses returns the four expense heads
func (e *Engagement) Expenses() ledger.Expenses {
	return ledger.Expenses{
		Fuel:         e.FuelExpense,
		Toll:         e.TollExpense,
		DriverSalary: e.DriverSalary,
		Other:        e.OtherExpense,
	}
}

// TotalExpense returns the sum of the expense heads
func (e *Engagement) TotalExpense() ledger.Money {
	return e.Expenses().Total()
}

// Recompute derives balance and net profit from the stored inputs.
// Orders carry no expense figures; trips carry no balance.
func (e *Engagement) Recompute() {
	switch e.Status {
	case enum.EngagementStatusCompleted:
		e.Balance = 0
		e.NetProfit = ledger.ComputeNetProfit(e.TotalAmount, e.TotalExpense())
	default:
		e.Balance = ledger.ComputeBalance(e.TotalAmount, e.Advance)
		e.NetProfit = 0
	}
}

// Complete returns the trip this order becomes once the settlement is
// accepted. The receiver is not modified.
func (e *Engagement) Complete(s Settlement) *Engagement {
	trip := *e
	trip.Status = enum.EngagementStatusCompleted
	trip.Kms = s.Kms
	trip.FuelExpense = s.Expenses.Fuel
	trip.TollExpense = s.Expenses.Toll
	trip.DriverSalary = s.Expenses.DriverSalary
	trip.OtherExpense = s.Expenses.Other
	trip.PaymentReceived = s.Payment

	completedBy := s.CompletedBy
	completedAt := s.CompletedAt
	trip.CompletedBy = &completedBy
	trip.CompletedAt = &completedAt

	trip.Recompute()
	return &trip
}

// MonthKey returns the "Jan 2025" grouping key of the start date
func (e *Engagement) MonthKey() (string, bool) {
	if e.FromDate == nil || e.FromDate.IsZero() {
		return "", false
	}
	return e.FromDate.Format("Jan 2006"), true
}

func (e *Engagement) outcome() ledger.Outcome {
	if !e.IsCompleted() {
		return ""
	}
	return ledger.Classify(e.NetProfit)
}
