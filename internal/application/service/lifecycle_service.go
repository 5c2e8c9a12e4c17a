package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/ledger"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/pkg/apperror"
	"github.com/ahamedrahman2000/njv-travels/pkg/pagination"
	"github.com/ahamedrahman2000/njv-travels/pkg/utils"
	"github.com/google/uuid"
)

const referencePrefix = "NJV"

// LifecycleService moves engagements from booking to order to trip
type LifecycleService struct {
	engagementRepo repository.EngagementRepository
	now            func() time.Time
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(engagementRepo repository.EngagementRepository) *LifecycleService {
	return &LifecycleService{
		engagementRepo: engagementRepo,
		now:            time.Now,
	}
}

// CreateEngagementInput is a booking as entered by the operator
type CreateEngagementInput struct {
	OperatorID      uuid.UUID
	CustomerName    string
	CustomerPhone   string
	Vehicle         string
	Driver          string
	FromDestination string
	ToDestination   string
	FromDate        string
	FromTime        string
	ToDate          string
	ToTime          string
	TotalAmount     string
	Advance         string
}

// CreateEngagementOutput carries the stored record and the view it belongs to
type CreateEngagementOutput struct {
	Engagement *entity.Engagement
	Route      string
}

// CreateEngagement stores a booking. A booking paid in full becomes a trip
// straight away; anything still owed becomes a pending order.
func (s *LifecycleService) CreateEngagement(ctx context.Context, input *CreateEngagementInput) (*CreateEngagementOutput, error) {
	var errs fieldErrors

	engagement := &entity.Engagement{
		CustomerName:    errs.text("customer_name", "Customer name", input.CustomerName),
		CustomerPhone:   errs.text("customer_phone", "Customer phone", input.CustomerPhone),
		Vehicle:         errs.text("vehicle", "Vehicle", input.Vehicle),
		Driver:          errs.text("driver", "Driver", input.Driver),
		FromDestination: errs.text("from_destination", "From destination", input.FromDestination),
		ToDestination:   errs.text("to_destination", "To destination", input.ToDestination),
		FromDate:        errs.date("from_date", "From date", input.FromDate),
		FromTime:        errs.clock("from_time", "From time", input.FromTime),
		ToDate:          errs.date("to_date", "To date", input.ToDate),
		ToTime:          errs.clock("to_time", "To time", input.ToTime),
		TotalAmount:     errs.money("total_amount", "Total amount", input.TotalAmount),
		Advance:         errs.nonNegativeMoney("advance", "Advance", input.Advance),
		CreatedBy:       input.OperatorID,
	}

	if engagement.FromDate != nil && engagement.ToDate != nil && engagement.ToDate.Before(*engagement.FromDate) {
		errs.add("to_date", "To date must not be before from date")
	}
	if engagement.TotalAmount <= 0 && !hasField(errs, "total_amount") {
		errs.add("total_amount", "Total amount must be greater than zero")
	}

	balance := ledger.ComputeBalance(engagement.TotalAmount, engagement.Advance)
	if balance < 0 && !hasField(errs, "total_amount") && !hasField(errs, "advance") {
		errs.add("advance", "Advance must not exceed the total amount")
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	engagement.ID = uuid.New()
	engagement.ReferenceNo = utils.GenerateReferenceNo(referencePrefix)
	if balance == 0 {
		now := s.now()
		completedBy := input.OperatorID
		engagement.Status = enum.EngagementStatusCompleted
		engagement.PaymentReceived = engagement.TotalAmount
		engagement.CompletedBy = &completedBy
		engagement.CompletedAt = &now
	} else {
		engagement.Status = enum.EngagementStatusPending
	}
	engagement.Recompute()

	if err := s.engagementRepo.Create(ctx, engagement); err != nil {
		return nil, apperror.NewStoreWriteError("save "+engagement.Status.Label(), err)
	}

	log.Printf("Engagement %s created as %s by operator %s (total %s, balance %s)",
		engagement.ReferenceNo, engagement.Status.Label(), input.OperatorID, engagement.TotalAmount, engagement.Balance)

	return &CreateEngagementOutput{
		Engagement: engagement,
		Route:      engagement.Status.Route(),
	}, nil
}

// CompleteOrderInput is the settlement panel of a pending order
type CompleteOrderInput struct {
	OperatorID   uuid.UUID
	OrderID      uuid.UUID
	Payment      string
	FuelExpense  string
	TollExpense  string
	DriverSalary string
	OtherExpense string
	Kms          string
}

// CompleteOrder settles a pending order and turns it into a trip. The
// payment must equal the outstanding balance exactly. The order row is
// replaced in one conditional write; on any failure it is left as it was.
func (s *LifecycleService) CompleteOrder(ctx context.Context, input *CompleteOrderInput) (*entity.Engagement, error) {
	order, err := s.engagementRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil || !order.IsPending() {
		return nil, apperror.NewNotFoundError("Order")
	}

	var errs fieldErrors
	settlement := entity.Settlement{
		Payment: errs.money("payment", "Payment", input.Payment),
		Expenses: ledger.Expenses{
			Fuel:         errs.nonNegativeMoney("fuel_expense", "Fuel expense", input.FuelExpense),
			Toll:         errs.nonNegativeMoney("toll_expense", "Toll expense", input.TollExpense),
			DriverSalary: errs.nonNegativeMoney("driver_salary", "Driver salary", input.DriverSalary),
			Other:        errs.nonNegativeMoney("other_expense", "Other expense", input.OtherExpense),
		},
		Kms:         errs.distance("kms", "Kms", input.Kms),
		CompletedBy: input.OperatorID,
		CompletedAt: s.now(),
	}
	if err := errs.err(); err != nil {
		return nil, err
	}

	if settlement.Payment != order.Balance {
		return nil, apperror.NewPaymentMismatchError(order.Balance.String(), settlement.Payment.String())
	}

	trip := order.Complete(settlement)
	if err := s.engagementRepo.Complete(ctx, trip); err != nil {
		if errors.Is(err, repository.ErrStateChanged) {
			return nil, apperror.NewNotFoundError("Order")
		}
		log.Printf("Failed to complete order %s: %v", order.ReferenceNo, err)
		return nil, apperror.NewStoreWriteError("complete order", err)
	}

	log.Printf("Order %s completed by operator %s (net profit %s)",
		trip.ReferenceNo, input.OperatorID, trip.NetProfit)

	return trip, nil
}

// DeleteOrder removes a pending order
func (s *LifecycleService) DeleteOrder(ctx context.Context, operatorID, id uuid.UUID) error {
	return s.delete(ctx, operatorID, id, enum.EngagementStatusPending)
}

// DeleteTrip removes a completed trip
func (s *LifecycleService) DeleteTrip(ctx context.Context, operatorID, id uuid.UUID) error {
	return s.delete(ctx, operatorID, id, enum.EngagementStatusCompleted)
}

func (s *LifecycleService) delete(ctx context.Context, operatorID, id uuid.UUID, status enum.EngagementStatus) error {
	if err := s.engagementRepo.Delete(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrStateChanged) {
			return apperror.NewNotFoundError(status.Label())
		}
		return apperror.NewStoreWriteError("delete "+status.Label(), err)
	}
	log.Printf("%s %s deleted by operator %s", status.Label(), id, operatorID)
	return nil
}

// GetOrder returns a pending order by id
func (s *LifecycleService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Engagement, error) {
	return s.get(ctx, id, enum.EngagementStatusPending)
}

// GetTrip returns a completed trip by id
func (s *LifecycleService) GetTrip(ctx context.Context, id uuid.UUID) (*entity.Engagement, error) {
	return s.get(ctx, id, enum.EngagementStatusCompleted)
}

func (s *LifecycleService) get(ctx context.Context, id uuid.UUID, status enum.EngagementStatus) (*entity.Engagement, error) {
	engagement, err := s.engagementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if engagement == nil || engagement.Status != status {
		return nil, apperror.NewNotFoundError(status.Label())
	}
	return engagement, nil
}

// ListOrders returns pending orders, oldest first
func (s *LifecycleService) ListOrders(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Engagement], error) {
	return s.list(ctx, &repository.EngagementFilterParams{
		Pagination: params,
		Status:     enum.EngagementStatusPending,
		SortOrder:  "asc",
	})
}

// ListTripsInput filters the completed trip list
type ListTripsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	FromDate   *time.Time
}

// ListTrips returns completed trips, newest first
func (s *LifecycleService) ListTrips(ctx context.Context, input *ListTripsInput) (*pagination.PaginatedResult[entity.Engagement], error) {
	return s.list(ctx, &repository.EngagementFilterParams{
		Pagination: input.Pagination,
		Status:     enum.EngagementStatusCompleted,
		Search:     input.Search,
		FromDate:   input.FromDate,
		SortOrder:  "desc",
	})
}

func (s *LifecycleService) list(ctx context.Context, params *repository.EngagementFilterParams) (*pagination.PaginatedResult[entity.Engagement], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	items, total, err := s.engagementRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// PreviewBookingInput holds the amounts typed on the booking form
type PreviewBookingInput struct {
	TotalAmount string
	Advance     string
}

// PreviewBooking computes the balance shown while a booking is being
// typed. Unparsable amounts count as zero; nothing is stored.
func (s *LifecycleService) PreviewBooking(input *PreviewBookingInput) ledger.Summary {
	total := ledger.AmountOrZero(input.TotalAmount)
	advance := ledger.AmountOrZero(input.Advance)
	summary := ledger.Preview(total, advance, ledger.Expenses{})
	summary.NetProfit = 0
	summary.Outcome = ""
	return summary
}

// PreviewCompletionInput holds the expense panel of an order
type PreviewCompletionInput struct {
	OrderID      uuid.UUID
	FuelExpense  string
	TollExpense  string
	DriverSalary string
	OtherExpense string
}

// PreviewCompletion shows the expense total and profit an order would
// close with
func (s *LifecycleService) PreviewCompletion(ctx context.Context, input *PreviewCompletionInput) (*ledger.Summary, error) {
	order, err := s.GetOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	summary := ledger.Preview(order.TotalAmount, order.Advance, ledger.Expenses{
		Fuel:         ledger.AmountOrZero(input.FuelExpense),
		Toll:         ledger.AmountOrZero(input.TollExpense),
		DriverSalary: ledger.AmountOrZero(input.DriverSalary),
		Other:        ledger.AmountOrZero(input.OtherExpense),
	})
	return &summary, nil
}

func hasField(errs fieldErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
