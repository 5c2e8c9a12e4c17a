package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) domainRepo.EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) Create(ctx context.Context, engagement *entity.Engagement) error {
	return r.db.WithContext(ctx).Create(engagement).Error
}

// Complete overwrites the pending row with the completed figures.
// Uses: UPDATE engagements SET ... WHERE id = ? AND status = pending
func (r *engagementRepository) Complete(ctx context.Context, trip *entity.Engagement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Engagement{}).
			Where("id = ? AND status = ?", trip.ID, enum.EngagementStatusPending).
			Updates(map[string]interface{}{
				"status":           enum.EngagementStatusCompleted,
				"balance":          trip.Balance,
				"kms":              trip.Kms,
				"fuel_expense":     trip.FuelExpense,
				"toll_expense":     trip.TollExpense,
				"driver_salary":    trip.DriverSalary,
				"other_expense":    trip.OtherExpense,
				"net_profit":       trip.NetProfit,
				"payment_received": trip.PaymentReceived,
				"completed_by":     trip.CompletedBy,
				"completed_at":     trip.CompletedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainRepo.ErrStateChanged
		}
		return nil
	})
}

func (r *engagementRepository) Delete(ctx context.Context, id uuid.UUID, status enum.EngagementStatus) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, status).
		Delete(&entity.Engagement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrStateChanged
	}
	return nil
}

func (r *engagementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Engagement, error) {
	var engagement entity.Engagement
	err := r.db.WithContext(ctx).First(&engagement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &engagement, err
}

func (r *engagementRepository) List(ctx context.Context, params *domainRepo.EngagementFilterParams) ([]entity.Engagement, int64, error) {
	var engagements []entity.Engagement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Engagement{}).
		Where("status = ?", params.Status)

	if search := strings.TrimSpace(params.Search); search != "" {
		query = query.Where("customer_name ILIKE ? OR vehicle ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if params.FromDate != nil {
		day := params.FromDate.Truncate(24 * time.Hour)
		query = query.Where("from_date >= ? AND from_date < ?", day, day.AddDate(0, 0, 1))
	}

	if params.Vehicle != "" {
		query = query.Where("vehicle = ?", params.Vehicle)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortOrder := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at " + sortOrder).
		Find(&engagements).Error

	return engagements, total, err
}

func (r *engagementRepository) ListAll(ctx context.Context, status enum.EngagementStatus, vehicle string) ([]entity.Engagement, error) {
	var engagements []entity.Engagement

	query := r.db.WithContext(ctx).Where("status = ?", status)
	if vehicle != "" {
		query = query.Where("vehicle = ?", vehicle)
	}

	err := query.Order("from_date ASC, created_at ASC").Find(&engagements).Error
	return engagements, err
}

func (r *engagementRepository) Count(ctx context.Context, status enum.EngagementStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Engagement{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
