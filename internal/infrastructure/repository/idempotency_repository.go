package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND operator_id = ?", key, operatorID).
		First(&ikey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ikey, err
}

// Create stores the key, taking over a row whose previous use has expired
func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}, {Name: "operator_id"}},
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "idempotency_keys.expires_at < ?", Vars: []interface{}{time.Now()}},
		}},
		DoUpdates: clause.AssignmentColumns([]string{
			"endpoint", "request_hash", "response_code", "response_body", "created_at", "expires_at",
		}),
	}).Create(ikey)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrIdempotencyKeyInUse
	}
	return nil
}

func (r *idempotencyRepository) SaveResponse(ctx context.Context, ikey *entity.IdempotencyKey) error {
	return r.db.WithContext(ctx).
		Model(&entity.IdempotencyKey{}).
		Where("key = ? AND operator_id = ?", ikey.Key, ikey.OperatorID).
		Updates(map[string]interface{}{
			"response_code": ikey.ResponseCode,
			"response_body": ikey.ResponseBody,
		}).Error
}

func (r *idempotencyRepository) Delete(ctx context.Context, key string, operatorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("key = ? AND operator_id = ?", key, operatorID).
		Delete(&entity.IdempotencyKey{}).Error
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{}).Error
}
