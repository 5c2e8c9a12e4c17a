package repository

import (
	"context"
	"errors"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository creates a new operator repository
func NewOperatorRepository(db *gorm.DB) domainRepo.OperatorRepository {
	return &operatorRepository{db: db}
}

func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	return r.db.WithContext(ctx).Create(operator).Error
}

func (r *operatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &operator, err
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	var operator entity.Operator
	err := r.db.WithContext(ctx).First(&operator, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &operator, err
}

func (r *operatorRepository) Update(ctx context.Context, operator *entity.Operator) error {
	return r.db.WithContext(ctx).Save(operator).Error
}

func (r *operatorRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	return r.db.WithContext(ctx).Model(&entity.Operator{}).
		Where("id = ?", id).
		Update("password", hashedPassword).Error
}
