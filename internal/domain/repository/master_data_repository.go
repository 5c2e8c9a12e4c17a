package repository

import (
	"context"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/google/uuid"
)

// VehicleRepository defines the interface for vehicle data operations
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	GetByName(ctx context.Context, name string) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Vehicle, error)
	Count(ctx context.Context) (int64, error)
}

// DriverRepository defines the interface for driver data operations
type DriverRepository interface {
	Create(ctx context.Context, driver *entity.Driver) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
	Update(ctx context.Context, driver *entity.Driver) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Driver, error)
	Count(ctx context.Context) (int64, error)
}
