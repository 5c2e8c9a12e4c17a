package repository

import (
	"context"
	"errors"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) domainRepo.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) GetByName(ctx context.Context, name string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, "vehicle_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &vehicle, err
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Vehicle{}, "id = ?", id).Error
}

func (r *vehicleRepository) List(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := r.db.WithContext(ctx).Order("vehicle_name ASC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Vehicle{}).Count(&count).Error
	return count, err
}

type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *gorm.DB) domainRepo.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *driverRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	var driver entity.Driver
	err := r.db.WithContext(ctx).First(&driver, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &driver, err
}

func (r *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Driver{}, "id = ?", id).Error
}

func (r *driverRepository) List(ctx context.Context) ([]entity.Driver, error) {
	var drivers []entity.Driver
	err := r.db.WithContext(ctx).Order("driver_name ASC").Find(&drivers).Error
	return drivers, err
}

func (r *driverRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Driver{}).Count(&count).Error
	return count, err
}
