package service

import (
	"context"
	"strings"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/ahamedrahman2000/njv-travels/pkg/apperror"
	"github.com/google/uuid"
)

// VehicleService handles vehicle master data
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// CreateVehicle adds a vehicle. Names are unique ignoring case.
func (s *VehicleService) CreateVehicle(ctx context.Context, name string) (*entity.Vehicle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, requiredField("vehicle_name", "Vehicle name")
	}

	existing, err := s.vehicleRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Vehicle already exists")
	}

	vehicle := &entity.Vehicle{VehicleName: name}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, apperror.NewStoreWriteError("save vehicle", err)
	}
	return vehicle, nil
}

// GetVehicle returns a vehicle by ID
func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperror.NewNotFoundError("Vehicle")
	}
	return vehicle, nil
}

// UpdateVehicle renames a vehicle. Past trips keep the name they were booked with.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, name string) (*entity.Vehicle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, requiredField("vehicle_name", "Vehicle name")
	}

	vehicle, err := s.GetVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.vehicleRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != vehicle.ID {
		return nil, apperror.NewConflictError("Vehicle already exists")
	}

	vehicle.VehicleName = name
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, apperror.NewStoreWriteError("save vehicle", err)
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle. Trips referencing it are not touched.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetVehicle(ctx, id); err != nil {
		return err
	}
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return apperror.NewStoreWriteError("delete vehicle", err)
	}
	return nil
}

// ListVehicles returns every vehicle sorted by name
func (s *VehicleService) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// DriverService handles driver master data
type DriverService struct {
	driverRepo repository.DriverRepository
}

// NewDriverService creates a new driver service
func NewDriverService(driverRepo repository.DriverRepository) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

// DriverInput represents the create/update driver input
type DriverInput struct {
	DriverName   string
	DriverMobile string
}

// CreateDriver adds a driver
func (s *DriverService) CreateDriver(ctx context.Context, input *DriverInput) (*entity.Driver, error) {
	name := strings.TrimSpace(input.DriverName)
	if name == "" {
		return nil, requiredField("driver_name", "Driver name")
	}

	driver := &entity.Driver{
		DriverName:   name,
		DriverMobile: strings.TrimSpace(input.DriverMobile),
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, apperror.NewStoreWriteError("save driver", err)
	}
	return driver, nil
}

// GetDriver returns a driver by ID
func (s *DriverService) GetDriver(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, apperror.NewNotFoundError("Driver")
	}
	return driver, nil
}

// UpdateDriver updates a driver's name and mobile
func (s *DriverService) UpdateDriver(ctx context.Context, id uuid.UUID, input *DriverInput) (*entity.Driver, error) {
	driver, err := s.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.DriverName); name != "" {
		driver.DriverName = name
	}
	driver.DriverMobile = strings.TrimSpace(input.DriverMobile)

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, apperror.NewStoreWriteError("save driver", err)
	}
	return driver, nil
}

// DeleteDriver removes a driver
func (s *DriverService) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetDriver(ctx, id); err != nil {
		return err
	}
	if err := s.driverRepo.Delete(ctx, id); err != nil {
		return apperror.NewStoreWriteError("delete driver", err)
	}
	return nil
}

// ListDrivers returns every driver sorted by name
func (s *DriverService) ListDrivers(ctx context.Context) ([]entity.Driver, error) {
	return s.driverRepo.List(ctx)
}

func requiredField(field, label string) error {
	return apperror.NewValidationError([]apperror.FieldError{
		{Field: field, Message: label + " is required"},
	})
}
