package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/google/uuid"
)

type vehicleRepository struct {
	store *Store
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	s := r.store
	s.vehicleMu.Lock()
	defer s.vehicleMu.Unlock()

	for _, v := range s.vehicles {
		if strings.EqualFold(v.VehicleName, vehicle.VehicleName) {
			return ErrDuplicate
		}
	}
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	stored := *vehicle
	s.vehicles[stored.ID] = &stored
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	s := r.store
	s.vehicleMu.RLock()
	defer s.vehicleMu.RUnlock()

	v, exists := s.vehicles[id]
	if !exists {
		return nil, nil
	}
	out := *v
	return &out, nil
}

func (r *vehicleRepository) GetByName(ctx context.Context, name string) (*entity.Vehicle, error) {
	s := r.store
	s.vehicleMu.RLock()
	defer s.vehicleMu.RUnlock()

	for _, v := range s.vehicles {
		if strings.EqualFold(v.VehicleName, name) {
			out := *v
			return &out, nil
		}
	}
	return nil, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	s := r.store
	s.vehicleMu.Lock()
	defer s.vehicleMu.Unlock()

	for id, v := range s.vehicles {
		if id != vehicle.ID && strings.EqualFold(v.VehicleName, vehicle.VehicleName) {
			return ErrDuplicate
		}
	}
	vehicle.UpdatedAt = time.Now()
	stored := *vehicle
	s.vehicles[stored.ID] = &stored
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.vehicleMu.Lock()
	defer s.vehicleMu.Unlock()

	delete(s.vehicles, id)
	return nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]entity.Vehicle, error) {
	s := r.store
	s.vehicleMu.RLock()
	defer s.vehicleMu.RUnlock()

	vehicles := make([]entity.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		vehicles = append(vehicles, *v)
	}
	sort.Slice(vehicles, func(i, j int) bool {
		return vehicles[i].VehicleName < vehicles[j].VehicleName
	})
	return vehicles, nil
}

func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	s := r.store
	s.vehicleMu.RLock()
	defer s.vehicleMu.RUnlock()

	return int64(len(s.vehicles)), nil
}

type driverRepository struct {
	store *Store
}

func (r *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	s := r.store
	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now

	stored := *driver
	s.drivers[stored.ID] = &stored
	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	s := r.store
	s.driverMu.RLock()
	defer s.driverMu.RUnlock()

	d, exists := s.drivers[id]
	if !exists {
		return nil, nil
	}
	out := *d
	return &out, nil
}

func (r *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	s := r.store
	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	driver.UpdatedAt = time.Now()
	stored := *driver
	s.drivers[stored.ID] = &stored
	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	delete(s.drivers, id)
	return nil
}

func (r *driverRepository) List(ctx context.Context) ([]entity.Driver, error) {
	s := r.store
	s.driverMu.RLock()
	defer s.driverMu.RUnlock()

	drivers := make([]entity.Driver, 0, len(s.drivers))
	for _, d := range s.drivers {
		drivers = append(drivers, *d)
	}
	sort.Slice(drivers, func(i, j int) bool {
		return drivers[i].DriverName < drivers[j].DriverName
	})
	return drivers, nil
}

func (r *driverRepository) Count(ctx context.Context) (int64, error) {
	s := r.store
	s.driverMu.RLock()
	defer s.driverMu.RUnlock()

	return int64(len(s.drivers)), nil
}
