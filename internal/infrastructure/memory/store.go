package memory

import (
	"errors"
	"sync"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
)

// ErrDuplicate mirrors a unique constraint violation in the SQL store
var ErrDuplicate = errors.New("duplicate key value violates unique constraint")

// Store holds all records in memory. It backs local runs with
// STORAGE_DRIVER=memory and the service tests.
type Store struct {
	engagements map[uuid.UUID]*entity.Engagement
	vehicles    map[uuid.UUID]*entity.Vehicle
	drivers     map[uuid.UUID]*entity.Driver
	operators   map[uuid.UUID]*entity.Operator
	idempotency map[string]*entity.IdempotencyKey
	resetTokens map[uuid.UUID]*entity.PasswordResetToken

	engagementMu  sync.RWMutex
	vehicleMu     sync.RWMutex
	driverMu      sync.RWMutex
	operatorMu    sync.RWMutex
	idempotencyMu sync.RWMutex
	resetTokenMu  sync.RWMutex

	// insertion sequence keeps listing order stable when timestamps collide
	seq      int64
	sequence map[uuid.UUID]int64
}

// NewStore creates a new in-memory store
func NewStore() *Store {
	return &Store{
		engagements: make(map[uuid.UUID]*entity.Engagement),
		vehicles:    make(map[uuid.UUID]*entity.Vehicle),
		drivers:     make(map[uuid.UUID]*entity.Driver),
		operators:   make(map[uuid.UUID]*entity.Operator),
		idempotency: make(map[string]*entity.IdempotencyKey),
		resetTokens: make(map[uuid.UUID]*entity.PasswordResetToken),
		sequence:    make(map[uuid.UUID]int64),
	}
}

// Engagements returns the order and trip repository
func (s *Store) Engagements() domainRepo.EngagementRepository {
	return &engagementRepository{store: s}
}

// Vehicles returns the vehicle repository
func (s *Store) Vehicles() domainRepo.VehicleRepository {
	return &vehicleRepository{store: s}
}

// Drivers returns the driver repository
func (s *Store) Drivers() domainRepo.DriverRepository {
	return &driverRepository{store: s}
}

// Operators returns the operator repository
func (s *Store) Operators() domainRepo.OperatorRepository {
	return &operatorRepository{store: s}
}

// Idempotency returns the idempotency key repository
func (s *Store) Idempotency() domainRepo.IdempotencyRepository {
	return &idempotencyRepository{store: s}
}

// PasswordResetTokens returns the password reset token repository
func (s *Store) PasswordResetTokens() domainRepo.PasswordResetTokenRepository {
	return &passwordResetTokenRepository{store: s}
}
