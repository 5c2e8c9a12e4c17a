package repository

import (
	"context"
	"errors"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/google/uuid"
)

// ErrIdempotencyKeyInUse is returned by Create when a live key already exists
// for the operator
var ErrIdempotencyKeyInUse = errors.New("idempotency key already in use")

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and operator ID
	GetByKey(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error)
	// Create reserves the key. Returns ErrIdempotencyKeyInUse if a live key
	// already exists for the operator.
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	// SaveResponse records the response for a reserved key
	SaveResponse(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Delete releases a reserved key so the request can be retried
	Delete(ctx context.Context, key string, operatorID uuid.UUID) error
	// DeleteExpired removes expired idempotency keys
	DeleteExpired(ctx context.Context) error
}
