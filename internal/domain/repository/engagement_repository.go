package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	"github.com/ahamedrahman2000/njv-travels/pkg/pagination"
	"github.com/google/uuid"
)

// ErrStateChanged is returned by conditional writes when the record is gone
// or is no longer in the state the caller expected
var ErrStateChanged = errors.New("record missing or not in expected state")

// EngagementRepository defines the interface for order and trip data operations
type EngagementRepository interface {
	Create(ctx context.Context, engagement *entity.Engagement) error
	// Complete persists a completed engagement over its pending row in a
	// single write. Returns ErrStateChanged if the row is no longer pending.
	Complete(ctx context.Context, trip *entity.Engagement) error
	// Delete removes the engagement only while it is in the given state.
	// Returns ErrStateChanged otherwise.
	Delete(ctx context.Context, id uuid.UUID, status enum.EngagementStatus) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Engagement, error)
	List(ctx context.Context, params *EngagementFilterParams) ([]entity.Engagement, int64, error)
	// ListAll returns every engagement in the given state, optionally
	// restricted to one vehicle
	ListAll(ctx context.Context, status enum.EngagementStatus, vehicle string) ([]entity.Engagement, error)
	Count(ctx context.Context, status enum.EngagementStatus) (int64, error)
}

// EngagementFilterParams contains filtering parameters for engagement queries
type EngagementFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     enum.EngagementStatus
	Search     string     // customer name or vehicle, case-insensitive
	FromDate   *time.Time // exact start day
	Vehicle    string
	SortOrder  string // "asc" or "desc" on created_at
}
