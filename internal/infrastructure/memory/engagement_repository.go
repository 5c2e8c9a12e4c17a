package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/ahamedrahman2000/njv-travels/internal/domain/enum"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
)

type engagementRepository struct {
	store *Store
}

func (r *engagementRepository) Create(ctx context.Context, engagement *entity.Engagement) error {
	s := r.store
	s.engagementMu.Lock()
	defer s.engagementMu.Unlock()

	if engagement.ID == uuid.Nil {
		engagement.ID = uuid.New()
	}
	if _, exists := s.engagements[engagement.ID]; exists {
		return ErrDuplicate
	}
	for _, e := range s.engagements {
		if e.ReferenceNo == engagement.ReferenceNo {
			return ErrDuplicate
		}
	}

	now := time.Now()
	if engagement.CreatedAt.IsZero() {
		engagement.CreatedAt = now
	}
	engagement.UpdatedAt = now

	stored := *engagement
	s.engagements[stored.ID] = &stored
	s.seq++
	s.sequence[stored.ID] = s.seq
	return nil
}

func (r *engagementRepository) Complete(ctx context.Context, trip *entity.Engagement) error {
	s := r.store
	s.engagementMu.Lock()
	defer s.engagementMu.Unlock()

	current, exists := s.engagements[trip.ID]
	if !exists || !current.IsPending() {
		return domainRepo.ErrStateChanged
	}

	stored := *trip
	stored.Status = enum.EngagementStatusCompleted
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = time.Now()
	s.engagements[stored.ID] = &stored
	return nil
}

func (r *engagementRepository) Delete(ctx context.Context, id uuid.UUID, status enum.EngagementStatus) error {
	s := r.store
	s.engagementMu.Lock()
	defer s.engagementMu.Unlock()

	current, exists := s.engagements[id]
	if !exists || current.Status != status {
		return domainRepo.ErrStateChanged
	}
	delete(s.engagements, id)
	delete(s.sequence, id)
	return nil
}

func (r *engagementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Engagement, error) {
	s := r.store
	s.engagementMu.RLock()
	defer s.engagementMu.RUnlock()

	e, exists := s.engagements[id]
	if !exists {
		return nil, nil
	}
	return loaded(e), nil
}

func (r *engagementRepository) List(ctx context.Context, params *domainRepo.EngagementFilterParams) ([]entity.Engagement, int64, error) {
	s := r.store
	s.engagementMu.RLock()
	defer s.engagementMu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(params.Search))
	matched := make([]*entity.Engagement, 0)
	for _, e := range s.engagements {
		if e.Status != params.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.CustomerName), search) &&
			!strings.Contains(strings.ToLower(e.Vehicle), search) {
			continue
		}
		if params.FromDate != nil && (e.FromDate == nil || !sameDay(*e.FromDate, *params.FromDate)) {
			continue
		}
		if params.Vehicle != "" && e.Vehicle != params.Vehicle {
			continue
		}
		matched = append(matched, e)
	}

	ascending := strings.EqualFold(params.SortOrder, "asc")
	sort.Slice(matched, func(i, j int) bool {
		if ascending {
			return s.before(matched[i], matched[j])
		}
		return s.before(matched[j], matched[i])
	})

	params.Pagination.Validate()
	start, end := params.Pagination.Window(len(matched))

	result := make([]entity.Engagement, 0, end-start)
	for _, e := range matched[start:end] {
		result = append(result, *loaded(e))
	}
	return result, int64(len(matched)), nil
}

func (r *engagementRepository) ListAll(ctx context.Context, status enum.EngagementStatus, vehicle string) ([]entity.Engagement, error) {
	s := r.store
	s.engagementMu.RLock()
	defer s.engagementMu.RUnlock()

	matched := make([]*entity.Engagement, 0)
	for _, e := range s.engagements {
		if e.Status != status {
			continue
		}
		if vehicle != "" && e.Vehicle != vehicle {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool {
		return s.before(matched[i], matched[j])
	})

	result := make([]entity.Engagement, 0, len(matched))
	for _, e := range matched {
		result = append(result, *loaded(e))
	}
	return result, nil
}

func (r *engagementRepository) Count(ctx context.Context, status enum.EngagementStatus) (int64, error) {
	s := r.store
	s.engagementMu.RLock()
	defer s.engagementMu.RUnlock()

	var count int64
	for _, e := range s.engagements {
		if e.Status == status {
			count++
		}
	}
	return count, nil
}

// before orders by creation time, then by insertion
func (s *Store) before(a, b *entity.Engagement) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return s.sequence[a.ID] < s.sequence[b.ID]
}

// loaded returns a detached copy with derived fields recomputed, as the
// gorm AfterFind hook does for the SQL store
func loaded(e *entity.Engagement) *entity.Engagement {
	out := *e
	out.Recompute()
	return &out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
