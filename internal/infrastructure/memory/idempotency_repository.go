package memory

import (
	"context"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
)

type idempotencyRepository struct {
	store *Store
}

func idempotencyIndex(key string, operatorID uuid.UUID) string {
	return operatorID.String() + "|" + key
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error) {
	s := r.store
	s.idempotencyMu.RLock()
	defer s.idempotencyMu.RUnlock()

	ikey, exists := s.idempotency[idempotencyIndex(key, operatorID)]
	if !exists {
		return nil, nil
	}
	out := *ikey
	return &out, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	s := r.store
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()

	index := idempotencyIndex(ikey.Key, ikey.OperatorID)
	if existing, exists := s.idempotency[index]; exists && !existing.IsExpired() {
		return domainRepo.ErrIdempotencyKeyInUse
	}
	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	ikey.CreatedAt = time.Now()

	stored := *ikey
	s.idempotency[index] = &stored
	return nil
}

func (r *idempotencyRepository) SaveResponse(ctx context.Context, ikey *entity.IdempotencyKey) error {
	s := r.store
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()

	existing, exists := s.idempotency[idempotencyIndex(ikey.Key, ikey.OperatorID)]
	if !exists {
		return domainRepo.ErrStateChanged
	}
	existing.ResponseCode = ikey.ResponseCode
	existing.ResponseBody = ikey.ResponseBody
	return nil
}

func (r *idempotencyRepository) Delete(ctx context.Context, key string, operatorID uuid.UUID) error {
	s := r.store
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()

	delete(s.idempotency, idempotencyIndex(key, operatorID))
	return nil
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	s := r.store
	s.idempotencyMu.Lock()
	defer s.idempotencyMu.Unlock()

	for index, ikey := range s.idempotency {
		if ikey.IsExpired() {
			delete(s.idempotency, index)
		}
	}
	return nil
}
