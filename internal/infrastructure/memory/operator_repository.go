package memory

import (
	"context"
	"strings"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
)

type operatorRepository struct {
	store *Store
}

func (r *operatorRepository) Create(ctx context.Context, operator *entity.Operator) error {
	s := r.store
	s.operatorMu.Lock()
	defer s.operatorMu.Unlock()

	for _, o := range s.operators {
		if strings.EqualFold(o.Email, operator.Email) {
			return ErrDuplicate
		}
	}
	if operator.ID == uuid.Nil {
		operator.ID = uuid.New()
	}
	now := time.Now()
	operator.CreatedAt = now
	operator.UpdatedAt = now

	stored := *operator
	s.operators[stored.ID] = &stored
	return nil
}

func (r *operatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	s := r.store
	s.operatorMu.RLock()
	defer s.operatorMu.RUnlock()

	o, exists := s.operators[id]
	if !exists {
		return nil, nil
	}
	out := *o
	return &out, nil
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	s := r.store
	s.operatorMu.RLock()
	defer s.operatorMu.RUnlock()

	for _, o := range s.operators {
		if strings.EqualFold(o.Email, email) {
			out := *o
			return &out, nil
		}
	}
	return nil, nil
}

func (r *operatorRepository) Update(ctx context.Context, operator *entity.Operator) error {
	s := r.store
	s.operatorMu.Lock()
	defer s.operatorMu.Unlock()

	if _, exists := s.operators[operator.ID]; !exists {
		return domainRepo.ErrStateChanged
	}
	operator.UpdatedAt = time.Now()
	stored := *operator
	s.operators[stored.ID] = &stored
	return nil
}

func (r *operatorRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	s := r.store
	s.operatorMu.Lock()
	defer s.operatorMu.Unlock()

	o, exists := s.operators[id]
	if !exists {
		return domainRepo.ErrStateChanged
	}
	o.Password = hashedPassword
	o.UpdatedAt = time.Now()
	return nil
}
