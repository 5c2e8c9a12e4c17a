package memory

import (
	"context"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	domainRepo "github.com/ahamedrahman2000/njv-travels/internal/domain/repository"
	"github.com/google/uuid"
)

type passwordResetTokenRepository struct {
	store *Store
}

func (r *passwordResetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	s := r.store
	s.resetTokenMu.Lock()
	defer s.resetTokenMu.Unlock()

	for _, t := range s.resetTokens {
		if t.TokenHash == token.TokenHash {
			return ErrDuplicate
		}
	}
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()

	stored := *token
	s.resetTokens[stored.ID] = &stored
	return nil
}

func (r *passwordResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	s := r.store
	s.resetTokenMu.RLock()
	defer s.resetTokenMu.RUnlock()

	for _, t := range s.resetTokens {
		if t.TokenHash == tokenHash {
			out := *t
			return &out, nil
		}
	}
	return nil, nil
}

func (r *passwordResetTokenRepository) MarkAsUsed(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.resetTokenMu.Lock()
	defer s.resetTokenMu.Unlock()

	t, exists := s.resetTokens[id]
	if !exists || t.Used {
		return domainRepo.ErrStateChanged
	}
	t.Used = true
	return nil
}

func (r *passwordResetTokenRepository) DeleteByOperator(ctx context.Context, operatorID uuid.UUID) error {
	s := r.store
	s.resetTokenMu.Lock()
	defer s.resetTokenMu.Unlock()

	for id, t := range s.resetTokens {
		if t.OperatorID == operatorID {
			delete(s.resetTokens, id)
		}
	}
	return nil
}

func (r *passwordResetTokenRepository) DeleteExpired(ctx context.Context) error {
	s := r.store
	s.resetTokenMu.Lock()
	defer s.resetTokenMu.Unlock()

	for id, t := range s.resetTokens {
		if t.IsExpired() {
			delete(s.resetTokens, id)
		}
	}
	return nil
}
