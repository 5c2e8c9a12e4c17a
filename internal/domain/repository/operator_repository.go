package repository

import (
	"context"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/entity"
	"github.com/google/uuid"
)

// OperatorRepository defines the interface for operator account and profile operations
type OperatorRepository interface {
	Create(ctx context.Context, operator *entity.Operator) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
	GetByEmail(ctx context.Context, email string) (*entity.Operator, error)
	Update(ctx context.Context, operator *entity.Operator) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
}

// PasswordResetTokenRepository defines the interface for password reset token operations
type PasswordResetTokenRepository interface {
	Create(ctx context.Context, token *entity.PasswordResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)
	// MarkAsUsed flips the token to used. Returns ErrStateChanged if it was
	// already used, so a token can be redeemed once.
	MarkAsUsed(ctx context.Context, id uuid.UUID) error
	DeleteByOperator(ctx context.Context, operatorID uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}
