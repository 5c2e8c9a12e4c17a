package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordResetToken is a single-use reset grant for the operator account.
// Only the SHA-256 of the emailed token is stored.
type PasswordResetToken struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OperatorID uuid.UUID `gorm:"type:uuid;not null;index" json:"operator_id"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	TokenHash  string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at"`
	Used       bool      `gorm:"default:false" json:"used"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new token
func (t *PasswordResetToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PasswordResetToken model
func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// IsExpired checks if the token has expired
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// IsValid checks the token is neither expired nor used
func (t *PasswordResetToken) IsValid() bool {
	return !t.IsExpired() && !t.Used
}
