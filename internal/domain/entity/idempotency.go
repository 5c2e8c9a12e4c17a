package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores processed requests to prevent duplicate bookings and completions
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key          string    `gorm:"uniqueIndex:idx_idempotency_operator_key;size:255;not null"`
	OperatorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_idempotency_operator_key"`
	Endpoint     string    `gorm:"size:255;not null"` // e.g. "POST /api/v1/orders/:id/complete"
	RequestHash  string    `gorm:"size:64"`           // SHA256 of the request body
	ResponseCode int       `gorm:"not null"`          // 0 while the request is still running
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// IsPending reports whether the request holding the key has not finished yet
func (i *IdempotencyKey) IsPending() bool {
	return i.ResponseCode == 0
}
