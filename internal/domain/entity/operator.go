package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operator is the person running the business. The login credentials and
// the business profile live on the same record.
type Operator struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email         string         `gorm:"size:255;unique;not null" json:"email"`
	Password      string         `gorm:"size:255;not null" json:"-"`
	FullName      string         `gorm:"size:255" json:"full_name"`
	Mobile        *string        `gorm:"size:50" json:"mobile,omitempty"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	Aadhaar       *string        `gorm:"size:20" json:"aadhaar,omitempty"`
	PAN           *string        `gorm:"size:20;column:pan" json:"pan,omitempty"`
	LicenseNumber *string        `gorm:"size:50" json:"license_number,omitempty"`
	ProfilePhoto  *string        `gorm:"size:500" json:"profile_photo,omitempty"`
	LastLoginAt   *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new operator
func (o *Operator) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Operator model
func (Operator) TableName() string {
	return "operators"
}
