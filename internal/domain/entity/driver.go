package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is a driver that can be assigned to a booking
type Driver struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	DriverName   string         `gorm:"size:255;not null" json:"driver_name"`
	DriverMobile string         `gorm:"size:50" json:"driver_mobile"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new driver
func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Driver model
func (Driver) TableName() string {
	return "drivers"
}
