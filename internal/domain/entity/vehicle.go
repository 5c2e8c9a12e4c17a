package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is a fleet entry offered on the booking form
type Vehicle struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VehicleName string         `gorm:"size:255;not null;uniqueIndex" json:"vehicle_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vehicle
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
