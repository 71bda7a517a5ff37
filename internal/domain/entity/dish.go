package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dish represents a menu item staff can put on a bill
type Dish struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    *string        `gorm:"size:100" json:"category,omitempty"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new dish
func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Dish model
func (Dish) TableName() string {
	return "dishes"
}
