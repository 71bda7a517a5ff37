package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantProfile holds the single restaurant identity printed on
// every receipt. The table never holds more than one row; saves upsert
// into the existing record.
type RestaurantProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Address    *string   `gorm:"type:text" json:"address,omitempty"`
	Phone      *string   `gorm:"size:50" json:"phone,omitempty"`
	Logo       *string   `gorm:"type:text" json:"logo,omitempty"`
	GSTNumber  *string   `gorm:"size:50" json:"gst_number,omitempty"`
	SACCode    *string   `gorm:"size:50" json:"sac_code,omitempty"`
	CGSTRate   float64   `gorm:"default:2.5" json:"cgst_rate"`
	SGSTRate   float64   `gorm:"default:2.5" json:"sgst_rate"`
	BillFooter *string   `gorm:"type:text" json:"bill_footer,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the profile
func (r *RestaurantProfile) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the RestaurantProfile model
func (RestaurantProfile) TableName() string {
	return "restaurant_profiles"
}
