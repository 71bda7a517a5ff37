package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill is a finalized sale. Bills are append-only: once created they
// are never updated or deleted, so there is no DeletedAt column.
type Bill struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Number      string           `gorm:"size:50;not null;uniqueIndex" json:"number"`
	Date        string           `gorm:"size:20;not null" json:"date"`
	Time        string           `gorm:"size:20;not null" json:"time"`
	ServiceType enum.ServiceType `gorm:"size:20;not null" json:"service_type"`
	TableNumber *string          `gorm:"size:20" json:"table_number,omitempty"`
	WaiterName  *string          `gorm:"size:100" json:"waiter_name,omitempty"`
	Items       []BillItem       `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal    float64          `gorm:"not null" json:"subtotal"`
	CGSTRate    float64          `gorm:"not null" json:"cgst_rate"`
	SGSTRate    float64          `gorm:"not null" json:"sgst_rate"`
	CGSTAmount  float64          `gorm:"not null" json:"cgst_amount"`
	SGSTAmount  float64          `gorm:"not null" json:"sgst_amount"`
	Total       float64          `gorm:"not null" json:"total"`
	CreatedAt   time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one line of a bill. Name and price are copied from the
// dish at sale time so later menu edits leave past bills intact.
type BillItem struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	BillID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"bill_id"`
	DishID   *uuid.UUID `gorm:"type:uuid" json:"dish_id,omitempty"`
	DishName string     `gorm:"size:255;not null" json:"dish_name"`
	Price    float64    `gorm:"not null" json:"price"`
	Quantity int        `gorm:"not null" json:"quantity"`
	Position int        `gorm:"not null" json:"position"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
