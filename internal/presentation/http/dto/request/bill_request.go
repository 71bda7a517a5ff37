package request

import "github.com/google/uuid"

// BillItemRequest is one line of a bill creation or preview request.
// Either dish_id or both name and price must be present.
type BillItemRequest struct {
	DishID   *uuid.UUID `json:"dish_id"`
	Name     string     `json:"name" binding:"omitempty,max=255"`
	Price    *float64   `json:"price" binding:"omitempty,min=0"`
	Quantity int        `json:"quantity" binding:"required,min=1"`
}

// CreateBillRequest represents a bill creation request
type CreateBillRequest struct {
	ServiceType string            `json:"service_type" binding:"required,oneof=DINE-IN TAKE-AWAY"`
	TableNumber *string           `json:"table_number" binding:"required,max=20"`
	WaiterName  *string           `json:"waiter_name" binding:"omitempty,max=100"`
	Items       []BillItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PreviewBillRequest represents a totals preview request
type PreviewBillRequest struct {
	Items []BillItemRequest `json:"items" binding:"required,min=1,dive"`
}

// BillFilterRequest represents bill filter parameters
type BillFilterRequest struct {
	Search      string `form:"search"`
	ServiceType string `form:"service_type" binding:"omitempty,oneof=DINE-IN TAKE-AWAY"`
	DateFrom    string `form:"date_from"`
	DateTo      string `form:"date_to"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
