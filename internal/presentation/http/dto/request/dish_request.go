package request

// CreateDishRequest represents a dish creation request
type CreateDishRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// UpdateDishRequest represents a dish update request
type UpdateDishRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// DishFilterRequest represents dish filter parameters
type DishFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Cursor    string `form:"cursor"` // For cursor-based pagination
	Limit     int    `form:"limit"`  // For cursor-based pagination
}
