package request

// SaveRestaurantRequest represents a restaurant profile save request.
// POST and PUT both accept this shape; the profile is a singleton.
type SaveRestaurantRequest struct {
	Name       string   `json:"name" binding:"required,min=1,max=255"`
	Address    *string  `json:"address"`
	Phone      *string  `json:"phone" binding:"omitempty,max=50"`
	Logo       *string  `json:"logo"`
	GSTNumber  *string  `json:"gst_number" binding:"omitempty,max=50"`
	SACCode    *string  `json:"sac_code" binding:"omitempty,max=50"`
	CGSTRate   *float64 `json:"cgst_rate" binding:"omitempty,min=0,max=100"`
	SGSTRate   *float64 `json:"sgst_rate" binding:"omitempty,min=0,max=100"`
	BillFooter *string  `json:"bill_footer"`
}
