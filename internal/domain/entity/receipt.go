package entity

// ReceiptHeader holds the restaurant header printed at the top of a receipt.
type ReceiptHeader struct {
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	GSTNumber      string `json:"gst_number,omitempty"`
	SACCode        string `json:"sac_code,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity — it is composed from bill data at print time.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	BillNumber  string        `json:"bill_number"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	ServiceType string        `json:"service_type"`
	TableNumber string        `json:"table_number,omitempty"`
	WaiterName  string        `json:"waiter_name,omitempty"`
	Items       []ReceiptItem `json:"items"`
	SubTotal    float64       `json:"sub_total"`
	CGSTRate    float64       `json:"cgst_rate"`
	SGSTRate    float64       `json:"sgst_rate"`
	CGST        float64       `json:"cgst"`
	SGST        float64       `json:"sgst"`
	Total       float64       `json:"total"`
	Footer      string        `json:"footer,omitempty"`
}
