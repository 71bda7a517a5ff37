package billing

import "math"

// Default GST split applied when the restaurant profile carries no rates.
const (
	DefaultCGSTRate = 2.5
	DefaultSGSTRate = 2.5
)

// Line is a single {price, quantity} pair fed into the calculator.
type Line struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Totals is the breakdown produced for a set of lines.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	Total    float64 `json:"total"`
}

// Calculate computes the totals breakdown for the given lines and tax rates.
// Rates are percentages; a rate <= 0 falls back to the 2.5 default. The function
// is pure and cheap enough to run on every draft mutation for live preview.
func Calculate(lines []Line, cgstRate, sgstRate float64) Totals {
	if cgstRate <= 0 {
		cgstRate = DefaultCGSTRate
	}
	if sgstRate <= 0 {
		sgstRate = DefaultSGSTRate
	}

	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}

	cgst := subtotal * cgstRate / 100
	sgst := subtotal * sgstRate / 100

	return Totals{
		Subtotal: subtotal,
		CGST:     cgst,
		SGST:     sgst,
		Total:    subtotal + cgst + sgst,
	}
}

// Round2 rounds a currency amount to 2 decimal places for display and persistence.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy of the totals with every amount rounded to the cent,
// keeping total = subtotal + cgst + sgst exact after rounding.
func (t Totals) Rounded() Totals {
	r := Totals{
		Subtotal: Round2(t.Subtotal),
		CGST:     Round2(t.CGST),
		SGST:     Round2(t.SGST),
	}
	r.Total = Round2(r.Subtotal + r.CGST + r.SGST)
	return r
}
