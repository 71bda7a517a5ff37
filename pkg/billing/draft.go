package billing

// LineItem is a dish entry on an in-progress bill. Name and price are snapshots
// taken when the dish is first added; later catalog edits never touch them.
type LineItem struct {
	DishID   string  `json:"dish_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Draft holds the in-progress bill assembly: an ordered list of line items
// keyed by dish ID. A Draft is not safe for concurrent use; each caller owns
// its own instance.
type Draft struct {
	items []LineItem
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Add records one unit of the given dish. Adding a dish that is already on the
// draft increments its quantity instead of appending a duplicate line.
func (d *Draft) Add(dishID, name string, price float64) {
	d.AddUnits(dishID, name, price, 1)
}

// AddUnits records qty units of the given dish at once, folding into the
// existing line the same way Add does. Quantities below one are ignored.
func (d *Draft) AddUnits(dishID, name string, price float64, qty int) {
	if qty < 1 {
		return
	}
	for i := range d.items {
		if d.items[i].DishID == dishID {
			d.items[i].Quantity += qty
			return
		}
	}
	d.items = append(d.items, LineItem{
		DishID:   dishID,
		Name:     name,
		Price:    price,
		Quantity: qty,
	})
}

// SetQuantity sets the quantity for a line item. A quantity of zero or below
// removes the line entirely. Setting a quantity on an absent dish is a no-op.
func (d *Draft) SetQuantity(dishID string, quantity int) {
	if quantity <= 0 {
		d.Remove(dishID)
		return
	}
	for i := range d.items {
		if d.items[i].DishID == dishID {
			d.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line item for the given dish. Removing an absent dish is
// a no-op, so the operation is idempotent.
func (d *Draft) Remove(dishID string) {
	for i := range d.items {
		if d.items[i].DishID == dishID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the draft's line items in insertion order.
func (d *Draft) Items() []LineItem {
	out := make([]LineItem, len(d.items))
	copy(out, d.items)
	return out
}

// Len returns the number of line items on the draft.
func (d *Draft) Len() int {
	return len(d.items)
}

// Totals runs the calculator over the current line items.
func (d *Draft) Totals(cgstRate, sgstRate float64) Totals {
	lines := make([]Line, len(d.items))
	for i, item := range d.items {
		lines[i] = Line{Price: item.Price, Quantity: item.Quantity}
	}
	return Calculate(lines, cgstRate, sgstRate)
}
