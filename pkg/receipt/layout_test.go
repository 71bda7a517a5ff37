package receipt

import (
	"math"
	"strings"
	"testing"
)

// fixedMeasurer wraps text assuming every glyph is size*0.5 wide. Deterministic
// stand-in for the font-metric measurer.
type fixedMeasurer struct{}

func (fixedMeasurer) SplitLines(text string, size, width float64) []string {
	if text == "" {
		return nil
	}
	maxChars := int(width / (size * 0.5))
	if maxChars < 1 {
		maxChars = 1
	}

	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= maxChars:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func sampleBill(items ...Item) Bill {
	if len(items) == 0 {
		items = []Item{
			{Name: "Masala Dosa", Quantity: 2, Price: 90},
			{Name: "Filter Coffee", Quantity: 1, Price: 40},
		}
	}
	return Bill{
		BillNumber:  "#1001",
		TableNumber: "4",
		WaiterName:  "Ravi",
		ServiceType: "DINE-IN",
		Date:        "01/09/26",
		Time:        "07:45 PM",
		Items:       items,
		Subtotal:    220,
		CGST:        5.5,
		SGST:        5.5,
		Total:       231,
	}
}

func sampleRestaurant() Restaurant {
	return Restaurant{
		Name:     "Dosa Corner",
		Address:  "12 MG Road, Bengaluru",
		Phone:    "+91 98765 43210",
		CGSTRate: 2.5,
		SGSTRate: 2.5,
	}
}

func TestComposeBlocksAreContiguous(t *testing.T) {
	lay := Compose(sampleBill(), sampleRestaurant(), fixedMeasurer{})

	if len(lay.Blocks) == 0 {
		t.Fatal("no blocks emitted")
	}
	if lay.Blocks[0].Top != Margin {
		t.Errorf("first block starts at %f, want %f", lay.Blocks[0].Top, Margin)
	}
	for i := 1; i < len(lay.Blocks); i++ {
		prev := lay.Blocks[i-1]
		want := prev.Top + prev.Height
		if math.Abs(lay.Blocks[i].Top-want) > 1e-6 {
			t.Errorf("block %q starts at %f, want %f (end of %q)",
				lay.Blocks[i].Name, lay.Blocks[i].Top, want, prev.Name)
		}
	}
}

func TestComposeWrappedItemAdvancesFullHeight(t *testing.T) {
	longName := "Extra Spicy Paneer Butter Masala Special"
	m := fixedMeasurer{}
	lay := Compose(sampleBill(
		Item{Name: longName, Quantity: 1, Price: 260},
		Item{Name: "Roti", Quantity: 4, Price: 15},
	), sampleRestaurant(), m)

	colWidth := ContentWidth / 3
	wrapped := m.SplitLines(longName, 8, colWidth-3)
	if len(wrapped) < 2 {
		t.Fatalf("test name did not wrap: %v", wrapped)
	}

	var first, second *Block
	for i := range lay.Blocks {
		switch lay.Blocks[i].Name {
		case "item-0":
			first = &lay.Blocks[i]
		case "item-1":
			second = &lay.Blocks[i]
		}
	}
	if first == nil || second == nil {
		t.Fatal("item blocks missing")
	}

	wantHeight := float64(len(wrapped))*itemLine + itemGap
	if math.Abs(first.Height-wantHeight) > 1e-6 {
		t.Errorf("wrapped item height = %f, want %f", first.Height, wantHeight)
	}
	if math.Abs(second.Top-(first.Top+first.Height)) > 1e-6 {
		t.Errorf("next item overlaps wrapped one: top %f, want %f",
			second.Top, first.Top+first.Height)
	}
}

func TestComposeOptionalBlocksOmitted(t *testing.T) {
	bill := sampleBill()
	bill.WaiterName = ""
	bill.TableNumber = ""
	bill.BillNumber = ""
	bill.ServiceType = ""
	bill.Date = ""
	bill.Time = ""

	bare := Restaurant{Name: "Dosa Corner", CGSTRate: 2.5, SGSTRate: 2.5}
	lay := Compose(bill, bare, fixedMeasurer{})

	for _, name := range []string{"logo", "address", "phone", "datetime", "meta", "service", "gst", "sac", "footer"} {
		if lay.HasBlock(name) {
			t.Errorf("block %q emitted for empty field", name)
		}
	}

	full := sampleRestaurant()
	full.GSTNumber = "29ABCDE1234F1Z5"
	full.SACCode = "996331"
	full.Footer = "Thank you, visit again!"
	full.Logo = []byte{0x89, 0x50} // presence is all Compose checks
	lay = Compose(sampleBill(), full, fixedMeasurer{})

	for _, name := range []string{"logo", "name", "address", "phone", "datetime", "meta", "service", "gst", "sac", "footer", "totals", "grand-total"} {
		if !lay.HasBlock(name) {
			t.Errorf("block %q missing", name)
		}
	}
}

func TestComposePageHeight(t *testing.T) {
	// A short bill still gets the minimum page height.
	lay := Compose(sampleBill(), sampleRestaurant(), fixedMeasurer{})
	if lay.PageHeight != MinPageHeight {
		t.Errorf("short bill page height = %f, want %f", lay.PageHeight, MinPageHeight)
	}
	if lay.PageHeight < Margin+lay.ContentHeight() {
		t.Errorf("page height %f smaller than content extent %f",
			lay.PageHeight, Margin+lay.ContentHeight())
	}

	// A long bill grows the page instead of truncating.
	items := make([]Item, 40)
	for i := range items {
		items[i] = Item{Name: "Masala Dosa", Quantity: 1, Price: 90}
	}
	lay = Compose(sampleBill(items...), sampleRestaurant(), fixedMeasurer{})
	if lay.PageHeight <= MinPageHeight {
		t.Errorf("long bill page height = %f, want > %f", lay.PageHeight, MinPageHeight)
	}
	want := Margin + lay.ContentHeight() + bottomPad
	if math.Abs(lay.PageHeight-want) > 1e-6 {
		t.Errorf("long bill page height = %f, want %f", lay.PageHeight, want)
	}
}

func TestComposeDefaultRateLabels(t *testing.T) {
	r := sampleRestaurant()
	r.CGSTRate = 0
	r.SGSTRate = 0
	lay := Compose(sampleBill(), r, fixedMeasurer{})

	var found bool
	for _, op := range lay.texts {
		if op.text == "CGST (2.5%):" {
			found = true
		}
	}
	if !found {
		t.Error("default 2.5% rate label not rendered when rates are unset")
	}
}
