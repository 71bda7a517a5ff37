package receipt

import (
	"fmt"
	"strconv"
)

// Page geometry for an 80mm thermal receipt, in points at 72 DPI.
const (
	PageWidth     = 226.77
	Margin        = 15.0
	ContentWidth  = PageWidth - 2*Margin
	MinPageHeight = 400.0

	lineSpacing = 1.2
	bottomPad   = 8.0

	logoWidth   = 50.0
	logoHeight  = 35.0
	itemLine    = 10.0
	itemGap     = 3.0
	currency    = "Rs."
	defaultRate = 2.5
)

// Item is a finalized line item fed to the layout engine.
type Item struct {
	Name     string
	Quantity int
	Price    float64
}

// Bill is the finalized bill a receipt is laid out from.
type Bill struct {
	BillNumber  string
	TableNumber string
	WaiterName  string
	ServiceType string
	Date        string
	Time        string
	Items       []Item
	Subtotal    float64
	CGST        float64
	SGST        float64
	Total       float64
}

// Restaurant carries the profile metadata printed around the bill body.
// Logo holds raw image bytes (already base64-decoded); empty means no logo.
type Restaurant struct {
	Name      string
	Address   string
	Phone     string
	GSTNumber string
	SACCode   string
	Footer    string
	CGSTRate  float64
	SGSTRate  float64
	Logo      []byte
}

// TextMeasurer wraps text to fit a width at a font size, breaking at word
// boundaries. The PDF renderer provides a font-metric-backed implementation;
// tests substitute a fixed-width one.
type TextMeasurer interface {
	SplitLines(text string, fontSize, width float64) []string
}

// Align selects horizontal text alignment relative to the op's x anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type textOp struct {
	text  string
	x, y  float64
	size  float64
	align Align
	bold  bool
}

type ruleOp struct {
	y float64
}

type imageOp struct {
	x, y, w, h float64
}

// Block records the vertical extent one logical unit of the receipt occupies,
// trailing spacing included. Blocks are contiguous: each block starts exactly
// where the previous one ended, which is what keeps wrapped text from
// overlapping the content below it.
type Block struct {
	Name   string
	Top    float64
	Height float64
}

// Layout is the fully measured receipt: page height, block accounting, and
// the draw operations the renderer replays.
type Layout struct {
	PageHeight float64
	Blocks     []Block

	texts []textOp
	rules []ruleOp
	image *imageOp
}

type composer struct {
	m   TextMeasurer
	lay *Layout
	y   float64
	top float64 // top of the block being composed
}

func (c *composer) begin() {
	c.top = c.y
}

func (c *composer) end(name string) {
	c.lay.Blocks = append(c.lay.Blocks, Block{Name: name, Top: c.top, Height: c.y - c.top})
}

// text emits a wrapped text run at the cursor and returns its height without
// advancing; callers advance explicitly so gap handling stays visible.
func (c *composer) text(s string, x, size, width float64, align Align, bold bool) float64 {
	if s == "" {
		return 0
	}
	lines := c.m.SplitLines(s, size, width)
	for i, ln := range lines {
		c.lay.texts = append(c.lay.texts, textOp{
			text:  ln,
			x:     x,
			y:     c.y + float64(i)*size*lineSpacing,
			size:  size,
			align: align,
			bold:  bold,
		})
	}
	return float64(len(lines)) * size * lineSpacing
}

// line emits a single unwrapped text op at an explicit y offset from the cursor.
func (c *composer) line(s string, x, dy, size float64, align Align, bold bool) {
	c.lay.texts = append(c.lay.texts, textOp{
		text:  s,
		x:     x,
		y:     c.y + dy,
		size:  size,
		align: align,
		bold:  bold,
	})
}

func (c *composer) rule() {
	c.lay.rules = append(c.lay.rules, ruleOp{y: c.y})
}

// Compose lays the bill out onto a single monotonic vertical cursor and
// returns the measured layout. It performs no I/O and shares no state between
// invocations; rendering is a separate pass.
func Compose(bill Bill, r Restaurant, m TextMeasurer) *Layout {
	lay := &Layout{}
	c := &composer{m: m, lay: lay, y: Margin}

	// Column boundaries are computed once and reused for the header row, the
	// metadata row, and every item row so everything stays aligned.
	colWidth := ContentWidth / 3
	itemCol := Margin
	qtyCol := Margin + colWidth
	rightEdge := PageWidth - Margin
	center := PageWidth / 2

	if len(r.Logo) > 0 {
		c.begin()
		lay.image = &imageOp{
			x: center - logoWidth/2,
			y: c.y,
			w: logoWidth,
			h: logoHeight,
		}
		c.y += logoHeight + 12
		c.end("logo")
	}

	c.begin()
	c.y += c.text(r.Name, center, 12, ContentWidth, AlignCenter, true)
	c.y += 8
	c.end("name")

	if r.Address != "" {
		c.begin()
		c.y += c.text(r.Address, center, 8, ContentWidth, AlignCenter, true)
		c.y += 6
		c.end("address")
	}

	if r.Phone != "" {
		c.begin()
		c.y += c.text(r.Phone, center, 8, ContentWidth, AlignCenter, false)
		c.y += 10
		c.end("phone")
	}

	if dt := joinDateTime(bill.Date, bill.Time); dt != "" {
		c.begin()
		c.y += c.text(dt, center, 8, ContentWidth, AlignCenter, false)
		c.y += 10
		c.end("datetime")
	}

	if bill.TableNumber != "" || bill.BillNumber != "" || bill.WaiterName != "" {
		c.begin()
		if bill.TableNumber != "" {
			c.line("Table "+bill.TableNumber, itemCol, 0, 8, AlignLeft, true)
		}
		if bill.BillNumber != "" {
			c.line(bill.BillNumber, qtyCol, 0, 8, AlignLeft, true)
		}
		if bill.WaiterName != "" {
			c.line(bill.WaiterName, rightEdge, 0, 8, AlignRight, true)
		}
		c.y += 12
		c.end("meta")
	}

	if bill.ServiceType != "" {
		c.begin()
		h := c.text("**** "+bill.ServiceType+" ****", center, 8, ContentWidth, AlignCenter, true)
		c.y += h + 12
		c.end("service")
	}

	c.begin()
	c.rule()
	c.y += 12
	c.end("rule-items")

	c.begin()
	c.line("Dish", itemCol, 0, 8, AlignLeft, true)
	c.line("Quantity", qtyCol, 0, 8, AlignLeft, true)
	c.line("Price", rightEdge, 0, 8, AlignRight, true)
	c.y += 12
	c.end("item-header")

	for i, item := range bill.Items {
		c.begin()
		// Item names wrap within the item column only, never the full
		// content width.
		nameLines := m.SplitLines(item.Name, 8, colWidth-3)
		if len(nameLines) == 0 {
			nameLines = []string{""}
		}
		c.line(nameLines[0], itemCol, 0, 8, AlignLeft, false)
		c.line(strconv.Itoa(item.Quantity), qtyCol, 0, 8, AlignLeft, false)
		c.line(amount(item.Price), rightEdge, 0, 8, AlignRight, false)
		c.y += itemLine
		for _, ln := range nameLines[1:] {
			c.line(ln, itemCol, 0, 8, AlignLeft, false)
			c.y += itemLine
		}
		if i < len(bill.Items)-1 {
			c.y += itemGap
		}
		c.end(fmt.Sprintf("item-%d", i))
	}

	c.begin()
	c.y += 8
	c.rule()
	c.y += 12
	c.end("rule-totals")

	c.begin()
	c.line("Amount:", Margin, 0, 8, AlignLeft, false)
	c.line(amount(bill.Subtotal), rightEdge, 0, 8, AlignRight, false)
	c.y += 10
	c.line(fmt.Sprintf("SGST (%s%%):", rate(r.SGSTRate)), Margin, 0, 8, AlignLeft, false)
	c.line(amount(bill.SGST), rightEdge, 0, 8, AlignRight, false)
	c.y += 10
	c.line(fmt.Sprintf("CGST (%s%%):", rate(r.CGSTRate)), Margin, 0, 8, AlignLeft, false)
	c.line(amount(bill.CGST), rightEdge, 0, 8, AlignRight, false)
	c.y += 12
	c.end("totals")

	c.begin()
	c.rule()
	c.y += 12
	c.end("rule-total")

	c.begin()
	c.line("Total Amount:", Margin, 0, 10, AlignLeft, true)
	c.line(amount(bill.Total), rightEdge, 0, 10, AlignRight, true)
	c.y += 15
	c.end("grand-total")

	if r.GSTNumber != "" {
		c.begin()
		c.y += 5
		c.y += c.text("GST Number: "+r.GSTNumber, center, 7, ContentWidth, AlignCenter, true)
		c.y += 8
		c.end("gst")
	}

	if r.SACCode != "" {
		c.begin()
		c.y += c.text("SAC CODE: "+r.SACCode, center, 7, ContentWidth, AlignCenter, true)
		c.y += 10
		c.end("sac")
	}

	if r.Footer != "" {
		c.begin()
		c.y += 5
		c.y += c.text(r.Footer, center, 8, ContentWidth, AlignCenter, true)
		c.end("footer")
	}

	lay.PageHeight = c.y + bottomPad
	if lay.PageHeight < MinPageHeight {
		lay.PageHeight = MinPageHeight
	}
	return lay
}

// ContentHeight returns the total vertical extent of all blocks.
func (l *Layout) ContentHeight() float64 {
	var h float64
	for _, b := range l.Blocks {
		h += b.Height
	}
	return h
}

// HasBlock reports whether a block with the given name was emitted.
func (l *Layout) HasBlock(name string) bool {
	for _, b := range l.Blocks {
		if b.Name == name {
			return true
		}
	}
	return false
}

func amount(v float64) string {
	return fmt.Sprintf("%s%.2f", currency, v)
}

func rate(v float64) string {
	if v <= 0 {
		v = defaultRate
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinDateTime(date, t string) string {
	switch {
	case date == "":
		return t
	case t == "":
		return date
	default:
		return date + " " + t
	}
}
