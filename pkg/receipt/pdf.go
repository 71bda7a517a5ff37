package receipt

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"
)

const fontFamily = "Helvetica"

// pdfMeasurer measures text with the same font metrics the renderer draws
// with, so the measured layout and the rendered output agree.
type pdfMeasurer struct {
	f *gofpdf.Fpdf
}

func newPDFMeasurer() *pdfMeasurer {
	f := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: PageWidth, Ht: MinPageHeight},
	})
	f.SetFont(fontFamily, "", 10)
	f.AddPage()
	return &pdfMeasurer{f: f}
}

func (m *pdfMeasurer) SplitLines(text string, fontSize, width float64) []string {
	if text == "" {
		return nil
	}
	m.f.SetFontSize(fontSize)
	return m.f.SplitText(text, width)
}

// Generate renders the bill as a PDF sized to its content. Each call builds
// its own document instance; there is no shared drawing state. A logo that
// fails to decode is logged and skipped without aborting the receipt.
func Generate(bill Bill, r Restaurant) ([]byte, error) {
	logoType := ""
	if len(r.Logo) > 0 {
		cfg, format, err := image.DecodeConfig(bytes.NewReader(r.Logo))
		if err != nil || cfg.Width <= 0 {
			logrus.WithError(err).WithField("bill", bill.BillNumber).
				Warn("receipt: skipping undecodable logo")
			r.Logo = nil
		} else {
			logoType = strings.ToUpper(format)
		}
	}

	lay := Compose(bill, r, newPDFMeasurer())

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: PageWidth, Ht: lay.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetTextColor(0, 0, 0)
	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.5)

	if lay.image != nil && len(r.Logo) > 0 {
		opts := gofpdf.ImageOptions{ImageType: logoType}
		doc.RegisterImageOptionsReader("logo", opts, bytes.NewReader(r.Logo))
		doc.ImageOptions("logo", lay.image.x, lay.image.y, lay.image.w, lay.image.h, false, opts, 0, "")
	}

	for _, rl := range lay.rules {
		doc.Line(Margin, rl.y, PageWidth-Margin, rl.y)
	}

	for _, op := range lay.texts {
		style := ""
		if op.bold {
			style = "B"
		}
		doc.SetFont(fontFamily, style, op.size)

		x := op.x
		switch op.align {
		case AlignCenter:
			x -= doc.GetStringWidth(op.text) / 2
		case AlignRight:
			x -= doc.GetStringWidth(op.text)
		}
		doc.Text(x, op.y, op.text)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt: failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the download name for a bill's receipt, falling back to a
// timestamp when the bill carries no number.
func Filename(billNumber string) string {
	name := strings.TrimPrefix(strings.TrimSpace(billNumber), "#")
	if name == "" {
		name = fmt.Sprintf("%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("Bill-%s.pdf", name)
}
