package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/config"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/restobill/restobill-api/pkg/billing"
	"github.com/restobill/restobill-api/pkg/imageutil"
	"github.com/restobill/restobill-api/pkg/printer"
	"github.com/restobill/restobill-api/pkg/receipt"
)

// ReceiptService renders bills as PDF receipts and drives the optional
// thermal printer.
type ReceiptService struct {
	billRepo       repository.BillRepository
	restaurantRepo repository.RestaurantRepository
	printer        printer.Printer
	printerType    string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	billRepo repository.BillRepository,
	restaurantRepo repository.RestaurantRepository,
	p printer.Printer,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		billRepo:       billRepo,
		restaurantRepo: restaurantRepo,
		printer:        p,
		printerType:    printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// loadBill fetches the bill or fails with a not found error
func (s *ReceiptService) loadBill(ctx context.Context, billID uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// receiptBill maps a persisted bill and the profile into the layout
// engine's input.
func receiptBill(bill *entity.Bill, profile *entity.RestaurantProfile) (receipt.Bill, receipt.Restaurant) {
	rb := receipt.Bill{
		BillNumber:  bill.Number,
		Date:        bill.Date,
		Time:        bill.Time,
		ServiceType: bill.ServiceType.String(),
		Subtotal:    bill.Subtotal,
		CGST:        bill.CGSTAmount,
		SGST:        bill.SGSTAmount,
		Total:       bill.Total,
	}
	if bill.TableNumber != nil {
		rb.TableNumber = *bill.TableNumber
	}
	if bill.WaiterName != nil {
		rb.WaiterName = *bill.WaiterName
	}
	for _, item := range bill.Items {
		rb.Items = append(rb.Items, receipt.Item{
			Name:     item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	// The receipt prints the rates the bill was charged at, not
	// whatever the profile says today.
	rr := receipt.Restaurant{
		CGSTRate: bill.CGSTRate,
		SGSTRate: bill.SGSTRate,
	}
	if profile != nil {
		rr.Name = profile.Name
		if profile.Address != nil {
			rr.Address = *profile.Address
		}
		if profile.Phone != nil {
			rr.Phone = *profile.Phone
		}
		if profile.GSTNumber != nil {
			rr.GSTNumber = *profile.GSTNumber
		}
		if profile.SACCode != nil {
			rr.SACCode = *profile.SACCode
		}
		if profile.BillFooter != nil {
			rr.Footer = *profile.BillFooter
		}
		if profile.Logo != nil {
			rr.Logo = imageutil.LogoBytes(*profile.Logo)
		}
	}
	return rb, rr
}

// RenderPDF renders a stored bill as a receipt PDF. The rendered bytes
// and the suggested download filename are returned.
func (s *ReceiptService) RenderPDF(ctx context.Context, billID uuid.UUID) ([]byte, string, error) {
	bill, err := s.loadBill(ctx, billID)
	if err != nil {
		return nil, "", err
	}

	profile, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	rb, rr := receiptBill(bill, profile)
	pdf, err := receipt.Generate(rb, rr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render receipt: %w", err)
	}

	return pdf, receipt.Filename(bill.Number), nil
}

// PrintBill fetches a bill and prints it on the thermal printer.
// Returns the receipt data so the handler can return it as JSON when
// no printer is configured.
func (s *ReceiptService) PrintBill(ctx context.Context, billID uuid.UUID) (*entity.Receipt, error) {
	bill, err := s.loadBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	profile, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	r := &entity.Receipt{
		BillNumber:  bill.Number,
		Date:        bill.Date,
		Time:        bill.Time,
		ServiceType: bill.ServiceType.String(),
		SubTotal:    bill.Subtotal,
		CGSTRate:    bill.CGSTRate,
		SGSTRate:    bill.SGSTRate,
		CGST:        bill.CGSTAmount,
		SGST:        bill.SGSTAmount,
		Total:       bill.Total,
	}
	if bill.TableNumber != nil {
		r.TableNumber = *bill.TableNumber
	}
	if bill.WaiterName != nil {
		r.WaiterName = *bill.WaiterName
	}
	if profile != nil {
		r.Header = entity.ReceiptHeader{
			RestaurantName: profile.Name,
		}
		if profile.Address != nil {
			r.Header.Address = *profile.Address
		}
		if profile.Phone != nil {
			r.Header.Phone = *profile.Phone
		}
		if profile.GSTNumber != nil {
			r.Header.GSTNumber = *profile.GSTNumber
		}
		if profile.SACCode != nil {
			r.Header.SACCode = *profile.SACCode
		}
		if profile.BillFooter != nil {
			r.Footer = *profile.BillFooter
		}
	}

	for _, item := range bill.Items {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      item.DishName,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.Price * float64(item.Quantity),
		})
	}

	data := FormatReceipt(r)
	if err := s.printer.Print(data); err != nil {
		config.GetLogger().WithField("bill_id", billID).Errorf("printer error: %v", err)
		return r, fmt.Errorf("failed to print receipt: %w", err)
	}

	return r, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(48) // 80mm paper = 48 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.RestaurantName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Bill info
	doc.KeyValue("Bill No:", r.BillNumber).
		KeyValue("Date:", r.Date+" "+r.Time)

	if r.TableNumber != "" {
		doc.KeyValue("Table:", r.TableNumber)
	}
	if r.WaiterName != "" {
		doc.KeyValue("Waiter:", r.WaiterName)
	}

	doc.SetAlign(printer.AlignCenter).
		TextF("**** %s ****", r.ServiceType).
		SetAlign(printer.AlignLeft).
		Separator('-')

	// Items
	doc.ColumnRow("Dish", "Qty", "Price")
	for _, item := range r.Items {
		doc.ColumnRow(item.Name,
			fmt.Sprintf("%d", item.Quantity),
			fmt.Sprintf("Rs.%.2f", item.Total))
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Amount:", fmt.Sprintf("Rs.%.2f", billing.Round2(r.SubTotal)))
	doc.KeyValue(fmt.Sprintf("SGST (%.1f%%):", r.SGSTRate), fmt.Sprintf("Rs.%.2f", billing.Round2(r.SGST)))
	doc.KeyValue(fmt.Sprintf("CGST (%.1f%%):", r.CGSTRate), fmt.Sprintf("Rs.%.2f", billing.Round2(r.CGST)))

	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("Total:", fmt.Sprintf("Rs.%.2f", billing.Round2(r.Total))).
		SetBold(false)

	if r.Header.GSTNumber != "" {
		doc.TextF("GST No: %s", r.Header.GSTNumber)
	}
	if r.Header.SACCode != "" {
		doc.TextF("SAC Code: %s", r.Header.SACCode)
	}

	// Footer
	if r.Footer != "" {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			Text(r.Footer).
			SetAlign(printer.AlignLeft)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
