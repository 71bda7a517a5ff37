package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/enum"
	"github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/pkg/apperror"
	"github.com/restobill/restobill-api/pkg/billing"
	"github.com/restobill/restobill-api/pkg/pagination"
	"github.com/restobill/restobill-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// BillService handles bill creation and retrieval
type BillService struct {
	billRepo       repository.BillRepository
	dishRepo       repository.DishRepository
	restaurantRepo repository.RestaurantRepository
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	dishRepo repository.DishRepository,
	restaurantRepo repository.RestaurantRepository,
) *BillService {
	return &BillService{
		billRepo:       billRepo,
		dishRepo:       dishRepo,
		restaurantRepo: restaurantRepo,
	}
}

// BillItemInput is one requested line on a bill. When DishID is set the
// dish name and price are resolved from the menu; free-form items must
// carry their own name and price.
type BillItemInput struct {
	DishID   *uuid.UUID
	Name     string
	Price    *float64
	Quantity int
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	ServiceType enum.ServiceType
	TableNumber *string
	WaiterName  *string
	Items       []BillItemInput
}

// taxRates returns the configured GST rates, falling back to the
// defaults when no profile has been saved yet.
func (s *BillService) taxRates(ctx context.Context) (cgst, sgst float64, err error) {
	profile, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return 0, 0, err
	}
	if profile == nil {
		return billing.DefaultCGSTRate, billing.DefaultSGSTRate, nil
	}
	return profile.CGSTRate, profile.SGSTRate, nil
}

// resolveItems turns item inputs into bill items with dish snapshots,
// validating quantities and dish references along the way.
func (s *BillService) resolveItems(ctx context.Context, inputs []BillItemInput) ([]entity.BillItem, []billing.Line, error) {
	if len(inputs) == 0 {
		return nil, nil, apperror.NewBadRequestError("A bill needs at least one item")
	}

	var dishIDs []uuid.UUID
	for _, in := range inputs {
		if in.DishID != nil {
			dishIDs = append(dishIDs, *in.DishID)
		}
	}

	dishes, err := s.dishRepo.GetByIDs(ctx, dishIDs)
	if err != nil {
		return nil, nil, err
	}
	dishByID := make(map[uuid.UUID]entity.Dish, len(dishes))
	for _, d := range dishes {
		dishByID[d.ID] = d
	}

	// Lines are keyed by dish, so ordering the same dish twice grows the
	// existing line instead of appending a duplicate. Free-form items get
	// a per-input key and always stand alone.
	draft := billing.NewDraft()
	dishIDByKey := make(map[string]*uuid.UUID, len(inputs))
	for i, in := range inputs {
		if in.Quantity < 1 {
			return nil, nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d has an invalid quantity", i+1))
		}

		name := in.Name
		price := 0.0
		if in.Price != nil {
			price = *in.Price
		}

		key := fmt.Sprintf("item-%d", i)
		if in.DishID != nil {
			dish, ok := dishByID[*in.DishID]
			if !ok {
				return nil, nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d references an unknown dish", i+1))
			}
			name = dish.Name
			if in.Price == nil {
				price = dish.Price
			}
			key = in.DishID.String()
		} else if name == "" || in.Price == nil {
			return nil, nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d needs a dish or a name and price", i+1))
		}

		if price < 0 {
			return nil, nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d has a negative price", i+1))
		}

		draft.AddUnits(key, name, price, in.Quantity)
		dishIDByKey[key] = in.DishID
	}

	merged := draft.Items()
	items := make([]entity.BillItem, 0, len(merged))
	lines := make([]billing.Line, 0, len(merged))
	for pos, li := range merged {
		items = append(items, entity.BillItem{
			DishID:   dishIDByKey[li.DishID],
			DishName: li.Name,
			Price:    li.Price,
			Quantity: li.Quantity,
			Position: pos,
		})
		lines = append(lines, billing.Line{Price: li.Price, Quantity: li.Quantity})
	}

	return items, lines, nil
}

// PreviewBill computes totals for a draft without persisting anything
func (s *BillService) PreviewBill(ctx context.Context, items []BillItemInput) (billing.Totals, error) {
	_, lines, err := s.resolveItems(ctx, items)
	if err != nil {
		return billing.Totals{}, err
	}

	cgst, sgst, err := s.taxRates(ctx)
	if err != nil {
		return billing.Totals{}, err
	}

	return billing.Calculate(lines, cgst, sgst), nil
}

// CreateBill finalizes a draft into a persisted bill. Totals are always
// computed server side from the resolved items and the profile rates.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if !input.ServiceType.IsValid() {
		return nil, apperror.NewBadRequestError("Service type must be DINE-IN or TAKE-AWAY")
	}
	if input.TableNumber == nil || strings.TrimSpace(*input.TableNumber) == "" {
		return nil, apperror.NewBadRequestError("A table number is required")
	}

	items, lines, err := s.resolveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	cgst, sgst, err := s.taxRates(ctx)
	if err != nil {
		return nil, err
	}
	totals := billing.Calculate(lines, cgst, sgst)

	now := time.Now()
	number, err := s.allocateBillNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	bill := &entity.Bill{
		Number:      number,
		Date:        utils.FormatBillDate(now),
		Time:        utils.FormatBillTime(now),
		ServiceType: input.ServiceType,
		TableNumber: input.TableNumber,
		WaiterName:  input.WaiterName,
		Items:       items,
		Subtotal:    totals.Subtotal,
		CGSTRate:    cgst,
		SGSTRate:    sgst,
		CGSTAmount:  totals.CGST,
		SGSTAmount:  totals.SGST,
		Total:       totals.Total,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// allocateBillNumber generates a bill number and checks it against the
// store before use. The random suffix makes collisions rare, so a few
// retries cover the same-millisecond case without ever tripping the
// unique index on insert.
func (s *BillService) allocateBillNumber(ctx context.Context, now time.Time) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		number := utils.GenerateBillNumber(now)
		existing, err := s.billRepo.GetByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return number, nil
		}
	}
	return "", apperror.NewConflictError("Could not allocate a unique bill number")
}

// GetBill retrieves a bill by ID
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills with filtering, newest first
func (s *BillService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// ExportBills renders every bill into an xlsx workbook
func (s *BillService) ExportBills(ctx context.Context) ([]byte, error) {
	bills, err := s.billRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Bill Number", "Date", "Time", "Service Type", "Table", "Waiter", "Items", "Subtotal", "CGST", "SGST", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, bill := range bills {
		values := []interface{}{
			bill.Number,
			bill.Date,
			bill.Time,
			bill.ServiceType.String(),
			deref(bill.TableNumber),
			deref(bill.WaiterName),
			len(bill.Items),
			billing.Round2(bill.Subtotal),
			billing.Round2(bill.CGSTAmount),
			billing.Round2(bill.SGSTAmount),
			billing.Round2(bill.Total),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
