package service

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/restobill/restobill-api/internal/domain/entity"
	"github.com/restobill/restobill-api/internal/domain/enum"
)

func seedDish(t *testing.T, repo *fakeDishRepo, name string, price float64) uuid.UUID {
	t.Helper()
	dish := &entity.Dish{Name: name, Price: price}
	if err := repo.Create(context.Background(), dish); err != nil {
		t.Fatalf("seed dish: %v", err)
	}
	return dish.ID
}

func floatPtr(f float64) *float64 { return &f }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCreateBillComputesTotalsServerSide(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{}
	restRepo := &fakeRestaurantRepo{}
	svc := NewBillService(billRepo, dishRepo, restRepo)

	paneer := seedDish(t, dishRepo, "Paneer Tikka", 100)
	naan := seedDish(t, dishRepo, "Butter Naan", 50)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeDineIn,
		TableNumber: strPtr("5"),
		Items: []BillItemInput{
			{DishID: &paneer, Quantity: 2},
			{DishID: &naan, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if !almostEqual(bill.Subtotal, 250) {
		t.Errorf("subtotal = %v, want 250", bill.Subtotal)
	}
	if !almostEqual(bill.CGSTAmount, 6.25) || !almostEqual(bill.SGSTAmount, 6.25) {
		t.Errorf("gst = %v/%v, want 6.25/6.25", bill.CGSTAmount, bill.SGSTAmount)
	}
	if !almostEqual(bill.Total, 262.5) {
		t.Errorf("total = %v, want 262.5", bill.Total)
	}
	if !strings.HasPrefix(bill.Number, "#") {
		t.Errorf("bill number %q missing # prefix", bill.Number)
	}
	if bill.Date == "" || bill.Time == "" {
		t.Errorf("bill missing date/time: %q %q", bill.Date, bill.Time)
	}
	if len(bill.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(bill.Items))
	}
	if bill.Items[0].DishName != "Paneer Tikka" || bill.Items[0].Position != 0 {
		t.Errorf("first item = %+v", bill.Items[0])
	}
}

func TestCreateBillUsesProfileRates(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{}
	restRepo := &fakeRestaurantRepo{}
	restRepo.profile = &entity.RestaurantProfile{
		ID:       uuid.New(),
		Name:     "Spice Garden",
		CGSTRate: 9,
		SGSTRate: 9,
	}
	svc := NewBillService(billRepo, dishRepo, restRepo)

	dish := seedDish(t, dishRepo, "Thali", 200)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeTakeAway,
		TableNumber: strPtr("7"),
		Items:       []BillItemInput{{DishID: &dish, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if !almostEqual(bill.CGSTAmount, 18) || !almostEqual(bill.SGSTAmount, 18) {
		t.Errorf("gst amounts = %v/%v, want 18/18", bill.CGSTAmount, bill.SGSTAmount)
	}
	if !almostEqual(bill.Total, 236) {
		t.Errorf("total = %v, want 236", bill.Total)
	}
}

func TestCreateBillSnapshotsDishData(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{}
	svc := NewBillService(billRepo, dishRepo, &fakeRestaurantRepo{})

	id := seedDish(t, dishRepo, "Masala Dosa", 80)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeDineIn,
		TableNumber: strPtr("2"),
		Items:       []BillItemInput{{DishID: &id, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	// Edit the menu after the sale; the stored bill keeps the old values.
	dish, _ := dishRepo.GetByID(context.Background(), id)
	dish.Name = "Mysore Masala Dosa"
	dish.Price = 120
	_ = dishRepo.Update(context.Background(), dish)

	stored, err := svc.GetBill(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if stored.Items[0].DishName != "Masala Dosa" || !almostEqual(stored.Items[0].Price, 80) {
		t.Errorf("snapshot changed: %+v", stored.Items[0])
	}
}

func TestCreateBillValidation(t *testing.T) {
	dishRepo := newFakeDishRepo()
	svc := NewBillService(&fakeBillRepo{}, dishRepo, &fakeRestaurantRepo{})
	unknown := uuid.New()

	tests := []struct {
		name  string
		input *CreateBillInput
	}{
		{"empty items", &CreateBillInput{ServiceType: enum.ServiceTypeDineIn, TableNumber: strPtr("5")}},
		{"bad service type", &CreateBillInput{
			ServiceType: enum.ServiceType("DELIVERY"),
			TableNumber: strPtr("5"),
			Items:       []BillItemInput{{Name: "Tea", Price: floatPtr(10), Quantity: 1}},
		}},
		{"missing table number", &CreateBillInput{
			ServiceType: enum.ServiceTypeDineIn,
			Items:       []BillItemInput{{Name: "Tea", Price: floatPtr(10), Quantity: 1}},
		}},
		{"blank table number", &CreateBillInput{
			ServiceType: enum.ServiceTypeDineIn,
			TableNumber: strPtr("   "),
			Items:       []BillItemInput{{Name: "Tea", Price: floatPtr(10), Quantity: 1}},
		}},
		{"zero quantity", &CreateBillInput{
			ServiceType: enum.ServiceTypeDineIn,
			TableNumber: strPtr("5"),
			Items:       []BillItemInput{{Name: "Tea", Price: floatPtr(10), Quantity: 0}},
		}},
		{"unknown dish", &CreateBillInput{
			ServiceType: enum.ServiceTypeDineIn,
			TableNumber: strPtr("5"),
			Items:       []BillItemInput{{DishID: &unknown, Quantity: 1}},
		}},
		{"free-form item without price", &CreateBillInput{
			ServiceType: enum.ServiceTypeDineIn,
			TableNumber: strPtr("5"),
			Items:       []BillItemInput{{Name: "Tea", Quantity: 1}},
		}},
		{"negative price", &CreateBillInput{
			ServiceType: enum.ServiceTypeDineIn,
			TableNumber: strPtr("5"),
			Items:       []BillItemInput{{Name: "Tea", Price: floatPtr(-1), Quantity: 1}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateBill(context.Background(), tt.input); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCreateBillMergesRepeatedDishLines(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{}
	svc := NewBillService(billRepo, dishRepo, &fakeRestaurantRepo{})

	paneer := seedDish(t, dishRepo, "Paneer Tikka", 100)
	tea := seedDish(t, dishRepo, "Tea", 20)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeDineIn,
		TableNumber: strPtr("4"),
		Items: []BillItemInput{
			{DishID: &paneer, Quantity: 1},
			{DishID: &tea, Quantity: 1},
			{DishID: &paneer, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if len(bill.Items) != 2 {
		t.Fatalf("items = %d, want 2 (same dish folded into one line)", len(bill.Items))
	}
	if bill.Items[0].DishName != "Paneer Tikka" || bill.Items[0].Quantity != 3 {
		t.Errorf("first line = %+v, want Paneer Tikka x3", bill.Items[0])
	}
	if bill.Items[1].DishName != "Tea" || bill.Items[1].Position != 1 {
		t.Errorf("second line = %+v, want Tea at position 1", bill.Items[1])
	}
	if !almostEqual(bill.Subtotal, 320) {
		t.Errorf("subtotal = %v, want 320", bill.Subtotal)
	}
}

func TestCreateBillKeepsFreeFormLinesSeparate(t *testing.T) {
	svc := NewBillService(&fakeBillRepo{}, newFakeDishRepo(), &fakeRestaurantRepo{})

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeTakeAway,
		TableNumber: strPtr("9"),
		Items: []BillItemInput{
			{Name: "Special", Price: floatPtr(100), Quantity: 1},
			{Name: "Special", Price: floatPtr(150), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if len(bill.Items) != 2 {
		t.Fatalf("items = %d, want 2 (free-form lines have no dish key)", len(bill.Items))
	}
}

func TestCreateBillRetriesTakenNumbers(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{numberCollisions: 2}
	svc := NewBillService(billRepo, dishRepo, &fakeRestaurantRepo{})

	dish := seedDish(t, dishRepo, "Tea", 20)
	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeDineIn,
		TableNumber: strPtr("3"),
		Items:       []BillItemInput{{DishID: &dish, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if !strings.HasPrefix(bill.Number, "#") {
		t.Errorf("bill number %q missing # prefix", bill.Number)
	}
}

func TestCreateBillFailsWhenNumbersStayTaken(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{numberCollisions: 3}
	svc := NewBillService(billRepo, dishRepo, &fakeRestaurantRepo{})

	dish := seedDish(t, dishRepo, "Tea", 20)
	if _, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeDineIn,
		TableNumber: strPtr("3"),
		Items:       []BillItemInput{{DishID: &dish, Quantity: 1}},
	}); err == nil {
		t.Error("expected error when every generated number is taken")
	}
	if len(billRepo.bills) != 0 {
		t.Errorf("persisted %d bills despite number exhaustion", len(billRepo.bills))
	}
}

func TestPreviewBillDoesNotPersist(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{}
	svc := NewBillService(billRepo, dishRepo, &fakeRestaurantRepo{})

	totals, err := svc.PreviewBill(context.Background(), []BillItemInput{
		{Name: "Lassi", Price: floatPtr(60), Quantity: 2},
	})
	if err != nil {
		t.Fatalf("PreviewBill: %v", err)
	}
	if !almostEqual(totals.Subtotal, 120) {
		t.Errorf("subtotal = %v, want 120", totals.Subtotal)
	}
	if !almostEqual(totals.Total, 126) {
		t.Errorf("total = %v, want 126", totals.Total)
	}
	if len(billRepo.bills) != 0 {
		t.Errorf("preview persisted %d bills", len(billRepo.bills))
	}
}

func TestGetBillNotFound(t *testing.T) {
	svc := NewBillService(&fakeBillRepo{}, newFakeDishRepo(), &fakeRestaurantRepo{})
	if _, err := svc.GetBill(context.Background(), uuid.New()); err == nil {
		t.Error("expected not found error")
	}
}

func TestExportBillsProducesWorkbook(t *testing.T) {
	dishRepo := newFakeDishRepo()
	billRepo := &fakeBillRepo{}
	svc := NewBillService(billRepo, dishRepo, &fakeRestaurantRepo{})

	dish := seedDish(t, dishRepo, "Idli", 40)
	if _, err := svc.CreateBill(context.Background(), &CreateBillInput{
		ServiceType: enum.ServiceTypeDineIn,
		TableNumber: strPtr("1"),
		Items:       []BillItemInput{{DishID: &dish, Quantity: 3}},
	}); err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	data, err := svc.ExportBills(context.Background())
	if err != nil {
		t.Fatalf("ExportBills: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty export")
	}
	// xlsx files are zip archives
	if data[0] != 'P' || data[1] != 'K' {
		t.Errorf("export is not a zip archive: % x", data[:2])
	}
}
