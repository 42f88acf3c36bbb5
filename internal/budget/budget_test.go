package budget

import (
	"testing"

	"aisle/internal/model"
)

// testPlan builds a small plan: catering (buffet with two items, drinks
// with one) and photography (one package item).
func testPlan() *model.WeddingPlan {
	return &model.WeddingPlan{
		ID:   "plan-1",
		Name: "Test Wedding",
		Vendors: []model.Vendor{
			{
				ID: "v-catering", Name: "Catering", UseSum: true, Selected: true,
				Tags: []model.Tag{
					{
						ID: "t-buffet", Name: "Buffet", UseSum: true, Selected: true,
						Items: []model.Item{
							{ID: "i-food", Name: "Food", Count: 50, Price: 100_000, Selected: true},
							{ID: "i-dessert", Name: "Dessert", Count: 50, Price: 20_000, Selected: false},
						},
					},
					{
						ID: "t-drinks", Name: "Drinks", UseSum: true, Selected: true,
						Items: []model.Item{
							{ID: "i-juice", Name: "Juice", Count: 50, Price: 10_000, Selected: true},
						},
					},
				},
			},
			{
				ID: "v-photo", Name: "Photography", UseSum: true, Selected: true,
				Tags: []model.Tag{
					{
						ID: "t-package", Name: "Package", UseSum: true, Selected: true,
						Items: []model.Item{
							{ID: "i-fullday", Name: "Full day", Count: 1, Price: 8_000_000, Selected: true},
						},
					},
				},
			},
		},
	}
}

func TestCalculate(t *testing.T) {
	plan := testPlan()

	// 50*100000 + 50*10000 + 1*8000000; the unselected dessert is excluded
	got := Calculate(plan)
	if got != 13_500_000 {
		t.Fatalf("Calculate = %v, want 13500000", got)
	}
}

func TestCalculateNilPlan(t *testing.T) {
	if got := Calculate(nil); got != 0 {
		t.Fatalf("Calculate(nil) = %v, want 0", got)
	}
}

func TestCalculateUnselectedVendorExcluded(t *testing.T) {
	plan := testPlan()
	plan.Vendors[1].Selected = false

	got := Calculate(plan)
	if got != 5_500_000 {
		t.Fatalf("Calculate = %v, want 5500000", got)
	}
}

func TestCalculateManualTotalWins(t *testing.T) {
	plan := testPlan()

	// A manual vendor total replaces its tag sum entirely, even when the
	// items underneath would sum to something else.
	plan.Vendors[0].UseSum = false
	plan.Vendors[0].ManualTotal = 2_000_000

	got := Calculate(plan)
	if got != 10_000_000 {
		t.Fatalf("Calculate = %v, want 10000000", got)
	}
}

func TestCalculateManualTagTotal(t *testing.T) {
	plan := testPlan()
	plan.Vendors[0].Tags[0].UseSum = false
	plan.Vendors[0].Tags[0].ManualTotal = 4_000_000

	got := Calculate(plan)
	if got != 12_500_000 {
		t.Fatalf("Calculate = %v, want 12500000", got)
	}
}

func TestBreakdown(t *testing.T) {
	items := []model.Item{
		{Count: 2, Price: 100_000, Selected: true},
		{Count: 1, Price: -50_000, Selected: true},
	}

	s := Breakdown(items)
	if s.Total != 200_000 {
		t.Fatalf("Total = %v, want 200000", s.Total)
	}
	if s.Paid != 50_000 {
		t.Fatalf("Paid = %v, want 50000", s.Paid)
	}
	if s.Remaining != 150_000 {
		t.Fatalf("Remaining = %v, want 150000", s.Remaining)
	}
}

func TestBreakdownSignOfProduct(t *testing.T) {
	// A negative count times a negative price is a positive product,
	// so it lands in the cost bucket despite the negative price.
	items := []model.Item{
		{Count: -2, Price: -100_000},
	}

	s := Breakdown(items)
	if s.Total != 200_000 {
		t.Fatalf("Total = %v, want 200000", s.Total)
	}
	if s.Paid != 0 {
		t.Fatalf("Paid = %v, want 0", s.Paid)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	s := Breakdown(nil)
	if s.Total != 0 || s.Paid != 0 || s.Remaining != 0 {
		t.Fatalf("Breakdown(nil) = %+v, want zeros", s)
	}
}

func TestSelectedItems(t *testing.T) {
	plan := testPlan()

	items := SelectedItems(plan)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}

	// A manual tag hides its items from the flat list
	plan.Vendors[0].Tags[0].UseSum = false
	items = SelectedItems(plan)
	if len(items) != 2 {
		t.Fatalf("len(items) after manual tag = %d, want 2", len(items))
	}
}

func TestVendorTotal(t *testing.T) {
	plan := testPlan()

	got := VendorTotal(plan.Vendors[0])
	if got != 5_500_000 {
		t.Fatalf("VendorTotal = %v, want 5500000", got)
	}

	// Display total ignores the vendor's own selection flag
	plan.Vendors[0].Selected = false
	got = VendorTotal(plan.Vendors[0])
	if got != 5_500_000 {
		t.Fatalf("VendorTotal unselected = %v, want 5500000", got)
	}

	plan.Vendors[0].UseSum = false
	plan.Vendors[0].ManualTotal = 1_234_000
	got = VendorTotal(plan.Vendors[0])
	if got != 1_234_000 {
		t.Fatalf("VendorTotal manual = %v, want 1234000", got)
	}
}

func TestTagTotal(t *testing.T) {
	plan := testPlan()

	got := TagTotal(plan.Vendors[0].Tags[0])
	if got != 5_000_000 {
		t.Fatalf("TagTotal = %v, want 5000000", got)
	}

	plan.Vendors[0].Tags[0].UseSum = false
	plan.Vendors[0].Tags[0].ManualTotal = 7_000_000
	got = TagTotal(plan.Vendors[0].Tags[0])
	if got != 7_000_000 {
		t.Fatalf("TagTotal manual = %v, want 7000000", got)
	}
}
