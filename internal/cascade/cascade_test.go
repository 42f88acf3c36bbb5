package cascade

import (
	"testing"

	"aisle/internal/model"
)

func testPlan() *model.WeddingPlan {
	return &model.WeddingPlan{
		ID: "plan-1",
		Vendors: []model.Vendor{
			{
				ID: "v1", Name: "Catering", UseSum: true, Selected: true,
				Tags: []model.Tag{
					{
						ID: "t1", Name: "Buffet", UseSum: true, Selected: true,
						Items: []model.Item{
							{ID: "i1", Name: "Food", Count: 50, Price: 100_000, Selected: true},
							{ID: "i2", Name: "Dessert", Count: 50, Price: 20_000, Selected: true},
						},
					},
					{
						ID: "t2", Name: "Drinks", UseSum: true, Selected: false,
						Items: []model.Item{
							{ID: "i3", Name: "Juice", Count: 50, Price: 10_000, Selected: false},
						},
					},
				},
			},
			{
				ID: "v2", Name: "Photography", UseSum: true, Selected: false,
				Tags: []model.Tag{
					{
						ID: "t3", Name: "Package", UseSum: true, Selected: false,
						Items: []model.Item{
							{ID: "i4", Name: "Full day", Count: 1, Price: 8_000_000, Selected: false},
						},
					},
				},
			},
		},
	}
}

func TestToggleVendorCascadesDown(t *testing.T) {
	plan := testPlan()

	next := ToggleVendor(plan, "v2")

	v := next.Vendors[1]
	if !v.Selected {
		t.Fatal("vendor not selected after toggle on")
	}
	if !v.Tags[0].Selected {
		t.Fatal("tag not forced on by vendor toggle")
	}
	if !v.Tags[0].Items[0].Selected {
		t.Fatal("item not forced on by vendor toggle")
	}
}

func TestToggleVendorOffClearsSubtree(t *testing.T) {
	plan := testPlan()

	next := ToggleVendor(plan, "v1")

	v := next.Vendors[0]
	if v.Selected {
		t.Fatal("vendor still selected after toggle off")
	}
	for _, tag := range v.Tags {
		if tag.Selected {
			t.Fatalf("tag %s still selected after vendor toggle off", tag.ID)
		}
		for _, item := range tag.Items {
			if item.Selected {
				t.Fatalf("item %s still selected after vendor toggle off", item.ID)
			}
		}
	}
}

func TestToggleTagForcesItemsAndVendor(t *testing.T) {
	plan := testPlan()

	next := ToggleTag(plan, "v2", "t3")

	v := next.Vendors[1]
	if !v.Tags[0].Selected {
		t.Fatal("tag not selected after toggle on")
	}
	if !v.Tags[0].Items[0].Selected {
		t.Fatal("item not forced on by tag toggle")
	}
	if !v.Selected {
		t.Fatal("vendor not forced on by tag selection")
	}
}

func TestToggleTagOffDerivesVendor(t *testing.T) {
	plan := testPlan()

	// t1 is v1's only selected tag; deselecting it turns the vendor off
	next := ToggleTag(plan, "v1", "t1")

	v := next.Vendors[0]
	if v.Tags[0].Selected {
		t.Fatal("tag still selected after toggle off")
	}
	if v.Selected {
		t.Fatal("vendor still selected with no selected tags")
	}
}

func TestToggleTagOffKeepsVendorWithOtherTags(t *testing.T) {
	plan := testPlan()
	plan.Vendors[0].Tags[1].Selected = true

	next := ToggleTag(plan, "v1", "t1")

	v := next.Vendors[0]
	if !v.Selected {
		t.Fatal("vendor dropped despite another selected tag")
	}
}

func TestToggleItemReselectsAncestors(t *testing.T) {
	plan := testPlan()

	next := ToggleItem(plan, "v2", "t3", "i4")

	v := next.Vendors[1]
	if !v.Tags[0].Items[0].Selected {
		t.Fatal("item not selected after toggle")
	}
	if !v.Tags[0].Selected {
		t.Fatal("tag not forced on by item selection")
	}
	if !v.Selected {
		t.Fatal("vendor not derived on by tag selection")
	}
}

func TestToggleItemOffKeepsTagWithSiblings(t *testing.T) {
	plan := testPlan()

	next := ToggleItem(plan, "v1", "t1", "i1")

	v := next.Vendors[0]
	if v.Tags[0].Items[0].Selected {
		t.Fatal("item still selected after toggle off")
	}
	if !v.Tags[0].Selected {
		t.Fatal("tag dropped despite sibling item still selected")
	}
	if !v.Selected {
		t.Fatal("vendor dropped despite selected tag")
	}
}

func TestToggleLastItemOffClearsAncestors(t *testing.T) {
	plan := testPlan()

	next := ToggleItem(plan, "v1", "t1", "i1")
	next = ToggleItem(next, "v1", "t1", "i2")

	v := next.Vendors[0]
	if v.Tags[0].Selected {
		t.Fatal("tag still selected with no selected items")
	}
	if v.Selected {
		t.Fatal("vendor still selected with no selected tags")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	plan := testPlan()

	next := ToggleItem(plan, "v1", "t1", "i2")
	next = ToggleItem(next, "v1", "t1", "i2")

	if !next.Vendors[0].Tags[0].Items[1].Selected {
		t.Fatal("item not restored after double toggle")
	}
	if !next.Vendors[0].Tags[0].Selected {
		t.Fatal("tag not restored after double toggle")
	}
	if !next.Vendors[0].Selected {
		t.Fatal("vendor not restored after double toggle")
	}
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	plan := testPlan()

	if next := ToggleVendor(plan, "nope"); next != plan {
		t.Fatal("unknown vendor id did not return the same plan")
	}
	if next := ToggleTag(plan, "v1", "nope"); next != plan {
		t.Fatal("unknown tag id did not return the same plan")
	}
	if next := ToggleItem(plan, "v1", "t1", "nope"); next != plan {
		t.Fatal("unknown item id did not return the same plan")
	}
	if next := ToggleVendor(nil, "v1"); next != nil {
		t.Fatal("nil plan did not return nil")
	}
}

func TestToggleDoesNotModifyInput(t *testing.T) {
	plan := testPlan()

	next := ToggleVendor(plan, "v1")

	if next == plan {
		t.Fatal("toggle returned the input plan pointer")
	}
	if !plan.Vendors[0].Selected {
		t.Fatal("input vendor mutated")
	}
	if !plan.Vendors[0].Tags[0].Items[0].Selected {
		t.Fatal("input item mutated")
	}
}
