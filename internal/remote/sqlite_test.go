package remote

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"aisle/internal/model"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "plans.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPlanRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	plan := &model.WeddingPlan{
		ID:        "p1",
		Name:      "Test Wedding",
		Passcode:  "secret",
		CreatedAt: 1_700_000_000_000,
		Vendors: []model.Vendor{
			{
				ID: "v1", Name: "Catering", UseSum: true, Selected: true,
				Tags: []model.Tag{
					{
						ID: "t1", Name: "Buffet", UseSum: false, ManualTotal: 4_000_000, Selected: true,
						Items: []model.Item{
							{ID: "i1", Name: "Food", Count: 50, Price: 100_000, Selected: true},
							{ID: "i2", Name: "Deposit", Count: 1, Price: -500_000, Selected: true},
						},
					},
				},
			},
		},
	}

	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	got, err := store.PlanByID(ctx, "p1", "secret")
	if err != nil {
		t.Fatalf("PlanByID: %v", err)
	}
	if !reflect.DeepEqual(got, plan) {
		t.Fatalf("round-trip mismatch:\ngot  %+v\nwant %+v", got, plan)
	}
}

func TestSavePlanUpserts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	plan := &model.WeddingPlan{ID: "p1", Name: "Before", Passcode: "secret"}
	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	plan.Name = "After"
	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("SavePlan again: %v", err)
	}

	got, err := store.PlanByID(ctx, "p1", "secret")
	if err != nil {
		t.Fatalf("PlanByID: %v", err)
	}
	if got.Name != "After" {
		t.Fatalf("name = %q, want %q", got.Name, "After")
	}
}

func TestPlanByLogin(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	plan := &model.WeddingPlan{ID: "p1", Name: "Test Wedding", Passcode: "secret"}
	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	got, err := store.PlanByLogin(ctx, "Test Wedding", "secret")
	if err != nil {
		t.Fatalf("PlanByLogin: %v", err)
	}
	if got.ID != "p1" {
		t.Fatalf("id = %q, want p1", got.ID)
	}

	if _, err := store.PlanByLogin(ctx, "Test Wedding", "wrong"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong passcode err = %v, want ErrNotFound", err)
	}
	if _, err := store.PlanByID(ctx, "nope", "secret"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestGuestCRUD(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	guests := []model.Guest{
		{ID: "g1", Name: "Ana", Occupancy: 2, Group: "family", Selected: true},
		{ID: "g2", Name: "Bram", Occupancy: 1, Group: "friends", Selected: false},
	}
	for _, g := range guests {
		if err := store.InsertGuest(ctx, "p1", g); err != nil {
			t.Fatalf("InsertGuest %s: %v", g.ID, err)
		}
	}

	got, err := store.Guests(ctx, "p1")
	if err != nil {
		t.Fatalf("Guests: %v", err)
	}
	if !reflect.DeepEqual(got, guests) {
		t.Fatalf("guests mismatch:\ngot  %+v\nwant %+v", got, guests)
	}

	guests[1].Selected = true
	guests[1].Occupancy = 3
	if err := store.UpdateGuest(ctx, "p1", guests[1]); err != nil {
		t.Fatalf("UpdateGuest: %v", err)
	}
	got, err = store.Guests(ctx, "p1")
	if err != nil {
		t.Fatalf("Guests after update: %v", err)
	}
	if !reflect.DeepEqual(got, guests) {
		t.Fatalf("guests after update mismatch:\ngot  %+v\nwant %+v", got, guests)
	}

	if err := store.UpdateGuest(ctx, "p1", model.Guest{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateGuest unknown err = %v, want ErrNotFound", err)
	}

	if err := store.DeleteGuest(ctx, "p1", "g1"); err != nil {
		t.Fatalf("DeleteGuest: %v", err)
	}
	got, err = store.Guests(ctx, "p1")
	if err != nil {
		t.Fatalf("Guests after delete: %v", err)
	}
	if len(got) != 1 || got[0].ID != "g2" {
		t.Fatalf("guests after delete = %+v, want only g2", got)
	}

	// Deleting an absent guest is not an error
	if err := store.DeleteGuest(ctx, "p1", "nope"); err != nil {
		t.Fatalf("DeleteGuest absent: %v", err)
	}
}

func TestGuestsScopedByPlan(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.InsertGuest(ctx, "p1", model.Guest{ID: "g1", Name: "Ana"}); err != nil {
		t.Fatalf("InsertGuest: %v", err)
	}
	if err := store.InsertGuest(ctx, "p2", model.Guest{ID: "g2", Name: "Bram"}); err != nil {
		t.Fatalf("InsertGuest: %v", err)
	}

	got, err := store.Guests(ctx, "p1")
	if err != nil {
		t.Fatalf("Guests: %v", err)
	}
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("p1 guests = %+v, want only g1", got)
	}
}
