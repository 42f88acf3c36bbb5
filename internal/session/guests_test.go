package session

import (
	"context"
	"errors"
	"testing"

	"aisle/internal/remote"
)

func TestAddGuest(t *testing.T) {
	sess, store := newTestSession(t)

	if err := sess.AddGuest(context.Background(), "Ana", 2, "family"); err != nil {
		t.Fatalf("AddGuest: %v", err)
	}

	guests := sess.Guests()
	if len(guests) != 1 {
		t.Fatalf("len(guests) = %d, want 1", len(guests))
	}
	if !guests[0].Selected {
		t.Fatal("new guest does not start selected")
	}

	saved, err := store.Guests(context.Background(), sess.Plan().ID)
	if err != nil {
		t.Fatalf("store.Guests: %v", err)
	}
	if len(saved) != 1 || saved[0].Name != "Ana" {
		t.Fatalf("persisted guests = %+v, want one named Ana", saved)
	}
}

func TestAddGuestRollsBackOnFailure(t *testing.T) {
	sess, store := newTestSession(t)

	store.FailNext = errors.New("datastore down")
	if err := sess.AddGuest(context.Background(), "Bram", 1, ""); err == nil {
		t.Fatal("AddGuest succeeded despite store failure")
	}

	// The optimistic local insert must be rolled back
	if got := len(sess.Guests()); got != 0 {
		t.Fatalf("len(guests) after rollback = %d, want 0", got)
	}
}

func TestUpdateGuestRemoteFirst(t *testing.T) {
	sess, store := newTestSession(t)
	if err := sess.AddGuest(context.Background(), "Ana", 2, "family"); err != nil {
		t.Fatalf("AddGuest: %v", err)
	}
	guestID := sess.Guests()[0].ID

	occupancy := 4
	if err := sess.UpdateGuest(context.Background(), guestID, GuestPatch{Occupancy: &occupancy}); err != nil {
		t.Fatalf("UpdateGuest: %v", err)
	}
	if got := sess.Guests()[0].Occupancy; got != 4 {
		t.Fatalf("occupancy = %d, want 4", got)
	}

	// On store failure the local copy keeps its old value
	store.FailNext = errors.New("datastore down")
	occupancy = 9
	if err := sess.UpdateGuest(context.Background(), guestID, GuestPatch{Occupancy: &occupancy}); err == nil {
		t.Fatal("UpdateGuest succeeded despite store failure")
	}
	if got := sess.Guests()[0].Occupancy; got != 4 {
		t.Fatalf("occupancy after failed update = %d, want 4", got)
	}
}

func TestUpdateUnknownGuestIsNoOp(t *testing.T) {
	sess, _ := newTestSession(t)

	sel := false
	if err := sess.UpdateGuest(context.Background(), "nope", GuestPatch{Selected: &sel}); err != nil {
		t.Fatalf("UpdateGuest unknown id: %v", err)
	}
}

func TestDeleteGuest(t *testing.T) {
	sess, store := newTestSession(t)
	if err := sess.AddGuest(context.Background(), "Ana", 2, "family"); err != nil {
		t.Fatalf("AddGuest: %v", err)
	}
	guestID := sess.Guests()[0].ID

	// Remote failure leaves the guest in place
	store.FailNext = errors.New("datastore down")
	if err := sess.DeleteGuest(context.Background(), guestID); err == nil {
		t.Fatal("DeleteGuest succeeded despite store failure")
	}
	if got := len(sess.Guests()); got != 1 {
		t.Fatalf("len(guests) after failed delete = %d, want 1", got)
	}

	if err := sess.DeleteGuest(context.Background(), guestID); err != nil {
		t.Fatalf("DeleteGuest: %v", err)
	}
	if got := len(sess.Guests()); got != 0 {
		t.Fatalf("len(guests) after delete = %d, want 0", got)
	}
}

func TestGuestOpsRequirePlan(t *testing.T) {
	sess := New(remote.NewMemory())

	if err := sess.AddGuest(context.Background(), "Ana", 1, ""); !errors.Is(err, ErrNoPlan) {
		t.Fatalf("AddGuest err = %v, want ErrNoPlan", err)
	}
	if err := sess.UpdateGuest(context.Background(), "g", GuestPatch{}); !errors.Is(err, ErrNoPlan) {
		t.Fatalf("UpdateGuest err = %v, want ErrNoPlan", err)
	}
	if err := sess.DeleteGuest(context.Background(), "g"); !errors.Is(err, ErrNoPlan) {
		t.Fatalf("DeleteGuest err = %v, want ErrNoPlan", err)
	}
}
