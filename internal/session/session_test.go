package session

import (
	"context"
	"errors"
	"testing"

	"aisle/internal/remote"
)

func newTestSession(t *testing.T) (*Session, *remote.Memory) {
	t.Helper()
	store := remote.NewMemory()
	sess := New(store)
	if plan := sess.CreatePlan(context.Background(), "Test Wedding", "secret"); plan == nil {
		t.Fatal("CreatePlan returned nil")
	}
	return sess, store
}

func drainChanged(sess *Session) {
	select {
	case <-sess.Changed():
	default:
	}
}

func TestCreatePlanPersists(t *testing.T) {
	sess, store := newTestSession(t)
	plan := sess.Plan()

	saved, err := store.PlanByID(context.Background(), plan.ID, "secret")
	if err != nil {
		t.Fatalf("PlanByID: %v", err)
	}
	if saved.Name != "Test Wedding" {
		t.Fatalf("saved name = %q, want %q", saved.Name, "Test Wedding")
	}
}

func TestCreatePlanSurvivesSaveFailure(t *testing.T) {
	store := remote.NewMemory()
	store.FailNext = errors.New("datastore down")

	sess := New(store)
	plan := sess.CreatePlan(context.Background(), "Offline Wedding", "secret")
	if plan == nil {
		t.Fatal("CreatePlan returned nil on save failure")
	}
	if sess.Plan() == nil {
		t.Fatal("plan not current after failed initial save")
	}
}

func TestLogin(t *testing.T) {
	sess, store := newTestSession(t)
	planID := sess.Plan().ID

	other := New(store)
	if !other.Login(context.Background(), "Test Wedding", "secret") {
		t.Fatal("Login failed with correct credentials")
	}
	if other.Plan().ID != planID {
		t.Fatalf("logged-in plan id = %q, want %q", other.Plan().ID, planID)
	}

	if other.Login(context.Background(), "Test Wedding", "wrong") {
		t.Fatal("Login succeeded with wrong passcode")
	}
}

func TestLogout(t *testing.T) {
	sess, _ := newTestSession(t)
	sess.Logout()

	if sess.Plan() != nil {
		t.Fatal("plan still set after logout")
	}
	if sess.AddVendor("Florist") != "" {
		t.Fatal("AddVendor succeeded after logout")
	}
}

func TestMutationsSignalChanged(t *testing.T) {
	sess, _ := newTestSession(t)
	drainChanged(sess)

	vid := sess.AddVendor("Catering")
	if vid == "" {
		t.Fatal("AddVendor returned empty id")
	}

	select {
	case <-sess.Changed():
	default:
		t.Fatal("no change signal after AddVendor")
	}

	// A burst of mutations coalesces into one buffered signal
	sess.AddVendor("Photography")
	sess.AddVendor("Florist")
	select {
	case <-sess.Changed():
	default:
		t.Fatal("no change signal after burst")
	}
	select {
	case <-sess.Changed():
		t.Fatal("burst produced more than one signal")
	default:
	}
}

func TestVendorTagItemLifecycle(t *testing.T) {
	sess, _ := newTestSession(t)

	vid := sess.AddVendor("Catering")
	tid := sess.AddTag(vid, "Buffet")
	iid := sess.AddItem(vid, tid, "Food", 50, 100_000)
	if tid == "" || iid == "" {
		t.Fatalf("AddTag/AddItem ids = %q, %q, want non-empty", tid, iid)
	}

	plan := sess.Plan()
	if len(plan.Vendors) != 1 || len(plan.Vendors[0].Tags) != 1 {
		t.Fatalf("tree shape = %d vendors, want 1 with 1 tag", len(plan.Vendors))
	}
	if plan.Vendors[0].Selected {
		t.Fatal("new vendor starts selected")
	}

	sess.ToggleItem(vid, tid, iid)
	plan = sess.Plan()
	if !plan.Vendors[0].Selected || !plan.Vendors[0].Tags[0].Selected {
		t.Fatal("item toggle did not cascade up")
	}

	name := "Dinner buffet"
	sess.UpdateTag(vid, tid, TagPatch{Name: &name})
	if got := sess.Plan().Vendors[0].Tags[0].Name; got != name {
		t.Fatalf("tag name = %q, want %q", got, name)
	}

	sess.DeleteItem(vid, tid, iid)
	if got := len(sess.Plan().Vendors[0].Tags[0].Items); got != 0 {
		t.Fatalf("items after delete = %d, want 0", got)
	}

	sess.DeleteVendor(vid)
	if got := len(sess.Plan().Vendors); got != 0 {
		t.Fatalf("vendors after delete = %d, want 0", got)
	}
}

func TestUnknownIDsDoNotSignal(t *testing.T) {
	sess, _ := newTestSession(t)
	sess.AddVendor("Catering")
	drainChanged(sess)

	sess.ToggleVendor("nope")
	sess.DeleteVendor("nope")
	sess.UpdateVendor("nope", VendorPatch{})
	if sess.AddTag("nope", "Buffet") != "" {
		t.Fatal("AddTag under unknown vendor returned an id")
	}

	select {
	case <-sess.Changed():
		t.Fatal("no-op mutation signaled a change")
	default:
	}
}

func TestSnapshotImmutability(t *testing.T) {
	sess, _ := newTestSession(t)
	vid := sess.AddVendor("Catering")

	before := sess.Plan()
	sess.ToggleVendor(vid)
	after := sess.Plan()

	if before == after {
		t.Fatal("toggle did not produce a new snapshot")
	}
	if before.Vendors[0].Selected {
		t.Fatal("old snapshot was mutated")
	}
	if !after.Vendors[0].Selected {
		t.Fatal("new snapshot missing the toggle")
	}
}

func TestApplyRemoteWinsSilently(t *testing.T) {
	sess, store := newTestSession(t)
	sess.AddVendor("Catering")
	drainChanged(sess)

	remotePlan, err := store.PlanByID(context.Background(), sess.Plan().ID, "secret")
	if err != nil {
		t.Fatalf("PlanByID: %v", err)
	}
	sess.ApplyRemote(remotePlan, nil)

	// The pulled copy predates the local vendor; remote wins
	if got := len(sess.Plan().Vendors); got != 0 {
		t.Fatalf("vendors after pull = %d, want 0", got)
	}

	select {
	case <-sess.Changed():
		t.Fatal("pull signaled a change")
	default:
	}
}
