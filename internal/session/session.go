// Package session owns the in-memory state for one active wedding plan.
//
// A Session is constructed when a plan is created or opened and torn down
// on logout; it is the only writer of the current plan and guest list.
// Every mutation goes through the session, produces a new immutable plan
// snapshot (structural sharing, never in-place edits), and signals the
// change channel so the sync layer can schedule a push.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"aisle/internal/model"
	"aisle/internal/remote"
)

// Session is the authoritative holder of the current plan and guests.
type Session struct {
	store remote.Datastore

	mu     sync.Mutex
	plan   *model.WeddingPlan
	guests []model.Guest

	changed chan struct{}
}

// New returns a session bound to the given datastore, with no plan
// loaded. Vendor, tag, and item operations are no-ops until a plan is
// created or opened.
func New(store remote.Datastore) *Session {
	return &Session{
		store:   store,
		changed: make(chan struct{}, 1),
	}
}

// Changed signals after each plan mutation. The channel is buffered with
// depth one; a burst of mutations coalesces into a single signal.
func (s *Session) Changed() <-chan struct{} {
	return s.changed
}

// Plan returns the current plan snapshot, or nil when logged out. The
// snapshot is immutable; callers must not modify it.
func (s *Session) Plan() *model.WeddingPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

// Guests returns a copy of the current guest list.
func (s *Session) Guests() []model.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Guest(nil), s.guests...)
}

// CreatePlan creates a new empty plan, persists it, and makes it current.
// A failed initial save is logged, not fatal; the next push retries it.
func (s *Session) CreatePlan(ctx context.Context, name, passcode string) *model.WeddingPlan {
	plan := &model.WeddingPlan{
		ID:        uuid.NewString(),
		Name:      name,
		Passcode:  passcode,
		Vendors:   []model.Vendor{},
		CreatedAt: time.Now().UnixMilli(),
	}

	if err := s.store.SavePlan(ctx, plan); err != nil {
		slog.Warn("initial plan save failed", "plan", plan.ID, "error", err)
	}

	s.mu.Lock()
	s.plan = plan
	s.guests = nil
	s.mu.Unlock()

	return plan
}

// Login opens the plan matching name and passcode. Remote failures and
// passcode mismatches both report false; nothing is thrown past here.
func (s *Session) Login(ctx context.Context, name, passcode string) bool {
	plan, err := s.store.PlanByLogin(ctx, name, passcode)
	if err != nil {
		slog.Debug("login failed", "name", name, "error", err)
		return false
	}
	s.open(ctx, plan)
	return true
}

// Open opens the plan matching id and passcode, the direct-link path.
func (s *Session) Open(ctx context.Context, planID, passcode string) bool {
	plan, err := s.store.PlanByID(ctx, planID, passcode)
	if err != nil {
		slog.Debug("open failed", "plan", planID, "error", err)
		return false
	}
	s.open(ctx, plan)
	return true
}

func (s *Session) open(ctx context.Context, plan *model.WeddingPlan) {
	guests, err := s.store.Guests(ctx, plan.ID)
	if err != nil {
		slog.Warn("loading guests failed", "plan", plan.ID, "error", err)
		guests = nil
	}

	s.mu.Lock()
	s.plan = plan
	s.guests = guests
	s.mu.Unlock()
}

// Logout clears the current plan and guest list.
func (s *Session) Logout() {
	s.mu.Lock()
	s.plan = nil
	s.guests = nil
	s.mu.Unlock()
}

// ApplyRemote replaces local state with a freshly pulled plan and guest
// list. Remote wins: local edits that were not pushed yet are discarded.
// The change channel is not signaled, so a pull never schedules a push.
func (s *Session) ApplyRemote(plan *model.WeddingPlan, guests []model.Guest) {
	s.mu.Lock()
	s.plan = plan
	s.guests = guests
	s.mu.Unlock()
}

// replace installs a new plan snapshot and signals the change channel.
// Callers must not hold the mutex. A nil or identical snapshot (an id
// that was not found) is dropped without a signal.
func (s *Session) replace(prev, next *model.WeddingPlan) {
	if next == nil || next == prev {
		return
	}

	s.mu.Lock()
	// The plan may have been swapped by a pull while the caller built
	// its snapshot; only install snapshots derived from the live plan.
	if s.plan != prev {
		s.mu.Unlock()
		return
	}
	s.plan = next
	s.mu.Unlock()

	select {
	case s.changed <- struct{}{}:
	default:
	}
}
