package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"aisle/internal/model"
)

// ErrNoPlan is returned by guest operations when no plan is loaded.
var ErrNoPlan = errors.New("no plan loaded")

// GuestPatch holds optional guest field updates.
type GuestPatch struct {
	Name      *string
	Occupancy *int
	Group     *string
	Selected  *bool
}

// AddGuest inserts a guest locally first for immediate display, then
// persists it. A failed insert rolls the local entry back. New guests
// start selected so they count toward the head count right away.
func (s *Session) AddGuest(ctx context.Context, name string, occupancy int, group string) error {
	s.mu.Lock()
	if s.plan == nil {
		s.mu.Unlock()
		return ErrNoPlan
	}
	planID := s.plan.ID
	guest := model.Guest{
		ID:        uuid.NewString(),
		Name:      name,
		Occupancy: occupancy,
		Group:     group,
		Selected:  true,
	}
	s.guests = append(s.guests, guest)
	s.mu.Unlock()

	if err := s.store.InsertGuest(ctx, planID, guest); err != nil {
		slog.Warn("adding guest failed, rolling back", "guest", guest.ID, "error", err)
		s.removeGuestLocal(guest.ID)
		return err
	}
	return nil
}

// UpdateGuest persists the patched guest first and applies it locally
// only on success, leaving local state untouched on failure.
func (s *Session) UpdateGuest(ctx context.Context, guestID string, patch GuestPatch) error {
	s.mu.Lock()
	if s.plan == nil {
		s.mu.Unlock()
		return ErrNoPlan
	}
	planID := s.plan.ID

	var patched model.Guest
	found := false
	for _, g := range s.guests {
		if g.ID == guestID {
			patched = applyGuestPatch(g, patch)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil
	}

	if err := s.store.UpdateGuest(ctx, planID, patched); err != nil {
		slog.Warn("updating guest failed", "guest", guestID, "error", err)
		return err
	}

	s.mu.Lock()
	for i, g := range s.guests {
		if g.ID == guestID {
			s.guests[i] = patched
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// DeleteGuest removes the guest remotely first, then locally on success.
func (s *Session) DeleteGuest(ctx context.Context, guestID string) error {
	s.mu.Lock()
	if s.plan == nil {
		s.mu.Unlock()
		return ErrNoPlan
	}
	planID := s.plan.ID
	s.mu.Unlock()

	if err := s.store.DeleteGuest(ctx, planID, guestID); err != nil {
		slog.Warn("deleting guest failed", "guest", guestID, "error", err)
		return err
	}

	s.removeGuestLocal(guestID)
	return nil
}

func (s *Session) removeGuestLocal(guestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests := make([]model.Guest, 0, len(s.guests))
	for _, g := range s.guests {
		if g.ID != guestID {
			guests = append(guests, g)
		}
	}
	s.guests = guests
}

func applyGuestPatch(g model.Guest, patch GuestPatch) model.Guest {
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Occupancy != nil {
		g.Occupancy = *patch.Occupancy
	}
	if patch.Group != nil {
		g.Group = *patch.Group
	}
	if patch.Selected != nil {
		g.Selected = *patch.Selected
	}
	return g
}
