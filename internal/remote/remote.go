// Package remote defines the datastore shared between aisle clients and
// its backends. The plan is stored as one JSON document per row; guests
// are stored as individual rows keyed by plan id.
package remote

import (
	"context"
	"errors"

	"aisle/internal/model"
)

// ErrNotFound is returned when no row matches a lookup. A wrong passcode
// and a missing plan are indistinguishable on purpose.
var ErrNotFound = errors.New("not found")

// Datastore is the storage contract for plans and guests. Backends must
// be safe for concurrent use by the session store and the sync loop.
type Datastore interface {
	// SavePlan upserts the full plan document keyed by plan id.
	SavePlan(ctx context.Context, plan *model.WeddingPlan) error

	// PlanByLogin returns the plan matching name and passcode exactly.
	PlanByLogin(ctx context.Context, name, passcode string) (*model.WeddingPlan, error)

	// PlanByID returns the plan matching id and passcode exactly.
	PlanByID(ctx context.Context, id, passcode string) (*model.WeddingPlan, error)

	// Guests returns all guest rows for the plan, in insertion order.
	Guests(ctx context.Context, planID string) ([]model.Guest, error)

	// InsertGuest adds one guest row for the plan.
	InsertGuest(ctx context.Context, planID string, guest model.Guest) error

	// UpdateGuest replaces the guest row matching id and plan id.
	UpdateGuest(ctx context.Context, planID string, guest model.Guest) error

	// DeleteGuest removes the guest row matching id and plan id.
	DeleteGuest(ctx context.Context, planID, guestID string) error

	// Close releases any resources held by the backend.
	Close() error
}
