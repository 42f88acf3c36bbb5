package remote

import (
	"context"
	"encoding/json"
	"sync"

	"aisle/internal/model"
)

var _ Datastore = (*Memory)(nil)

// Memory is an in-process Datastore. It backs tests and the offline
// fallback mode where no datastore file is configured. Plans are stored
// as encoded documents so reads return independent copies, matching the
// SQLite backend.
type Memory struct {
	mu     sync.Mutex
	plans  map[string]memoryPlan
	guests map[string][]model.Guest // keyed by plan id, insertion order

	// FailNext makes the next mutating call fail with the given error,
	// then clears itself. Used to exercise failure paths in tests.
	FailNext error
}

type memoryPlan struct {
	name     string
	passcode string
	data     []byte
}

// NewMemory returns an empty in-memory datastore.
func NewMemory() *Memory {
	return &Memory{
		plans:  make(map[string]memoryPlan),
		guests: make(map[string][]model.Guest),
	}
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }

func (m *Memory) takeFailure() error {
	err := m.FailNext
	m.FailNext = nil
	return err
}

func (m *Memory) SavePlan(_ context.Context, plan *model.WeddingPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	m.plans[plan.ID] = memoryPlan{name: plan.Name, passcode: plan.Passcode, data: data}
	return nil
}

func (m *Memory) PlanByLogin(_ context.Context, name, passcode string) (*model.WeddingPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.plans {
		if p.name == name && p.passcode == passcode {
			return decodePlan(p.data)
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) PlanByID(_ context.Context, id, passcode string) (*model.WeddingPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.plans[id]
	if !ok || p.passcode != passcode {
		return nil, ErrNotFound
	}
	return decodePlan(p.data)
}

func (m *Memory) Guests(_ context.Context, planID string) ([]model.Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]model.Guest(nil), m.guests[planID]...), nil
}

func (m *Memory) InsertGuest(_ context.Context, planID string, guest model.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	m.guests[planID] = append(m.guests[planID], guest)
	return nil
}

func (m *Memory) UpdateGuest(_ context.Context, planID string, guest model.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	for i, g := range m.guests[planID] {
		if g.ID == guest.ID {
			m.guests[planID][i] = guest
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteGuest(_ context.Context, planID, guestID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	guests := m.guests[planID]
	for i, g := range guests {
		if g.ID == guestID {
			m.guests[planID] = append(guests[:i:i], guests[i+1:]...)
			return nil
		}
	}
	return nil
}

func decodePlan(data []byte) (*model.WeddingPlan, error) {
	var plan model.WeddingPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
