package remote

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"aisle/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plans (
    id        TEXT PRIMARY KEY,
    name      TEXT NOT NULL,
    passcode  TEXT NOT NULL,
    data      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS guests (
    id        TEXT PRIMARY KEY,
    plan_id   TEXT NOT NULL,
    name      TEXT NOT NULL,
    occupancy INTEGER NOT NULL DEFAULT 1,
    tag       TEXT NOT NULL DEFAULT '',
    selected  INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_plans_name ON plans(name);
CREATE INDEX IF NOT EXISTS idx_guests_plan ON guests(plan_id);
`

var _ Datastore = (*SQLite)(nil)

// SQLite is a Datastore backed by a SQLite file. The file usually lives
// on a shared location so several clients can point at the same plans.
type SQLite struct {
	db *sql.DB
}

// Open opens or creates the datastore at the given path.
func Open(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating datastore dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening datastore: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// SavePlan upserts the plan row, serializing the whole tree into the
// data column.
func (s *SQLite) SavePlan(ctx context.Context, plan *model.WeddingPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO plans (id, name, passcode, data) VALUES (?, ?, ?, ?)`,
		plan.ID, plan.Name, plan.Passcode, string(data),
	)
	if err != nil {
		return fmt.Errorf("saving plan %s: %w", plan.ID, err)
	}
	return nil
}

func (s *SQLite) PlanByLogin(ctx context.Context, name, passcode string) (*model.WeddingPlan, error) {
	return s.queryPlan(ctx, "SELECT data FROM plans WHERE name = ? AND passcode = ?", name, passcode)
}

func (s *SQLite) PlanByID(ctx context.Context, id, passcode string) (*model.WeddingPlan, error) {
	return s.queryPlan(ctx, "SELECT data FROM plans WHERE id = ? AND passcode = ?", id, passcode)
}

func (s *SQLite) queryPlan(ctx context.Context, query string, args ...any) (*model.WeddingPlan, error) {
	var data string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up plan: %w", err)
	}

	var plan model.WeddingPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("decoding plan document: %w", err)
	}
	return &plan, nil
}

// Guests returns the guest rows for the plan in insertion order.
func (s *SQLite) Guests(ctx context.Context, planID string) ([]model.Guest, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, occupancy, tag, selected FROM guests WHERE plan_id = ? ORDER BY rowid",
		planID,
	)
	if err != nil {
		return nil, fmt.Errorf("loading guests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var guests []model.Guest
	for rows.Next() {
		var g model.Guest
		var selected int
		if err := rows.Scan(&g.ID, &g.Name, &g.Occupancy, &g.Group, &selected); err != nil {
			return nil, fmt.Errorf("scanning guest row: %w", err)
		}
		g.Selected = selected != 0
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (s *SQLite) InsertGuest(ctx context.Context, planID string, guest model.Guest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO guests (id, plan_id, name, occupancy, tag, selected) VALUES (?, ?, ?, ?, ?, ?)`,
		guest.ID, planID, guest.Name, guest.Occupancy, guest.Group, boolToInt(guest.Selected),
	)
	if err != nil {
		return fmt.Errorf("inserting guest %s: %w", guest.ID, err)
	}
	return nil
}

func (s *SQLite) UpdateGuest(ctx context.Context, planID string, guest model.Guest) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE guests SET name = ?, occupancy = ?, tag = ?, selected = ? WHERE id = ? AND plan_id = ?`,
		guest.Name, guest.Occupancy, guest.Group, boolToInt(guest.Selected), guest.ID, planID,
	)
	if err != nil {
		return fmt.Errorf("updating guest %s: %w", guest.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) DeleteGuest(ctx context.Context, planID, guestID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM guests WHERE id = ? AND plan_id = ?",
		guestID, planID,
	)
	if err != nil {
		return fmt.Errorf("deleting guest %s: %w", guestID, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
