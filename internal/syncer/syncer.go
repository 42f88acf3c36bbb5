// Package syncer keeps the datastore eventually consistent with a live
// session: local mutations are pushed after a debounce quiet period, and
// a recurring pull replaces local state with the remote copy.
package syncer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"aisle/internal/remote"
	"aisle/internal/session"
)

// Config controls the sync cadence.
type Config struct {
	// PushDebounce is the quiet period after the last mutation before a
	// push fires. A burst of edits produces exactly one push reflecting
	// the final state.
	PushDebounce time.Duration

	// PullInterval is the period of the remote refresh ticker.
	PullInterval time.Duration
}

// Status is a snapshot of the syncer's bookkeeping.
type Status struct {
	LastSynced time.Time // last successful push
	LastPulled time.Time // last successful pull
	LastError  string
	PushCount  int64
	PullCount  int64
	Dirty      bool // local edits not yet pushed
}

// Syncer runs the push/pull loop for one session. Only one Run may be
// active per syncer; stopping a session means canceling Run's context
// and constructing a fresh syncer for the next login.
type Syncer struct {
	cfg   Config
	store remote.Datastore
	sess  *session.Session

	mu         sync.Mutex
	lastSynced time.Time
	lastPulled time.Time
	lastError  string
	pushCount  int64
	pullCount  int64
	dirty      bool
}

// New returns a syncer for the session. Zero config fields get the
// defaults: 500ms debounce, 15s pull interval.
func New(store remote.Datastore, sess *session.Session, cfg Config) *Syncer {
	if cfg.PushDebounce <= 0 {
		cfg.PushDebounce = 500 * time.Millisecond
	}
	if cfg.PullInterval <= 0 {
		cfg.PullInterval = 15 * time.Second
	}
	return &Syncer{cfg: cfg, store: store, sess: sess}
}

// Run processes session changes and pull ticks until ctx is canceled.
// Pending local edits are flushed once on the way out.
func (s *Syncer) Run(ctx context.Context) error {
	pull := time.NewTicker(s.cfg.PullInterval)
	defer pull.Stop()

	debounce := time.NewTimer(s.cfg.PushDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	armed := false

	for {
		select {
		case <-ctx.Done():
			if s.isDirty() {
				// Final flush with a fresh context; ctx is already dead.
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				s.pushOnce(flushCtx)
				cancel()
			}
			return ctx.Err()

		case <-s.sess.Changed():
			s.setDirty(true)
			if armed && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(s.cfg.PushDebounce)
			armed = true

		case <-debounce.C:
			armed = false
			s.pushOnce(ctx)

		case <-pull.C:
			if armed {
				// A push is pending; let it land before overwriting
				// local state with the remote copy.
				continue
			}
			if s.isDirty() {
				// The previous push failed. Retry it instead of pulling,
				// so unpushed edits are not silently discarded.
				s.pushOnce(ctx)
				continue
			}
			s.pullOnce(ctx)
		}
	}
}

// Flush pushes the current plan immediately, bypassing the debounce.
// One-shot commands use it before exiting.
func (s *Syncer) Flush(ctx context.Context) error {
	return s.pushOnce(ctx)
}

// Status returns a snapshot of the sync bookkeeping.
func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		LastSynced: s.lastSynced,
		LastPulled: s.lastPulled,
		LastError:  s.lastError,
		PushCount:  s.pushCount,
		PullCount:  s.pullCount,
		Dirty:      s.dirty,
	}
}

func (s *Syncer) pushOnce(ctx context.Context) error {
	plan := s.sess.Plan()
	if plan == nil {
		s.setDirty(false)
		return nil
	}

	err := s.store.SavePlan(ctx, plan)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastError = err.Error()
		slog.Warn("plan push failed", "plan", plan.ID, "error", err)
		return err
	}
	s.pushCount++
	s.lastSynced = time.Now()
	s.lastError = ""
	s.dirty = false
	return nil
}

func (s *Syncer) pullOnce(ctx context.Context) {
	current := s.sess.Plan()
	if current == nil {
		return
	}

	plan, err := s.store.PlanByID(ctx, current.ID, current.Passcode)
	if err != nil {
		s.recordPullError(err)
		return
	}
	guests, err := s.store.Guests(ctx, plan.ID)
	if err != nil {
		s.recordPullError(err)
		return
	}

	s.sess.ApplyRemote(plan, guests)

	s.mu.Lock()
	s.pullCount++
	s.lastPulled = time.Now()
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Syncer) recordPullError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	slog.Debug("pull skipped", "error", err)
}

func (s *Syncer) isDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Syncer) setDirty(d bool) {
	s.mu.Lock()
	s.dirty = d
	s.mu.Unlock()
}
