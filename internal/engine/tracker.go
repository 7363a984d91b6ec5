package engine

import (
	"sync"

	"go.uber.org/zap"

	"simci/internal/model"
	"simci/internal/store"
)

// currentCap bounds the current-runs list; oldest-by-recency entries are
// evicted first.
const currentCap = 100

// Tracker is the serialized accessor for the two shared documents: the
// current-runs list and the history list. Every read-modify-write goes
// through one mutex so concurrent run goroutines and HTTP readers never
// lose each other's entries. Persistence failures are logged, not
// propagated; the next snapshot overwrites anyway.
type Tracker struct {
	mu     sync.Mutex
	store  store.Store
	logger *zap.Logger
}

func NewTracker(st store.Store, logger *zap.Logger) *Tracker {
	return &Tracker{store: st, logger: logger}
}

// UpsertCurrent replaces any entry with the same run id, inserts the run at
// the front, truncates to the cap and persists the list.
func (t *Tracker) UpsertCurrent(run model.Run) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var current []model.Run
	t.store.Load(store.KeyBuilds, &current)

	kept := make([]model.Run, 0, len(current)+1)
	kept = append(kept, run)
	for _, r := range current {
		if r.ID != run.ID {
			kept = append(kept, r)
		}
	}
	if len(kept) > currentCap {
		kept = kept[:currentCap]
	}
	if err := t.store.Save(store.KeyBuilds, kept); err != nil {
		t.logger.Warn("save current runs failed", zap.String("run_id", run.ID), zap.Error(err))
	}
}

// AppendHistory appends a terminal run to the history document.
func (t *Tracker) AppendHistory(run model.Run) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var hist []model.Run
	t.store.Load(store.KeyHistory, &hist)
	hist = append(hist, run)
	if err := t.store.Save(store.KeyHistory, hist); err != nil {
		t.logger.Warn("append history failed", zap.String("run_id", run.ID), zap.Error(err))
	}
}

// Current returns the current-runs list, most-recent-first.
func (t *Tracker) Current() []model.Run {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := []model.Run{}
	t.store.Load(store.KeyBuilds, &current)
	return current
}

// History returns the full history, oldest-first.
func (t *Tracker) History() []model.Run {
	t.mu.Lock()
	defer t.mu.Unlock()

	hist := []model.Run{}
	t.store.Load(store.KeyHistory, &hist)
	return hist
}

// Reset clears all persisted documents and logs. In-flight runs are not
// cancelled; a live run re-persists itself at its next step boundary.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.ClearAll()
}
