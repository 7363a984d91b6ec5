package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"simci/internal/catalog"
	"simci/internal/model"
	"simci/internal/store"
)

// Engine drives simulated pipeline runs. Each started run gets its own
// goroutine that walks the job's step sequence, persisting a snapshot after
// every externally visible state change and appending the terminal state to
// history exactly once.
type Engine struct {
	cat     *catalog.Catalog
	sim     *Simulator
	tracker *Tracker
	store   store.Store
	logger  *zap.Logger
	wg      sync.WaitGroup

	// Sleep and Now are test seams; defaults are time.Sleep and time.Now.
	Sleep func(time.Duration)
	Now   func() time.Time
}

func New(cat *catalog.Catalog, sim *Simulator, tracker *Tracker, st store.Store, logger *zap.Logger) *Engine {
	return &Engine{
		cat:     cat,
		sim:     sim,
		tracker: tracker,
		store:   st,
		logger:  logger,
		Sleep:   time.Sleep,
		Now:     time.Now,
	}
}

// Tracker exposes the shared run-state accessor for the query surface.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// StartRun creates a run for job and executes it in the background,
// returning the new run id immediately. Unknown jobs fall back to the
// default step sequence and still run.
func (e *Engine) StartRun(job string) string {
	steps := e.cat.StepsFor(job)
	run := model.Run{
		ID:        uuid.New().String()[:8],
		Job:       job,
		Status:    model.StatusRunning,
		Steps:     steps,
		StartedAt: model.FormatTime(e.Now()),
	}
	if len(steps) > 0 {
		run.CurrentStep = steps[0]
	}
	e.tracker.UpsertCurrent(run)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.execute(run)
	}()

	e.logger.Info("run started",
		zap.String("run_id", run.ID),
		zap.String("job", job),
		zap.Int("steps", len(steps)))
	return run.ID
}

// Wait blocks until every in-flight run has finished. Used by graceful
// shutdown and by tests.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// execute walks the run through its steps. Steps are strictly sequential;
// the only suspension point is the simulated step delay, and no tracker
// lock is held across it.
func (e *Engine) execute(run model.Run) {
	start := e.Now()
	e.appendLog(run.ID, fmt.Sprintf("Run %s started (job=%s)", run.ID, run.Job))

	for _, step := range run.Steps {
		run.CurrentStep = step
		e.tracker.UpsertCurrent(run)

		e.appendLog(run.ID, fmt.Sprintf("Step '%s' started", step))
		result := e.sim.Step(step)
		e.Sleep(result.Duration)
		e.appendLog(run.ID, result.Output)

		if result.Failed {
			e.appendLog(run.ID, fmt.Sprintf("Step '%s' FAILED", step))
			e.finish(&run, model.StatusFailed, start)
			return
		}
		e.appendLog(run.ID, fmt.Sprintf("Step '%s' OK", step))
	}

	e.finish(&run, model.StatusSuccess, start)
}

// finish performs the single terminal transition: it stamps the run,
// persists the final snapshot and appends it to history.
func (e *Engine) finish(run *model.Run, status string, start time.Time) {
	now := e.Now()
	run.Status = status
	run.FinishedAt = model.FormatTime(now)
	run.DurationS = int(now.Sub(start).Seconds())
	run.CurrentStep = ""

	e.appendLog(run.ID, fmt.Sprintf("Run %s finished with status=%s", run.ID, status))
	e.tracker.UpsertCurrent(*run)
	e.tracker.AppendHistory(*run)

	e.logger.Info("run finished",
		zap.String("run_id", run.ID),
		zap.String("job", run.Job),
		zap.String("status", status),
		zap.Int("duration_s", run.DurationS))
}

// appendLog writes one timestamped line to the run's log stream. Log write
// failures never abort a run.
func (e *Engine) appendLog(runID, line string) {
	stamped := fmt.Sprintf("[%s] %s", model.FormatTime(e.Now()), line)
	if err := e.store.AppendLog(runID, stamped); err != nil {
		e.logger.Warn("append run log failed", zap.String("run_id", runID), zap.Error(err))
	}
}
