// Package scheduler fires catalog-declared cron triggers into the engine.
package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"simci/internal/catalog"
	"simci/internal/engine"
)

type Scheduler struct {
	cron   *cron.Cron
	engine *engine.Engine
	logger *zap.Logger
}

func New(e *engine.Engine, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		engine: e,
		logger: logger,
	}
}

// Load registers every schedule from the catalog. A bad cron expression
// skips that entry; the rest still run.
func (s *Scheduler) Load(schedules []catalog.Schedule) {
	for _, sched := range schedules {
		job := sched.Job
		_, err := s.cron.AddFunc(sched.Cron, func() {
			runID := s.engine.StartRun(job)
			s.logger.Info("scheduled run triggered",
				zap.String("job", job),
				zap.String("run_id", runID))
		})
		if err != nil {
			s.logger.Error("invalid cron schedule skipped",
				zap.String("job", job),
				zap.String("cron", sched.Cron),
				zap.Error(err))
			continue
		}
		s.logger.Info("schedule registered",
			zap.String("job", job),
			zap.String("cron", sched.Cron))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop; already-fired runs keep going.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
