package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simci/internal/catalog"
	"simci/internal/engine"
	"simci/internal/store"
)

func newScheduler(t *testing.T) *Scheduler {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	cat := catalog.Default()
	eng := engine.New(cat, engine.NewSimulator(cat, 1), engine.NewTracker(st, zap.NewNop()), st, zap.NewNop())
	return New(eng, zap.NewNop())
}

func TestLoadRegistersSchedules(t *testing.T) {
	s := newScheduler(t)

	s.Load([]catalog.Schedule{
		{Job: "app-ci", Cron: "*/5 * * * *"},
		{Job: "api-ci", Cron: "0 3 * * *"},
	})

	assert.Len(t, s.cron.Entries(), 2)
}

func TestLoadSkipsInvalidCron(t *testing.T) {
	s := newScheduler(t)

	s.Load([]catalog.Schedule{
		{Job: "app-ci", Cron: "not a cron expr"},
		{Job: "api-ci", Cron: "*/5 * * * *"},
	})

	assert.Len(t, s.cron.Entries(), 1)
}

func TestStartStop(t *testing.T) {
	s := newScheduler(t)
	s.Load([]catalog.Schedule{{Job: "app-ci", Cron: "*/5 * * * *"}})
	s.Start()
	s.Stop()
}
