package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsForKnownJob(t *testing.T) {
	cat := Default()

	steps := cat.StepsFor("api-ci")
	require.Len(t, steps, 7)
	assert.Equal(t, "checkout", steps[0])
	assert.Equal(t, "deploy-prod", steps[6])
}

func TestStepsForUnknownJobFallsBack(t *testing.T) {
	cat := Default()

	steps := cat.StepsFor("no-such-job")
	assert.Equal(t, []string{"checkout", "unit-tests", "deploy-staging"}, steps)
}

func TestStepsForReturnsCopy(t *testing.T) {
	cat := Default()

	steps := cat.StepsFor("app-ci")
	steps[0] = "mutated"
	assert.Equal(t, "checkout", cat.StepsFor("app-ci")[0])
}

func TestStepDefaults(t *testing.T) {
	cat := Default()

	r := cat.TimeFor("unknown-step")
	assert.Equal(t, DefaultMinSeconds, r.Min)
	assert.Equal(t, DefaultMaxSeconds, r.Max)
	assert.Equal(t, DefaultFailProb, cat.FailProbFor("unknown-step"))

	r = cat.TimeFor("checkout")
	assert.Equal(t, 0.4, r.Min)
	assert.Equal(t, 0.01, cat.FailProbFor("checkout"))
}

func TestLoadFile(t *testing.T) {
	content := `
pipelines:
  web-ci: [checkout, unit-tests, deploy-prod]
step_time:
  checkout: {min: 0.1, max: 0.2}
fail_prob:
  checkout: 0.5
schedules:
  - job: web-ci
    cron: "*/5 * * * *"
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"checkout", "unit-tests", "deploy-prod"}, cat.StepsFor("web-ci"))
	assert.Equal(t, Range{0.1, 0.2}, cat.TimeFor("checkout"))
	assert.Equal(t, 0.5, cat.FailProbFor("checkout"))
	require.Len(t, cat.Schedules, 1)
	assert.Equal(t, "web-ci", cat.Schedules[0].Job)

	// unconfigured steps still use built-in defaults
	assert.Equal(t, DefaultFailProb, cat.FailProbFor("mystery-step"))
}

func TestLoadFileEmptySectionsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("schedules: []\n"), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cat.StepsFor("app-ci"), 6)
}

func TestLoadFileInvalid(t *testing.T) {
	cases := map[string]string{
		"empty pipeline":   "pipelines:\n  broken: []\n",
		"bad range":        "step_time:\n  checkout: {min: 2.0, max: 1.0}\n",
		"bad probability":  "fail_prob:\n  checkout: 1.5\n",
		"schedule no cron": "schedules:\n  - job: app-ci\n",
		"schedule no job":  "schedules:\n  - cron: '* * * * *'\n",
		"not yaml at all":  "{{{{",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}
