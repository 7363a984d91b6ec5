package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is a step's simulated duration bounds in seconds.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Schedule declares a cron-triggered job.
type Schedule struct {
	Job  string `yaml:"job"`
	Cron string `yaml:"cron"`
}

// Catalog maps jobs to their ordered step lists plus per-step timing ranges
// and failure probabilities. It is loaded once at startup and read-only
// afterwards.
type Catalog struct {
	Pipelines map[string][]string `yaml:"pipelines"`
	StepTime  map[string]Range    `yaml:"step_time"`
	FailProb  map[string]float64  `yaml:"fail_prob"`
	Schedules []Schedule          `yaml:"schedules"`
}

// Defaults for steps without an explicit catalog entry.
const (
	DefaultMinSeconds = 0.8
	DefaultMaxSeconds = 1.8
	DefaultFailProb   = 0.10
)

// fallbackSteps is used for jobs the catalog does not know. Unknown jobs
// degrade to this sequence instead of being rejected.
var fallbackSteps = []string{"checkout", "unit-tests", "deploy-staging"}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Pipelines: map[string][]string{
			"app-ci": {
				"checkout",
				"install-deps",
				"lint",
				"unit-tests",
				"build-artifact",
				"deploy-staging",
			},
			"api-ci": {
				"checkout",
				"install-deps",
				"unit-tests",
				"integration-tests",
				"security-scan",
				"docker-build",
				"deploy-prod",
			},
		},
		StepTime: map[string]Range{
			"checkout":          {0.4, 0.9},
			"install-deps":      {0.8, 1.6},
			"lint":              {0.6, 1.4},
			"unit-tests":        {1.0, 2.5},
			"integration-tests": {1.3, 3.0},
			"security-scan":     {1.0, 2.8},
			"build-artifact":    {0.8, 1.8},
			"docker-build":      {1.2, 3.2},
			"deploy-staging":    {0.9, 2.0},
			"deploy-prod":       {1.2, 2.6},
		},
		FailProb: map[string]float64{
			"checkout":          0.01,
			"install-deps":      0.04,
			"lint":              0.10,
			"unit-tests":        0.12,
			"integration-tests": 0.18,
			"security-scan":     0.22,
			"build-artifact":    0.05,
			"docker-build":      0.08,
			"deploy-staging":    0.10,
			"deploy-prod":       0.16,
		},
	}
}

// LoadFile parses a YAML catalog. Sections left empty in the file fall back
// to the built-in defaults, so an override file may declare only pipelines
// and schedules.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	def := Default()
	if len(cat.Pipelines) == 0 {
		cat.Pipelines = def.Pipelines
	}
	if len(cat.StepTime) == 0 {
		cat.StepTime = def.StepTime
	}
	if len(cat.FailProb) == 0 {
		cat.FailProb = def.FailProb
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	for job, steps := range c.Pipelines {
		if len(steps) == 0 {
			return fmt.Errorf("pipeline %s has no steps", job)
		}
	}
	for step, r := range c.StepTime {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("step %s has invalid time range (%v, %v)", step, r.Min, r.Max)
		}
	}
	for step, p := range c.FailProb {
		if p < 0 || p > 1 {
			return fmt.Errorf("step %s has invalid failure probability %v", step, p)
		}
	}
	for i, sched := range c.Schedules {
		if sched.Job == "" {
			return fmt.Errorf("schedule %d is missing a job", i)
		}
		if sched.Cron == "" {
			return fmt.Errorf("schedule %d requires a cron expression", i)
		}
	}
	return nil
}

// StepsFor returns a copy of the job's step sequence, or the fallback
// sequence for unknown jobs. It never fails.
func (c *Catalog) StepsFor(job string) []string {
	steps, ok := c.Pipelines[job]
	if !ok {
		steps = fallbackSteps
	}
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

// TimeFor returns the step's duration range, defaulting when unconfigured.
func (c *Catalog) TimeFor(step string) Range {
	if r, ok := c.StepTime[step]; ok {
		return r
	}
	return Range{DefaultMinSeconds, DefaultMaxSeconds}
}

// FailProbFor returns the step's failure probability, defaulting when
// unconfigured.
func (c *Catalog) FailProbFor(step string) float64 {
	if p, ok := c.FailProb[step]; ok {
		return p
	}
	return DefaultFailProb
}
