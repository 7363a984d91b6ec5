// Package stats computes rolling delivery metrics from run history.
package stats

import (
	"math"
	"time"

	"simci/internal/model"
)

// Summary is the metrics document served on /api/stats.
type Summary struct {
	DeploysToday      int     `json:"deploys_today"`
	SuccessRate       float64 `json:"success_rate"`
	ChangeFailureRate float64 `json:"cfr"`
	AvgDurationS      int     `json:"avg_duration"`
	MTTRMinutes       int     `json:"mttr_minutes"`
}

const window = 7 * 24 * time.Hour

// Compute derives the summary from history at the given instant. An empty
// history yields the zero summary, never an error.
func Compute(history []model.Run, now time.Time) Summary {
	now = now.UTC()

	type finished struct {
		run model.Run
		at  time.Time
	}
	var last7 []finished
	var today int
	for _, r := range history {
		at, ok := r.FinishedTime()
		if !ok {
			continue
		}
		at = at.UTC()
		y1, m1, d1 := at.Date()
		y2, m2, d2 := now.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			today++
		}
		if now.Sub(at) <= window {
			last7 = append(last7, finished{r, at})
		}
	}

	s := Summary{DeploysToday: today}
	if len(last7) == 0 {
		return s
	}

	var successes, failures, durTotal, durCount int
	for _, f := range last7 {
		switch f.run.Status {
		case model.StatusSuccess:
			successes++
		case model.StatusFailed:
			failures++
		}
		if f.run.DurationS > 0 {
			durTotal += f.run.DurationS
			durCount++
		}
	}

	total := len(last7)
	s.SuccessRate = round1(float64(successes) / float64(total) * 100)
	s.ChangeFailureRate = round1(float64(failures) / float64(total) * 100)
	if durCount > 0 {
		s.AvgDurationS = durTotal / durCount
	}

	// MTTR: for every failure in the window, the gap to the earliest later
	// success of the same job. Failures with no later success contribute
	// nothing.
	var recoveries []float64
	for _, f := range last7 {
		if f.run.Status != model.StatusFailed {
			continue
		}
		var recoveredAt time.Time
		for _, cand := range last7 {
			if cand.run.Job != f.run.Job || cand.run.Status != model.StatusSuccess {
				continue
			}
			if !cand.at.After(f.at) {
				continue
			}
			if recoveredAt.IsZero() || cand.at.Before(recoveredAt) {
				recoveredAt = cand.at
			}
		}
		if !recoveredAt.IsZero() {
			recoveries = append(recoveries, recoveredAt.Sub(f.at).Minutes())
		}
	}
	if len(recoveries) > 0 {
		var sum float64
		for _, m := range recoveries {
			sum += m
		}
		s.MTTRMinutes = int(sum / float64(len(recoveries)))
	}

	return s
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
