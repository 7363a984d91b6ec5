package model

import "time"

const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// TimeLayout is the wire format for run timestamps: ISO-8601 UTC with
// seconds precision. It parses back with time.RFC3339.
const TimeLayout = "2006-01-02T15:04:05Z"

// Run is the snapshot document for one pipeline execution. The same shape
// is persisted to the current-runs list and, once terminal, to history.
type Run struct {
	ID          string   `json:"id"`
	Job         string   `json:"job"`
	Status      string   `json:"status"`
	Steps       []string `json:"steps"`
	CurrentStep string   `json:"current_step,omitempty"`
	StartedAt   string   `json:"started_at"`
	FinishedAt  string   `json:"finished_at,omitempty"`
	DurationS   int      `json:"duration_s,omitempty"`
}

// Terminal reports whether the run has reached its final status.
func (r Run) Terminal() bool {
	return r.Status == StatusSuccess || r.Status == StatusFailed
}

// FinishedTime parses FinishedAt. The zero time and false are returned for
// runs that are still in flight or carry an unparseable timestamp.
func (r Run) FinishedTime() (time.Time, bool) {
	if r.FinishedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, r.FinishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatTime renders t in the run timestamp wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
