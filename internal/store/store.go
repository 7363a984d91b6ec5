package store

// Document keys used by the run tracker.
const (
	KeyBuilds  = "builds"
	KeyHistory = "history"
)

// Store is the persistence port for JSON-shaped documents and per-run text
// logs. A missing or corrupt document is not an error: Load leaves out
// untouched so the caller's default survives. Log writes are best-effort.
type Store interface {
	// Load unmarshals the document stored at key into out and reports
	// whether anything was loaded. out must be a pointer.
	Load(key string, out any) bool
	// Save overwrites the document at key.
	Save(key string, doc any) error
	// AppendLog appends one line (newline added) to the run's log stream,
	// creating the stream if absent.
	AppendLog(runID, line string) error
	// ReadLog returns the full log text, or "" when the stream is absent.
	ReadLog(runID string) string
	// ClearAll deletes every document and every log stream.
	ClearAll() error
}
