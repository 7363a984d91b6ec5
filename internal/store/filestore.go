package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileStore keeps each document as a pretty-printed JSON file under dir and
// each run log as logs/<run_id>.log. It serializes its own file access; list
// level read-modify-write atomicity is the tracker's job.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) docPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) logPath(runID string) string {
	// run ids are generated internally, but never trust them as path parts
	return filepath.Join(s.dir, "logs", filepath.Base(runID)+".log")
}

func (s *FileStore) Load(key string, out any) bool {
	data, err := os.ReadFile(s.docPath(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("corrupt document ignored", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *FileStore) Save(key string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.docPath(key), data, 0o644)
}

func (s *FileStore) AppendLog(runID, line string) error {
	f, err := os.OpenFile(s.logPath(runID), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(strings.TrimRight(line, "\n") + "\n")
	return err
}

func (s *FileStore) ReadLog(runID string) string {
	data, err := os.ReadFile(s.logPath(runID))
	if err != nil {
		return ""
	}
	return string(data)
}

func (s *FileStore) ClearAll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			s.logger.Warn("remove document failed", zap.String("name", entry.Name()), zap.Error(err))
		}
	}
	logs, err := filepath.Glob(filepath.Join(s.dir, "logs", "*.log"))
	if err != nil {
		return err
	}
	for _, p := range logs {
		if err := os.Remove(p); err != nil {
			s.logger.Warn("remove log failed", zap.String("path", p), zap.Error(err))
		}
	}
	return nil
}
