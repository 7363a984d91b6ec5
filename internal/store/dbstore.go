package store

import (
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Document is one persisted JSON document, keyed like a file would be.
type Document struct {
	Key   string `gorm:"primaryKey;type:varchar(64)"`
	Value string `gorm:"type:text;not null"`
}

// LogLine is one appended line of a run's log stream, ordered by insertion.
type LogLine struct {
	ID    uint   `gorm:"primaryKey"`
	RunID string `gorm:"type:varchar(64);not null;index"`
	Line  string `gorm:"type:text;not null"`
}

// DBStore implements the persistence port on an embedded sqlite database
// via gorm. It is selected with STORE_DRIVER=sqlite.
type DBStore struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewDBStore(path string, zlog *zap.Logger) (*DBStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Document{}, &LogLine{}); err != nil {
		return nil, err
	}
	return &DBStore{db: db, log: zlog}, nil
}

func (s *DBStore) Load(key string, out any) bool {
	var doc Document
	if err := s.db.Take(&doc, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("load document failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		s.log.Warn("corrupt document ignored", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *DBStore) Save(key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing Document
		if err := tx.Take(&existing, "key = ?", key).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&Document{Key: key, Value: string(data)}).Error
			}
			return err
		}
		existing.Value = string(data)
		return tx.Save(&existing).Error
	})
}

func (s *DBStore) AppendLog(runID, line string) error {
	return s.db.Create(&LogLine{
		RunID: runID,
		Line:  strings.TrimRight(line, "\n"),
	}).Error
}

func (s *DBStore) ReadLog(runID string) string {
	var lines []LogLine
	if err := s.db.Order("id").Find(&lines, "run_id = ?", runID).Error; err != nil {
		return ""
	}
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *DBStore) ClearAll() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Document{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&LogLine{}).Error
	})
}
