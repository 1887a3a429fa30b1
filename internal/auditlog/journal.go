package auditlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campushire/jobboard/pkg/logger"
)

// Entry is one account-deletion event in the journal.
type Entry struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	DeletedBy string    `json:"deleted_by"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Journal is an append-only file of deletion events, written alongside the
// database audit record. Entries are fsynced before the deletion proceeds
// and are never rewritten or removed.
type Journal struct {
	filePath string
	file     *os.File
	mu       sync.Mutex
}

func NewJournal(filePath string) (*Journal, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Journal{
		filePath: filePath,
		file:     file,
	}, nil
}

// Write appends an entry and syncs it to disk before returning.
func (j *Journal) Write(entry Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Log.Error("audit journal: failed to marshal entry",
			zap.String("user_id", entry.UserID),
			zap.Error(err),
		)
		return err
	}

	if _, err := j.file.WriteString(string(data) + "\n"); err != nil {
		logger.Log.Error("audit journal: failed to write entry",
			zap.String("user_id", entry.UserID),
			zap.Error(err),
		)
		return err
	}

	// Durability before the deletion workflow moves on
	if err := j.file.Sync(); err != nil {
		logger.Log.Error("audit journal: failed to sync to disk",
			zap.String("user_id", entry.UserID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// ReadAll returns every entry in the journal, oldest first. Lines that do
// not parse are skipped rather than failing the whole read.
func (j *Journal) ReadAll() ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	file, err := os.Open(j.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		var entry Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}
