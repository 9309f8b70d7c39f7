package storage

import (
	"fmt"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/spanset/internal/errors"
)

// HealthStatus is the result of a database integrity check.
type HealthStatus struct {
	Healthy    bool      `json:"healthy"`
	Path       string    `json:"path,omitempty"`
	Settings   int       `json:"settings"`
	Changes    int       `json:"changes"`
	CheckedAt  time.Time `json:"checked_at"`
	ErrorCount int       `json:"error_count"`
	Errors     []string  `json:"errors,omitempty"`
}

// CheckIntegrity reads every value once and counts records by prefix.
func (d *DB) CheckIntegrity() *HealthStatus {
	status := &HealthStatus{
		Healthy:   true,
		Path:      d.path,
		CheckedAt: time.Now(),
	}

	err := d.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if err := item.Value(func([]byte) error { return nil }); err != nil {
				status.Errors = append(status.Errors, fmt.Sprintf("unreadable value at key: %s", key))
				status.ErrorCount++
				continue
			}
			switch {
			case strings.HasPrefix(key, "setting:"):
				status.Settings++
			case strings.HasPrefix(key, "change:"):
				status.Changes++
			}
		}
		return nil
	})
	if err != nil {
		status.Errors = append(status.Errors, fmt.Sprintf("iteration error: %v", err))
		status.ErrorCount++
	}

	status.Healthy = status.ErrorCount == 0
	return status
}

// corruptionPatterns are substrings badger uses when files are damaged.
var corruptionPatterns = []string{
	"checksum mismatch",
	"corrupt",
	"unexpected eof",
	"bad magic",
	"truncated",
}

// IsDatabaseCorrupted checks if the given error indicates database corruption.
func IsDatabaseCorrupted(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errors.ErrDatabaseCorrupted) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range corruptionPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
