// Package storage provides the Badger-backed persistence layer for spanset.
package storage

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/logging"
)

const (
	// AppName is the application name used for data directories.
	AppName = "spanset"
)

// DB wraps a Badger database connection.
type DB struct {
	db   *badger.DB
	path string
}

// Options configures the database connection.
type Options struct {
	// Path is the database directory path. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path following XDG spec.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens or creates a database at the given path.
func Open(opts Options) (*DB, error) {
	var badgerOpts badger.Options
	path := ""

	if opts.InMemory || opts.Path == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		path = opts.Path
		if err := os.MkdirAll(path, 0700); err != nil {
			if os.IsPermission(err) {
				return nil, errors.NewSystemErrorWithOp("open", "cannot create data directory", errors.ErrPermissionDenied)
			}
			return nil, errors.NewSystemErrorWithOp("open", "cannot create data directory", err)
		}
		badgerOpts = badger.DefaultOptions(path)
	}

	// Badger logs through its own logger; keep it to errors only.
	badgerOpts = badgerOpts.WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		if IsDatabaseCorrupted(err) {
			return nil, errors.NewSystemErrorWithOp("open", err.Error(), errors.ErrDatabaseCorrupted)
		}
		return nil, errors.NewSystemErrorWithOp("open", "cannot open database", err)
	}

	logging.DebugLog("database opened", logging.KeyPath, path)
	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Path returns the on-disk directory, or "" for in-memory databases.
func (d *DB) Path() string {
	return d.path
}

// Badger returns the underlying Badger database for advanced operations.
func (d *DB) Badger() *badger.DB {
	return d.db
}
