package storage

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/spanset/internal/model"
)

var (
	// ErrKeyNotFound is returned when a key is not found in the database.
	ErrKeyNotFound = errors.New("key not found")
)

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, badger.ErrKeyNotFound)
}

// Get retrieves a value by key and unmarshals it into v.
func (d *DB) Get(key string, v model.Model) error {
	return d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, v); err != nil {
				return err
			}
			v.SetKey(key)
			return nil
		})
	})
}

// Set stores a model in the database.
func (d *DB) Set(v model.Model) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(v.GetKey()), data)
	})
}

// SetAll stores several models in one transaction.
func (d *DB) SetAll(vs ...model.Model) error {
	return d.db.Update(func(txn *badger.Txn) error {
		for _, v := range vs {
			data, err := json.Marshal(v)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(v.GetKey()), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a key from the database.
func (d *DB) Delete(key string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Exists checks if a key exists in the database.
func (d *DB) Exists(key string) (bool, error) {
	var exists bool
	err := d.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

// ListByPrefix retrieves all keys with the given prefix.
func (d *DB) ListByPrefix(prefix string) ([]string, error) {
	var keys []string
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// GetAllByPrefix retrieves all values with the given prefix in key order.
func GetAllByPrefix[T model.Model](d *DB, prefix string, newFunc func() T) ([]T, error) {
	return GetFilteredByPrefix(d, prefix, newFunc, nil, ScanOptions{})
}

// ScanOptions controls prefix iteration.
type ScanOptions struct {
	// Reverse iterates from the highest key down.
	Reverse bool
	// Limit stops after this many matches; 0 means no limit.
	Limit int
}

// GetFilteredByPrefix decodes values under prefix and keeps those accepted by
// keep (nil keeps everything).
func GetFilteredByPrefix[T model.Model](d *DB, prefix string, newFunc func() T, keep func(T) bool, scan ScanOptions) ([]T, error) {
	var results []T
	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 100
		opts.Reverse = scan.Reverse
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := []byte(prefix)
		if scan.Reverse {
			// Seek past the last key carrying the prefix.
			seek = append(seek, 0xFF)
		}

		for it.Seek(seek); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			v := newFunc()
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, v)
			})
			if err != nil {
				return err
			}
			v.SetKey(string(item.KeyCopy(nil)))
			if keep != nil && !keep(v) {
				continue
			}
			results = append(results, v)
			if scan.Limit > 0 && len(results) >= scan.Limit {
				break
			}
		}
		return nil
	})
	return results, err
}
