package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/spanset/internal/model"
)

// ChangeRepo stores the change history of settings.
type ChangeRepo struct {
	db *DB
}

// NewChangeRepo creates a new change repository.
func NewChangeRepo(db *DB) *ChangeRepo {
	return &ChangeRepo{db: db}
}

// AssignKey gives change a time-sortable key. UUID v7 keys keep badger's
// lexicographic order equal to insertion order.
func (r *ChangeRepo) AssignKey(change *model.Change) error {
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	change.Key = model.GenerateChangeKey(id.String())
	return nil
}

// Record stores a new change.
func (r *ChangeRepo) Record(change *model.Change) error {
	if err := r.AssignKey(change); err != nil {
		return err
	}
	return r.db.Set(change)
}

// ChangeFilter selects history entries.
type ChangeFilter struct {
	SettingID string
	Since     time.Time
	Limit     int
}

// List returns matching changes, newest first.
func (r *ChangeRepo) List(filter ChangeFilter) ([]*model.Change, error) {
	keep := func(c *model.Change) bool {
		if filter.SettingID != "" && c.SettingID != filter.SettingID {
			return false
		}
		if !filter.Since.IsZero() && c.At.Before(filter.Since) {
			return false
		}
		return true
	}
	return GetFilteredByPrefix(r.db, model.PrefixChange+":", func() *model.Change {
		return &model.Change{}
	}, keep, ScanOptions{Reverse: true, Limit: filter.Limit})
}

// DeleteForSetting removes every change recorded for settingID.
func (r *ChangeRepo) DeleteForSetting(settingID string) (int, error) {
	changes, err := r.List(ChangeFilter{SettingID: settingID})
	if err != nil {
		return 0, err
	}
	for _, c := range changes {
		if err := r.db.Delete(c.Key); err != nil {
			return 0, err
		}
	}
	return len(changes), nil
}
