// Package settings owns the stored time-span settings. It binds editing
// sessions to the store so every accepted edit is persisted, recorded in the
// history and made undoable.
package settings

import (
	"time"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/logging"
	"github.com/manav03panchal/spanset/internal/model"
	"github.com/manav03panchal/spanset/internal/storage"
	"github.com/manav03panchal/spanset/internal/timespan"
	"github.com/manav03panchal/spanset/internal/validate"
)

// Service reads and writes settings.
type Service struct {
	db       *storage.DB
	settings *storage.SettingRepo
	changes  *storage.ChangeRepo
	undo     *storage.UndoRepo
}

// NewService creates a service over db.
func NewService(db *storage.DB) *Service {
	return &Service{
		db:       db,
		settings: storage.NewSettingRepo(db),
		changes:  storage.NewChangeRepo(db),
		undo:     storage.NewUndoRepo(db),
	}
}

// Repo returns the underlying setting repository.
func (s *Service) Repo() *storage.SettingRepo {
	return s.settings
}

// Get returns the setting with id.
func (s *Service) Get(id string) (*model.Setting, error) {
	if err := validate.SettingID(id); err != nil {
		return nil, err
	}
	return s.settings.Get(id)
}

// List returns all settings ordered by ID.
func (s *Service) List() ([]*model.Setting, error) {
	return s.settings.List()
}

// Set stores durationMs as the value of id.
func (s *Service) Set(id string, durationMs int64) (*model.Setting, error) {
	if durationMs < 0 {
		return nil, &errors.UserError{
			Message:    "Duration cannot be negative",
			Suggestion: errors.Suggestions[errors.ErrInvalidDuration],
			Cause:      errors.ErrInvalidDuration,
		}
	}
	setting, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(setting, durationMs, model.ReasonSet, timespan.ChooseUnit(durationMs)); err != nil {
		return nil, err
	}
	return setting, nil
}

// Undo reverts the last recorded change. Undo itself cannot be undone.
func (s *Service) Undo() (*model.Setting, *model.UndoState, error) {
	state, err := s.undo.Get()
	if err != nil {
		return nil, nil, errors.NewSystemErrorWithOp("read", "failed to load undo state", err)
	}
	if state == nil {
		return nil, nil, &errors.UserError{
			Message:    "Nothing to undo",
			Suggestion: errors.Suggestions[errors.ErrNothingToUndo],
			Cause:      errors.ErrNothingToUndo,
		}
	}

	setting, err := s.settings.Get(state.SettingID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.apply(setting, state.Previous, model.ReasonUndo, timespan.ChooseUnit(state.Previous)); err != nil {
		return nil, nil, err
	}
	if err := s.undo.Clear(); err != nil {
		return nil, nil, errors.NewSystemErrorWithOp("write", "failed to clear undo state", err)
	}
	return setting, state, nil
}

// History returns recorded changes, newest first.
func (s *Service) History(filter storage.ChangeFilter) ([]*model.Change, error) {
	if filter.SettingID != "" {
		if _, err := s.Get(filter.SettingID); err != nil {
			return nil, err
		}
	}
	changes, err := s.changes.List(filter)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("read", "failed to load history", err)
	}
	return changes, nil
}

// Prune removes stored settings for which known returns false, together with
// their history. An undo snapshot pointing at a removed setting is dropped.
func (s *Service) Prune(known func(id string) bool) ([]string, error) {
	list, err := s.settings.List()
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, setting := range list {
		if known(setting.ID) {
			continue
		}
		n, err := s.changes.DeleteForSetting(setting.ID)
		if err != nil {
			return removed, errors.NewSystemErrorWithOp("delete", "failed to delete history", err)
		}
		if err := s.settings.Delete(setting.ID); err != nil {
			return removed, errors.NewSystemErrorWithOp("delete", "failed to delete setting", err)
		}
		logging.DebugLog("setting pruned", logging.KeySetting, setting.ID, logging.KeyCount, n)
		removed = append(removed, setting.ID)
	}
	if len(removed) == 0 {
		return nil, nil
	}

	state, err := s.undo.Get()
	if err != nil {
		return removed, errors.NewSystemErrorWithOp("read", "failed to load undo state", err)
	}
	if state != nil && !known(state.SettingID) {
		if err := s.undo.Clear(); err != nil {
			return removed, errors.NewSystemErrorWithOp("write", "failed to clear undo state", err)
		}
	}
	return removed, nil
}

// apply persists value, the change record and the undo snapshot in one
// transaction. Writing the current value again is a no-op.
func (s *Service) apply(setting *model.Setting, value int64, reason model.ChangeReason, unit timespan.Unit) error {
	if value < 0 {
		return &errors.UserError{
			Message:    "Duration cannot be negative",
			Suggestion: errors.Suggestions[errors.ErrInvalidDuration],
			Cause:      errors.ErrInvalidDuration,
		}
	}
	previous := setting.Value
	if previous == value {
		return nil
	}

	change := model.NewChange(setting.ID, previous, value, reason, unit.String())
	if err := s.changes.AssignKey(change); err != nil {
		return errors.NewSystemErrorWithOp("write", "failed to key change", err)
	}

	setting.Value = value
	setting.UpdatedAt = time.Now().UTC()
	setting.Key = model.GenerateSettingKey(setting.ID)

	writes := []model.Model{setting, change}
	if reason != model.ReasonUndo {
		writes = append(writes, model.NewUndoState(setting.ID, previous, reason))
	}
	if err := s.db.SetAll(writes...); err != nil {
		setting.Value = previous
		return errors.NewSystemErrorWithOp("write", "failed to save setting", err)
	}

	logging.DebugLog("setting stored",
		logging.KeySetting, setting.ID,
		logging.KeyReason, string(reason),
		logging.KeyPrevious, previous,
		logging.KeyDuration, value,
	)
	return nil
}
