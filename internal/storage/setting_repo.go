package storage

import (
	"time"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/model"
)

// SettingRepo provides operations for Setting entities.
type SettingRepo struct {
	db *DB
}

// NewSettingRepo creates a new setting repository.
func NewSettingRepo(db *DB) *SettingRepo {
	return &SettingRepo{db: db}
}

// Get retrieves a setting by ID.
func (r *SettingRepo) Get(id string) (*model.Setting, error) {
	setting := &model.Setting{}
	if err := r.db.Get(model.GenerateSettingKey(id), setting); err != nil {
		if IsErrKeyNotFound(err) {
			return nil, errors.NotFound(id)
		}
		return nil, errors.NewSystemErrorWithOp("read", "failed to load setting", err)
	}
	return setting, nil
}

// Create stores a new setting. It fails if the ID is taken.
func (r *SettingRepo) Create(setting *model.Setting) error {
	exists, err := r.Exists(setting.ID)
	if err != nil {
		return err
	}
	if exists {
		return errors.Wrapf(errors.ErrSettingExists, "%s", setting.ID)
	}
	setting.Key = model.GenerateSettingKey(setting.ID)
	return r.db.Set(setting)
}

// Update stores setting, bumping UpdatedAt.
func (r *SettingRepo) Update(setting *model.Setting) error {
	setting.Key = model.GenerateSettingKey(setting.ID)
	setting.UpdatedAt = time.Now().UTC()
	if err := r.db.Set(setting); err != nil {
		return errors.NewSystemErrorWithOp("write", "failed to save setting", err)
	}
	return nil
}

// Delete removes a setting by ID.
func (r *SettingRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateSettingKey(id))
}

// List retrieves all settings ordered by ID.
func (r *SettingRepo) List() ([]*model.Setting, error) {
	return GetAllByPrefix(r.db, model.PrefixSetting+":", func() *model.Setting {
		return &model.Setting{}
	})
}

// Exists checks whether a setting with the ID exists.
func (r *SettingRepo) Exists(id string) (bool, error) {
	return r.db.Exists(model.GenerateSettingKey(id))
}
