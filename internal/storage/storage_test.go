package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sperrors "github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		assert.NotNil(t, db.Badger())
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.Equal(t, "", db.Path())
		db.Close()
	})

	t.Run("on_disk_persists", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "db")

		db, err := Open(Options{Path: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, db.Path())
		require.NoError(t, NewSettingRepo(db).Create(model.NewSetting("retention", "", 60000)))
		require.NoError(t, db.Close())

		db, err = Open(Options{Path: dir})
		require.NoError(t, err)
		defer db.Close()
		s, err := NewSettingRepo(db).Get("retention")
		require.NoError(t, err)
		assert.Equal(t, int64(60000), s.Value)
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "spanset")
	assert.Equal(t, "db", filepath.Base(path))
}

func TestCheckIntegrity(t *testing.T) {
	db := setupTestDB(t)
	settings := NewSettingRepo(db)
	changes := NewChangeRepo(db)

	require.NoError(t, settings.Create(model.NewSetting("a", "", 0)))
	require.NoError(t, settings.Create(model.NewSetting("b", "", 0)))
	require.NoError(t, changes.Record(model.NewChange("a", 0, 60000, model.ReasonSet, "")))

	status := db.CheckIntegrity()
	assert.True(t, status.Healthy)
	assert.Equal(t, 2, status.Settings)
	assert.Equal(t, 1, status.Changes)
	assert.Zero(t, status.ErrorCount)
}

func TestIsDatabaseCorrupted(t *testing.T) {
	assert.False(t, IsDatabaseCorrupted(nil))
	assert.True(t, IsDatabaseCorrupted(sperrors.ErrDatabaseCorrupted))
	assert.True(t, IsDatabaseCorrupted(errors.New("Checksum mismatch in table 3")))
	assert.False(t, IsDatabaseCorrupted(errors.New("permission denied")))
}

// =============================================================================
// CRUD Tests
// =============================================================================

func TestExistsAndDelete(t *testing.T) {
	db := setupTestDB(t)

	exists, err := db.Exists("undo")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, db.Set(model.NewUndoState("a", 1, model.ReasonSet)))
	exists, err = db.Exists("undo")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, db.Delete("undo"))
	err = db.Get("undo", &model.UndoState{})
	assert.True(t, IsErrKeyNotFound(err))
}

func TestSetAll(t *testing.T) {
	db := setupTestDB(t)
	a := model.NewSetting("a", "", 1)
	b := model.NewSetting("b", "", 2)
	require.NoError(t, db.SetAll(a, b))

	keys, err := db.ListByPrefix("setting:")
	require.NoError(t, err)
	assert.Equal(t, []string{"setting:a", "setting:b"}, keys)
}

// =============================================================================
// SettingRepo Tests
// =============================================================================

func TestSettingRepoCreateGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)

	require.NoError(t, repo.Create(model.NewSetting("session-timeout", "Session timeout", 3600000)))

	s, err := repo.Get("session-timeout")
	require.NoError(t, err)
	assert.Equal(t, "session-timeout", s.ID)
	assert.Equal(t, "Session timeout", s.Label)
	assert.Equal(t, int64(3600000), s.Value)
	assert.Equal(t, "setting:session-timeout", s.Key)
}

func TestSettingRepoCreateDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)

	require.NoError(t, repo.Create(model.NewSetting("a", "", 0)))
	err := repo.Create(model.NewSetting("a", "", 0))
	assert.ErrorIs(t, err, sperrors.ErrSettingExists)
}

func TestSettingRepoGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := NewSettingRepo(db).Get("missing")
	assert.ErrorIs(t, err, sperrors.ErrSettingNotFound)
	assert.True(t, sperrors.IsUserError(err))
}

func TestSettingRepoUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)

	s := model.NewSetting("a", "", 60000)
	s.UpdatedAt = time.Now().Add(-time.Hour).UTC()
	require.NoError(t, repo.Create(s))

	s.Value = 120000
	require.NoError(t, repo.Update(s))

	got, err := repo.Get("a")
	require.NoError(t, err)
	assert.Equal(t, int64(120000), got.Value)
	assert.Equal(t, int64(60000), got.PackageValue)
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, 5*time.Second)
}

func TestSettingRepoListDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingRepo(db)

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(model.NewSetting(id, "", 0)))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[2].ID)

	require.NoError(t, repo.Delete("b"))
	exists, err := repo.Exists("b")
	require.NoError(t, err)
	assert.False(t, exists)
}

// =============================================================================
// ChangeRepo Tests
// =============================================================================

func TestChangeRepoNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChangeRepo(db)

	for i := 0; i < 5; i++ {
		c := model.NewChange("a", int64(i), int64(i+1), model.ReasonInput, "minutes")
		require.NoError(t, repo.Record(c))
	}

	changes, err := repo.List(ChangeFilter{})
	require.NoError(t, err)
	require.Len(t, changes, 5)
	assert.Equal(t, int64(5), changes[0].Value)
	assert.Equal(t, int64(1), changes[4].Value)
}

func TestChangeRepoFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChangeRepo(db)

	old := model.NewChange("a", 0, 1, model.ReasonSet, "")
	old.At = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Record(old))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(model.NewChange(fmt.Sprintf("s%d", i%2), 0, int64(i), model.ReasonInput, "")))
	}

	t.Run("by_setting", func(t *testing.T) {
		changes, err := repo.List(ChangeFilter{SettingID: "s0"})
		require.NoError(t, err)
		assert.Len(t, changes, 2)
	})

	t.Run("since", func(t *testing.T) {
		changes, err := repo.List(ChangeFilter{Since: time.Now().Add(-time.Hour)})
		require.NoError(t, err)
		assert.Len(t, changes, 3)
	})

	t.Run("limit", func(t *testing.T) {
		changes, err := repo.List(ChangeFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, int64(2), changes[0].Value)
	})

	t.Run("delete_for_setting", func(t *testing.T) {
		n, err := repo.DeleteForSetting("s1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		changes, err := repo.List(ChangeFilter{SettingID: "s1"})
		require.NoError(t, err)
		assert.Empty(t, changes)
	})
}

// =============================================================================
// Singleton Repo Tests
// =============================================================================

func TestUndoRepo(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUndoRepo(db)

	state, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, state)

	require.NoError(t, repo.Set(&model.UndoState{SettingID: "a", Previous: 60000, Reason: model.ReasonInput}))
	state, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, int64(60000), state.Previous)

	require.NoError(t, repo.Clear())
	state, err = repo.Get()
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestConfigRepoCreatesOnce(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConfigRepo(db)

	first, err := repo.Get()
	require.NoError(t, err)
	assert.NotEmpty(t, first.InstallationKey)

	first.SeededAt = time.Now().UTC()
	require.NoError(t, repo.Update(first))

	second, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, first.InstallationKey, second.InstallationKey)
	assert.False(t, second.SeededAt.IsZero())
}
