package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Setting Tests
// =============================================================================

func TestNewSetting(t *testing.T) {
	s := NewSetting("session-timeout", "Session timeout", 3600000)

	assert.Equal(t, "setting:session-timeout", s.Key)
	assert.Equal(t, "session-timeout", s.ID)
	assert.Equal(t, int64(3600000), s.Value)
	assert.Equal(t, int64(3600000), s.PackageValue)
	assert.True(t, s.IsDefault())
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
}

func TestSettingSetKey(t *testing.T) {
	s := &Setting{}
	s.SetKey("setting:retention")
	assert.Equal(t, "setting:retention", s.GetKey())
	assert.Equal(t, "retention", s.ID)

	// An existing ID is not overwritten.
	s2 := &Setting{ID: "keep"}
	s2.SetKey("setting:other")
	assert.Equal(t, "keep", s2.ID)
}

func TestSettingDisplayLabel(t *testing.T) {
	assert.Equal(t, "Retention", (&Setting{ID: "retention", Label: "Retention"}).DisplayLabel())
	assert.Equal(t, "retention", (&Setting{ID: "retention"}).DisplayLabel())
}

func TestSettingIsDefault(t *testing.T) {
	s := NewSetting("x", "", 0)
	s.Value = 60000
	assert.False(t, s.IsDefault())
}

func TestSettingKeyHelpers(t *testing.T) {
	assert.Equal(t, "setting:a.b", GenerateSettingKey("a.b"))
	assert.Equal(t, "a.b", SettingIDFromKey("setting:a.b"))
}

// =============================================================================
// Change Tests
// =============================================================================

func TestNewChange(t *testing.T) {
	c := NewChange("retention", 7200000, 3600000, ReasonUnit, "hours")
	assert.Equal(t, "retention", c.SettingID)
	assert.Equal(t, int64(-3600000), c.Delta())
	assert.Equal(t, ReasonUnit, c.Reason)
	assert.False(t, c.At.IsZero())

	c.SetKey(GenerateChangeKey("0192"))
	assert.Equal(t, "change:0192", c.GetKey())
}

// =============================================================================
// Singleton Tests
// =============================================================================

func TestNewConfig(t *testing.T) {
	c := NewConfig("install-1")
	assert.Equal(t, KeyConfig, c.GetKey())
	assert.Equal(t, "install-1", c.InstallationKey)
	assert.True(t, c.SeededAt.IsZero())
}

func TestNewUndoState(t *testing.T) {
	u := NewUndoState("retention", 60000, ReasonInput)
	assert.Equal(t, KeyUndo, u.GetKey())
	assert.Equal(t, int64(60000), u.Previous)
	u.SetKey("other")
	assert.Equal(t, "other", u.Key)
}
