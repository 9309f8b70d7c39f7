package model

import (
	"fmt"
	"strings"
	"time"
)

// Setting is a persisted time-span setting. Value and PackageValue are
// durations in milliseconds.
type Setting struct {
	Key          string    `json:"key"`
	ID           string    `json:"id"`
	Label        string    `json:"label,omitempty"`
	Value        int64     `json:"value_ms"`
	PackageValue int64     `json:"package_value_ms"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetKey sets the database key for this setting.
func (s *Setting) SetKey(key string) {
	s.Key = key
	if s.ID == "" {
		s.ID = SettingIDFromKey(key)
	}
}

// GetKey returns the database key for this setting.
func (s *Setting) GetKey() string {
	return s.Key
}

// IsDefault reports whether the setting still holds its package value.
func (s *Setting) IsDefault() bool {
	return s.Value == s.PackageValue
}

// DisplayLabel returns the label, or the ID when no label is set.
func (s *Setting) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID
}

// GenerateSettingKey returns the database key for a setting ID.
func GenerateSettingKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixSetting, id)
}

// SettingIDFromKey strips the prefix from a setting key.
func SettingIDFromKey(key string) string {
	return strings.TrimPrefix(key, PrefixSetting+":")
}

// NewSetting creates a setting holding its package value.
func NewSetting(id, label string, packageValue int64) *Setting {
	now := time.Now().UTC()
	return &Setting{
		Key:          GenerateSettingKey(id),
		ID:           id,
		Label:        label,
		Value:        packageValue,
		PackageValue: packageValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
