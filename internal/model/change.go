package model

import (
	"fmt"
	"time"
)

// ChangeReason says which operation produced a change.
type ChangeReason string

const (
	ReasonInput ChangeReason = "input"
	ReasonUnit  ChangeReason = "unit"
	ReasonReset ChangeReason = "reset"
	ReasonSet   ChangeReason = "set"
	ReasonUndo  ChangeReason = "undo"
)

// Change is one entry of a setting's history.
type Change struct {
	Key       string       `json:"key"`
	SettingID string       `json:"setting_id"`
	Previous  int64        `json:"previous_ms"`
	Value     int64        `json:"value_ms"`
	Reason    ChangeReason `json:"reason"`
	Unit      string       `json:"unit,omitempty"`
	At        time.Time    `json:"at"`
}

// SetKey sets the database key for this change.
func (c *Change) SetKey(key string) {
	c.Key = key
}

// GetKey returns the database key for this change.
func (c *Change) GetKey() string {
	return c.Key
}

// Delta returns the signed difference in milliseconds.
func (c *Change) Delta() int64 {
	return c.Value - c.Previous
}

// GenerateChangeKey builds a change key from a time-sortable UUID.
func GenerateChangeKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixChange, uuid)
}

// NewChange creates a change record stamped with the current time.
func NewChange(settingID string, previous, value int64, reason ChangeReason, unit string) *Change {
	return &Change{
		SettingID: settingID,
		Previous:  previous,
		Value:     value,
		Reason:    reason,
		Unit:      unit,
		At:        time.Now().UTC(),
	}
}
