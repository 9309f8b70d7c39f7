package model

// KeyUndo is the database key for the undo state.
const KeyUndo = "undo"

// UndoState remembers the value a setting held before its last change.
type UndoState struct {
	Key       string       `json:"key"`
	SettingID string       `json:"setting_id"`
	Previous  int64        `json:"previous_ms"`
	Reason    ChangeReason `json:"reason"`
}

// SetKey sets the database key for this undo state.
func (u *UndoState) SetKey(key string) {
	u.Key = key
}

// GetKey returns the database key for this undo state.
func (u *UndoState) GetKey() string {
	return u.Key
}

// NewUndoState creates a new undo state for a setting change.
func NewUndoState(settingID string, previous int64, reason ChangeReason) *UndoState {
	return &UndoState{
		Key:       KeyUndo,
		SettingID: settingID,
		Previous:  previous,
		Reason:    reason,
	}
}
