package errors

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// UserError Tests
// =============================================================================

func TestNewUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "try again", err.Suggestion)
}

func TestUserErrorError(t *testing.T) {
	t.Run("without_field", func(t *testing.T) {
		err := NewUserError("invalid input", "")
		assert.Equal(t, "invalid input", err.Error())
	})

	t.Run("with_field", func(t *testing.T) {
		err := NewUserErrorWithField("unit", "weeks", "unknown unit", "")
		assert.Equal(t, "unknown unit: 'weeks'", err.Error())
	})
}

func TestNotFound(t *testing.T) {
	err := NotFound("session-timeout")
	assert.Equal(t, "setting not found: 'session-timeout'", err.Error())
	assert.True(t, errors.Is(err, ErrSettingNotFound))
	assert.Equal(t, Suggestions[ErrSettingNotFound], GetSuggestion(err))
}

func TestIsUserError(t *testing.T) {
	t.Run("wrapped_user_error", func(t *testing.T) {
		wrapped := fmt.Errorf("context: %w", NewUserError("test", ""))
		assert.True(t, IsUserError(wrapped))
	})

	t.Run("not_user_error", func(t *testing.T) {
		assert.False(t, IsUserError(errors.New("plain error")))
	})

	t.Run("nil_error", func(t *testing.T) {
		assert.False(t, IsUserError(nil))
	})
}

func TestAsUserError(t *testing.T) {
	ue, ok := AsUserError(Wrap(NewUserError("test", "suggestion"), "outer"))
	require.True(t, ok)
	assert.Equal(t, "suggestion", ue.Suggestion)

	_, ok = AsUserError(errors.New("plain"))
	assert.False(t, ok)
}

// =============================================================================
// SystemError Tests
// =============================================================================

func TestSystemErrorError(t *testing.T) {
	t.Run("without_op", func(t *testing.T) {
		err := NewSystemError("store failure", nil)
		assert.Equal(t, "store failure", err.Error())
	})

	t.Run("with_op", func(t *testing.T) {
		err := NewSystemErrorWithOp("write", "failed to save setting", nil)
		assert.Equal(t, "failed to save setting during write", err.Error())
	})
}

func TestSystemErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewSystemError("wrapper", cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, Is(err, cause))

	se, ok := AsSystemError(Wrap(err, "outer"))
	require.True(t, ok)
	assert.Equal(t, "wrapper", se.Message)
}

// =============================================================================
// Wrapping Tests
// =============================================================================

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	err := Wrapf(ErrInvalidUnit, "%q", "weeks")
	assert.Equal(t, `"weeks": invalid time unit`, err.Error())
	assert.True(t, Is(err, ErrInvalidUnit))
}

func TestChainAndRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")

	chain := Chain(err)
	require.Len(t, chain, 3)
	assert.Equal(t, "outer: middle: root", chain[0])
	assert.Equal(t, "root", chain[2])
	assert.Equal(t, root, RootCause(err))
	assert.Nil(t, Chain(nil))
}

// =============================================================================
// Classification Tests
// =============================================================================

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Category
	}{
		{"nil", nil, CategoryUnknown},
		{"user_error", NewUserError("bad", ""), CategoryUser},
		{"system_error", NewSystemError("bad", nil), CategorySystem},
		{"invalid_unit", Wrap(ErrInvalidUnit, "convert"), CategoryInternal},
		{"invalid_duration", ErrInvalidDuration, CategoryUser},
		{"not_found", NotFound("x"), CategoryUser},
		{"corrupted", ErrDatabaseCorrupted, CategorySystem},
		{"enospc", fmt.Errorf("write: %w", syscall.ENOSPC), CategorySystem},
		{"plain", errors.New("plain"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "user", CategoryUser.String())
	assert.Equal(t, "system", CategorySystem.String())
	assert.Equal(t, "internal", CategoryInternal.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

// =============================================================================
// Suggestion Tests
// =============================================================================

func TestGetSuggestion(t *testing.T) {
	assert.Equal(t, "", GetSuggestion(nil))
	assert.Equal(t, "", GetSuggestion(errors.New("plain")))
	assert.Equal(t, Suggestions[ErrInvalidDuration], GetSuggestion(Wrap(ErrInvalidDuration, "parse")))
	assert.Equal(t, "custom", GetSuggestion(NewUserError("x", "custom")))
}

func TestFormatError(t *testing.T) {
	msg := FormatError(ErrNothingToUndo)
	assert.Equal(t, "nothing to undo\n"+Suggestions[ErrNothingToUndo], msg)
	assert.Equal(t, "plain", FormatError(errors.New("plain")))
}

func TestFormatDebugError(t *testing.T) {
	err := Wrap(ErrInvalidUnit, "select unit")
	out := FormatDebugError(err)
	assert.Contains(t, out, "Error: select unit: invalid time unit")
	assert.Contains(t, out, "Error chain:")
	assert.Contains(t, out, "Category: internal")
	assert.Contains(t, out, "Root cause: invalid time unit")
	assert.Equal(t, "", FormatDebugError(nil))
}
