package errors

import (
	"errors"
	"io/fs"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, unknown ID).
	CategoryUser
	// CategorySystem indicates a storage or environment failure.
	CategorySystem
	// CategoryInternal indicates a programming error such as an unknown unit.
	CategoryInternal
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}
	if errors.Is(err, ErrInvalidUnit) {
		return CategoryInternal
	}
	if errors.Is(err, ErrInvalidDuration) ||
		errors.Is(err, ErrInvalidTimestamp) ||
		errors.Is(err, ErrInvalidSettingID) ||
		errors.Is(err, ErrSettingNotFound) ||
		errors.Is(err, ErrNothingToUndo) {
		return CategoryUser
	}
	if isSystemLevel(err) {
		return CategorySystem
	}
	return CategoryUnknown
}

func isSystemLevel(err error) bool {
	if errors.Is(err, ErrDatabaseCorrupted) || errors.Is(err, fs.ErrPermission) {
		return true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EROFS, syscall.EIO:
			return true
		}
	}
	return false
}
