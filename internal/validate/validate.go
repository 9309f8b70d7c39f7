// Package validate provides input validation helpers for spanset.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/spanset/internal/errors"
)

const (
	// MaxSettingIDLength is the maximum length for a setting ID.
	MaxSettingIDLength = 64
	// MaxLabelLength is the maximum length for a setting label.
	MaxLabelLength = 128
)

// settingIDRegex validates setting IDs (alphanumeric, dashes, underscores, periods).
var settingIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// SettingID validates a setting identifier.
func SettingID(id string) error {
	if id == "" {
		return &errors.UserError{
			Message:    "Setting ID cannot be empty",
			Suggestion: "Provide a setting ID, see 'spanset list'",
			Cause:      errors.ErrInvalidSettingID,
		}
	}
	if len(id) > MaxSettingIDLength {
		return &errors.UserError{
			Message:    "Setting ID too long",
			Field:      "id",
			Value:      id,
			Suggestion: "Setting IDs must be 64 characters or fewer",
			Cause:      errors.ErrInvalidSettingID,
		}
	}
	if !settingIDRegex.MatchString(id) {
		return &errors.UserError{
			Message:    "Invalid setting ID format",
			Field:      "id",
			Value:      id,
			Suggestion: "Setting IDs must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods",
			Cause:      errors.ErrInvalidSettingID,
		}
	}
	return nil
}

// Label validates a human-readable setting label.
func Label(label string) error {
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return errors.NewUserErrorWithField("label", TruncateString(label, 32),
			"Label too long",
			"Labels must be 128 characters or fewer")
	}
	return nil
}

// NonEmpty validates that a string is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}

// InRange validates that an integer is within a range.
func InRange(field string, value, min, max int) error {
	if value < min || value > max {
		return errors.NewUserErrorWithField(field, strconv.Itoa(value),
			"Value out of range",
			"Must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
	}
	return nil
}
