package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidUnit:       "Use one of: days, hours, minutes.",
	ErrSettingNotFound:   "Use 'spanset list' to see available settings.",
	ErrSettingExists:     "Use 'spanset set' to change an existing setting.",
	ErrInvalidSettingID:  "Setting IDs must start with a letter or number and contain only letters, numbers, dashes, underscores, or periods.",
	ErrInvalidDuration:   "Try formats like '90m', '1h30m', '2 hours', '7d', or a plain millisecond count.",
	ErrInvalidTimestamp:  "Try formats like 'yesterday', '2 hours ago', or 'this week'.",
	ErrNothingToUndo:     "Only the most recent change can be undone.",
	ErrDatabaseCorrupted: "Remove the database directory (see SPANSET_DATABASE) to start fresh.",
	ErrPermissionDenied:  "Check file permissions in your data directory (~/.local/share/spanset/).",
	ErrNotATerminal:      "Use 'spanset set' or 'spanset unit' from scripts.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// FormatError formats an error with its suggestion on a second line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}

// FormatDebugError formats an error with its chain and category.
func FormatDebugError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(err.Error())
	sb.WriteString("\n")

	if chain := Chain(err); len(chain) > 1 {
		sb.WriteString("\nError chain:\n")
		for i, msg := range chain {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, msg))
		}
	}

	sb.WriteString(fmt.Sprintf("\nCategory: %s\n", Classify(err)))

	if suggestion := GetSuggestion(err); suggestion != "" {
		sb.WriteString(fmt.Sprintf("\nSuggestion: %s\n", suggestion))
	}

	if root := RootCause(err); root != err {
		sb.WriteString(fmt.Sprintf("\nRoot cause: %v\n", root))
	}

	return sb.String()
}
