package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/spanset/internal/errors"
)

// ParseError describes input that could not be parsed, with examples of
// accepted forms.
type ParseError struct {
	Input    string
	Field    string
	Message  string
	Examples []string
	kind     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *ParseError) Unwrap() error {
	return e.kind
}

// FormatWithExamples returns the error message followed by valid examples.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// DurationExamples lists accepted duration forms.
var DurationExamples = []string{
	"90m",
	"1h30m",
	"2 hours",
	"1.5h",
	"7d",
	"3600000",
}

// TimestampExamples lists accepted timestamp forms.
var TimestampExamples = []string{
	"yesterday",
	"2 hours ago",
	"this week",
	"2024-01-15",
}

func newDurationError(input, message string) *ParseError {
	return &ParseError{
		Input:    input,
		Field:    "duration",
		Message:  message,
		Examples: DurationExamples,
		kind:     errors.ErrInvalidDuration,
	}
}

func newTimestampError(input, message string) *ParseError {
	return &ParseError{
		Input:    input,
		Field:    "timestamp",
		Message:  message,
		Examples: TimestampExamples,
		kind:     errors.ErrInvalidTimestamp,
	}
}
