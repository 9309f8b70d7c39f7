package cmd

import (
	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// parseUnitArg parses a unit typed by the user. An empty string means the
// session picks the unit.
func parseUnitArg(field, s string) (timespan.Unit, error) {
	if s == "" {
		return "", nil
	}
	u, err := timespan.ParseUnit(s)
	if err != nil {
		return "", &errors.UserError{
			Message:    "Unknown unit " + s,
			Suggestion: errors.Suggestions[errors.ErrInvalidUnit],
			Field:      field,
			Value:      s,
			Cause:      err,
		}
	}
	return u, nil
}
