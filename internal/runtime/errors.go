package runtime

import (
	"fmt"
	"io"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/output"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUser     = 1
	ExitSystem   = 2
	ExitInternal = 3
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.Classify(err) {
	case errors.CategorySystem:
		return ExitSystem
	case errors.CategoryInternal:
		return ExitInternal
	default:
		return ExitUser
	}
}

// ReportError writes err to w in the given format and returns its exit code.
// In debug mode the CLI report includes the error chain.
func ReportError(w io.Writer, format output.Format, debug bool, err error) int {
	if err == nil {
		return ExitOK
	}

	if format == output.FormatJSON {
		msg := err.Error()
		if ue, ok := errors.AsUserError(err); ok {
			msg = ue.Message
		}
		f := &output.Formatter{Writer: w, Format: format}
		_ = output.NewJSONFormatter(f).PrintError("error", err.Error(), msg, errors.GetSuggestion(err))
		return ExitCode(err)
	}

	if debug {
		fmt.Fprint(w, errors.FormatDebugError(err))
		return ExitCode(err)
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
	if suggestion := errors.GetSuggestion(err); suggestion != "" {
		fmt.Fprintf(w, "%s\n", suggestion)
	}
	return ExitCode(err)
}

// ReportError writes err using the context's format and error writer.
func (c *Context) ReportError(err error) int {
	return ReportError(c.ErrWriter, c.Formatter.Format, c.Debug, err)
}
