package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/parser"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// set command flags.
var setFlagUnit string

// setCmd represents the set command.
var setCmd = &cobra.Command{
	Use:   "set ID VALUE",
	Short: "Set a setting's value",
	Long: `Set a setting to a new value.

Without --unit, VALUE is a duration: "90m", "1h30m", "7d", "2 days".
A bare number is read as milliseconds.

With --unit, VALUE is a whole number in that unit. Input that is not a
non-negative number is stored as 0, and fractions are rounded.

Examples:
  spanset set omnichannel.inactivity-timeout 90m
  spanset set retention.max-age "30 days"
  spanset set retention.max-age 12 --unit hours
  spanset set accounts.login-expiration 3600000`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeSettingArgs,
	RunE:              runSet,
}

// unitCmd represents the unit command.
var unitCmd = &cobra.Command{
	Use:   "unit ID UNIT",
	Short: "Switch the unit a setting is edited in",
	Long: `Convert a setting's displayed value to another unit and store the result.

The displayed value is converted and rounded to a whole number, so moving
from a finer unit to a coarser one can change the stored duration.

Examples:
  spanset unit omnichannel.inactivity-timeout hours
  spanset unit retention.max-age m`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeUnitArgs,
	RunE:              runUnit,
}

// resetCmd represents the reset command.
var resetCmd = &cobra.Command{
	Use:   "reset ID",
	Short: "Restore a setting's default value",
	Long: `Restore a setting to the default from its definition.

Examples:
  spanset reset retention.max-age
  spanset undo    # brings the previous value back`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSettingArgs,
	RunE:              runReset,
}

func init() {
	setCmd.Flags().StringVarP(&setFlagUnit, "unit", "u", "", "Read VALUE as a whole number of days, hours or minutes")
	_ = setCmd.RegisterFlagCompletionFunc("unit", completeUnits)

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unitCmd)
	rootCmd.AddCommand(resetCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	id, raw := args[0], args[1]

	unit, err := parseUnitArg("unit", setFlagUnit)
	if err != nil {
		return err
	}

	var durationMs int64
	if unit != "" {
		durationMs, err = timespan.ToDuration(unit, timespan.SanitizeInput(raw))
	} else {
		durationMs, err = parser.ParseDuration(raw)
		if err != nil {
			err = durationError(raw, err)
		}
	}
	if err != nil {
		return err
	}

	setting, err := ctx.Settings.Set(id, durationMs)
	if err != nil {
		return err
	}

	view := ctx.View(setting)
	if unit != "" {
		if view, err = ctx.ViewIn(setting, unit); err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSetting("updated", view)
	}
	ctx.CLIFormatter().PrintSettingChanged(view, "Updated")
	return nil
}

func runUnit(cmd *cobra.Command, args []string) error {
	unit, err := parseUnitArg("unit", args[1])
	if err != nil {
		return err
	}

	editor, err := ctx.Settings.Open(args[0])
	if err != nil {
		return err
	}
	previous := editor.Duration()
	if err := editor.SelectUnit(unit); err != nil {
		return err
	}
	for _, t := range editor.History() {
		ctx.Debugf("%s: %s %d %s (%d ms)", args[0], t.State, t.Value, t.Unit, t.Duration)
	}

	view := ctx.EditorView(editor)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSetting("updated", view)
	}
	cli := ctx.CLIFormatter()
	cli.PrintSettingChanged(view, "Converted")
	if editor.Duration() != previous {
		cli.Warning("Rounding changed the stored duration.")
	}
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	editor, err := ctx.Settings.Open(args[0])
	if err != nil {
		return err
	}
	if err := editor.Reset(); err != nil {
		return err
	}

	view := ctx.EditorView(editor)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSetting("reset", view)
	}
	ctx.CLIFormatter().PrintSettingChanged(view, "Reset")
	return nil
}

// durationError turns a parse failure into a user error with examples.
func durationError(input string, err error) error {
	if pe, ok := err.(*parser.ParseError); ok {
		return &errors.UserError{
			Message:    pe.Error(),
			Suggestion: "Examples: " + strings.Join(pe.Examples, ", "),
			Field:      "value",
			Value:      input,
			Cause:      err,
		}
	}
	return err
}
