package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/errors"
)

// undoCmd represents the undo command.
var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the last change",
	Long: `Restore the value a setting held before the last change.

Only the most recent change can be undone, and an undo cannot itself be
undone.

Examples:
  spanset set retention.max-age 1h
  spanset undo
  # retention.max-age is back to its previous value`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	setting, state, err := ctx.Settings.Undo()
	if err != nil {
		if errors.Is(err, errors.ErrNothingToUndo) {
			if ctx.IsJSON() {
				return ctx.Formatter.JSON(map[string]string{
					"status":  "nothing_to_undo",
					"message": "Nothing to undo",
				})
			}
			ctx.CLIFormatter().Muted("Nothing to undo")
			return nil
		}
		return err
	}

	view := ctx.View(setting)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintUndo(state.Reason, view)
	}
	ctx.CLIFormatter().PrintSettingChanged(view, fmt.Sprintf("Undid %s on", state.Reason))
	return nil
}
