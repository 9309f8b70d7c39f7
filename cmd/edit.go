package cmd

import (
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/tui"
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a setting interactively",
	Long: `Open an interactive editor for one setting.

Type a whole number, switch units with tab or the arrow keys, press
ctrl+r to restore the default and enter to finish. Every change is saved
as you type.

Examples:
  spanset edit omnichannel.inactivity-timeout`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSettingArgs,
	RunE:              runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !stdinIsTerminal() {
		return &errors.UserError{
			Message:    "The editor needs an interactive terminal",
			Suggestion: errors.Suggestions[errors.ErrNotATerminal],
			Cause:      errors.ErrNotATerminal,
		}
	}

	editor, err := ctx.Settings.Open(args[0])
	if err != nil {
		return err
	}
	if err := tui.Run(editor, ctx.Labels); err != nil {
		return err
	}

	view := ctx.EditorView(editor)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSetting("ok", view)
	}
	ctx.CLIFormatter().PrintSetting(view)
	return nil
}
