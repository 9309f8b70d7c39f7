package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/parser"
	"github.com/manav03panchal/spanset/internal/storage"
	"github.com/manav03panchal/spanset/internal/validate"
)

// history command flags.
var (
	historyFlagSince string
	historyFlagLimit int
)

// historyCmd represents the history command.
var historyCmd = &cobra.Command{
	Use:     "history [ID]",
	Aliases: []string{"log"},
	Short:   "Show recorded changes",
	Long: `Show changes to settings, newest first.

Examples:
  spanset history
  spanset history retention.max-age
  spanset history --since yesterday
  spanset history --since "this week" --limit 5`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSettingArgs,
	RunE:              runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFlagSince, "since", "s", "", "Only changes after this time (e.g. yesterday, 2 hours ago)")
	historyCmd.Flags().IntVarP(&historyFlagLimit, "limit", "n", 0, "Maximum number of changes (default from config)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	filter := storage.ChangeFilter{Limit: ctx.Config.History.Limit}
	if len(args) == 1 {
		filter.SettingID = args[0]
	}

	if cmd.Flags().Changed("limit") {
		if err := validate.InRange("limit", historyFlagLimit, 1, 10000); err != nil {
			return err
		}
		filter.Limit = historyFlagLimit
	}

	if historyFlagSince != "" {
		since, err := parser.ParseTimestamp(historyFlagSince)
		if err != nil {
			if pe, ok := err.(*parser.ParseError); ok {
				return &errors.UserError{
					Message:    pe.Error(),
					Suggestion: errors.Suggestions[errors.ErrInvalidTimestamp],
					Field:      "since",
					Value:      historyFlagSince,
					Cause:      err,
				}
			}
			return err
		}
		filter.Since = since
	}

	changes, err := ctx.Settings.History(filter)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintHistory(changes)
	}
	ctx.CLIFormatter().PrintHistory(changes)
	return nil
}
