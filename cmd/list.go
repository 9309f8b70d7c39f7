package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/output"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all settings",
	Long: `List every time-span setting with its display value and default.

Values are shown in the coarsest unit that represents them exactly.
A "*" marks settings that differ from their default.

Examples:
  spanset list
  spanset list --format json
  spanset list --format plain`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// get command flags.
var getFlagUnit string

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one setting",
	Long: `Show a setting's current value, default and last update.

Examples:
  spanset get accounts.login-expiration
  spanset get accounts.login-expiration --unit hours`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSettingArgs,
	RunE:              runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getFlagUnit, "unit", "u", "", "Show the value in this unit (days, hours, minutes)")
	_ = getCmd.RegisterFlagCompletionFunc("unit", completeUnits)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	list, err := ctx.Settings.List()
	if err != nil {
		return err
	}

	views := make([]output.SettingView, 0, len(list))
	for _, s := range list {
		views = append(views, ctx.View(s))
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(views)
	}
	ctx.CLIFormatter().PrintSettings(views)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	unit, err := parseUnitArg("unit", getFlagUnit)
	if err != nil {
		return err
	}

	setting, err := ctx.Settings.Get(args[0])
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
		return ctx.JSONFormatter().PrintSetting("ok", view)
	}
	ctx.CLIFormatter().PrintSetting(view)
	return nil
}
