package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/errors"
	"github.com/manav03panchal/spanset/internal/output"
)

// check command flags.
var checkFlagPrune bool

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"doctor"},
	Short:   "Check the settings database",
	Long: `Read every stored entry and report the database state.

With --prune, settings that no longer have a definition are removed
together with their history.

Examples:
  spanset check
  spanset check --prune`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkFlagPrune, "prune", false, "Remove settings without a definition")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var pruned []string
	if checkFlagPrune {
		var err error
		pruned, err = ctx.Settings.Prune(func(id string) bool {
			_, ok := ctx.Registry.Lookup(id)
			return ok
		})
		if err != nil {
			return err
		}
	}

	view := output.HealthView{
		Health:      ctx.DB.CheckIntegrity(),
		Install:     ctx.Install,
		Lang:        ctx.Labels.Lang(),
		Definitions: len(ctx.Registry.Definitions()),
		Pruned:      pruned,
	}

	if ctx.IsJSON() {
		if err := ctx.JSONFormatter().PrintHealth(view); err != nil {
			return err
		}
	} else {
		ctx.CLIFormatter().PrintHealth(view)
	}

	if !view.Health.Healthy {
		return errors.NewSystemErrorWithOp("check", "database has unreadable entries", errors.ErrDatabaseCorrupted)
	}
	return nil
}
