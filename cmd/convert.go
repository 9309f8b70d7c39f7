package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/output"
	"github.com/manav03panchal/spanset/internal/parser"
	"github.com/manav03panchal/spanset/internal/timespan"
)

// convert command flags.
var convertFlagTo string

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert DURATION",
	Short: "Show how a duration would be displayed",
	Long: `Convert a duration to the unit and whole number an editor would show.
Nothing is stored.

Examples:
  spanset convert 90m           # 90 minutes
  spanset convert 36h           # 36 hours
  spanset convert 2d            # 2 days
  spanset convert 90m --to h    # 2 hours, rounded from 1.5`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFlagTo, "to", "", "Convert to this unit instead of the chosen one")
	_ = convertCmd.RegisterFlagCompletionFunc("to", completeUnits)

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	durationMs, err := parser.ParseDuration(args[0])
	if err != nil {
		return durationError(args[0], err)
	}

	unit, err := parseUnitArg("to", convertFlagTo)
	if err != nil {
		return err
	}
	if unit == "" {
		unit = timespan.ChooseUnit(durationMs)
	}

	exact, err := timespan.ToDisplayValue(unit, durationMs)
	if err != nil {
		return err
	}

	view := output.ConversionView{
		Input:      args[0],
		DurationMs: durationMs,
		Unit:       unit,
		UnitLabel:  ctx.Labels.Label(unit),
		Exact:      exact,
		Value:      timespan.Sanitize(exact),
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintConversion(view)
	}
	ctx.CLIFormatter().PrintConversion(view)
	return nil
}
