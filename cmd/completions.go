package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/timespan"
)

// completeSettings returns setting IDs starting with toComplete.
func completeSettings(toComplete string) []string {
	if ctx == nil || ctx.Settings == nil {
		return nil
	}

	list, err := ctx.Settings.List()
	if err != nil {
		return nil
	}

	var completions []string
	for _, s := range list {
		if strings.HasPrefix(s.ID, toComplete) {
			completions = append(completions, s.ID+"\t"+s.DisplayLabel())
		}
	}
	return completions
}

// completeSettingArgs handles completion for commands whose first argument is a setting ID.
func completeSettingArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Only complete first argument
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeSettings(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeUnitArgs completes "ID UNIT".
func completeUnitArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeSettings(toComplete), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return completeUnits(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeUnits completes unit identifiers with their labels.
func completeUnits(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, u := range timespan.Units() {
		if !strings.HasPrefix(string(u), toComplete) {
			continue
		}
		if ctx != nil && ctx.Labels != nil {
			completions = append(completions, string(u)+"\t"+ctx.Labels.Label(u))
		} else {
			completions = append(completions, string(u))
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
