// Package cmd provides the CLI commands for spanset.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/spanset/internal/logging"
	"github.com/manav03panchal/spanset/internal/output"
	"github.com/manav03panchal/spanset/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagLang   string
	flagConfig string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "spanset",
	Short: "A settings store for time-span values",
	Long: `spanset keeps time-span settings such as timeouts and expirations.
Every setting is stored in milliseconds and shown as a whole number of
days, hours or minutes, whichever is the coarsest exact unit.

Examples:
  spanset list
  spanset get accounts.login-expiration
  spanset set omnichannel.inactivity-timeout 90m
  spanset set omnichannel.inactivity-timeout 2 --unit hours
  spanset unit retention.max-age hours
  spanset reset retention.max-age
  spanset history --since yesterday`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands (but allow __complete for dynamic completions)
		if cmd.Name() == "completion" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		opts := runtime.DefaultOptions()
		opts.ConfigPath = flagConfig
		opts.Lang = flagLang
		opts.Format = output.ParseFormat(flagFormat)
		opts.ColorMode = output.ParseColorMode(flagColor)
		opts.Debug = flagDebug
		opts.Out = cmd.OutOrStdout()
		opts.Err = cmd.ErrOrStderr()

		cmd.SetContext(logging.NewRequestContext(cmd.Context()))

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		logging.DebugContext(cmd.Context(), "command started",
			logging.KeyCommand, cmd.Name(),
			logging.KeyLocale, ctx.Labels.Lang(),
		)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			err := ctx.Close()
			ctx = nil
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: list settings
		return runList(cmd, args)
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return runtime.ExitOK
	}

	logging.DebugLog("command failed", logging.KeyError, err.Error())
	code := reportError(err)
	if ctx != nil {
		_ = ctx.Close()
		ctx = nil
	}
	return code
}

// reportError prints err in the requested output format.
func reportError(err error) int {
	if ctx != nil {
		return ctx.ReportError(err)
	}
	return runtime.ReportError(rootCmd.ErrOrStderr(), output.ParseFormat(flagFormat), flagDebug, err)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "",
		"Language for unit labels (e.g. de, pt-BR)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Path to config file")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("spanset %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Based on Zeit (https://github.com/mrusme/zeit)")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return isTerminal(os.Stdin.Fd())
}
