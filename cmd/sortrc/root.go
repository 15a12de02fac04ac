package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/commands"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
)

// NewRootCmd builds the sortrc command tree
func NewRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:          "sortrc",
		Short:        "Organize files into category folders by extension",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(ro.Debug)
		},
	}

	addRootFlags(cmd, ro)
	cmd.AddCommand(commands.NewOrganizeCmd(ro))
	cmd.AddCommand(commands.NewRulesCmd(ro))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, ro *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&ro.ConfigFile, "config", "c", "", "config file path (.sortrc, .yaml, .json or .hcl)")
	cmd.PersistentFlags().BoolVarP(&ro.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
