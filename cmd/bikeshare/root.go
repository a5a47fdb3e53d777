package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for bikeshare.
// Without a subcommand it starts the interactive explore session.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bike share trip statistics",
		Long: `bikeshare loads historical bike share trips for Chicago, New York City or
Washington, filters them by month and day of week, and prints descriptive
statistics: the most common travel times, the most popular stations, trip
durations and user demographics.

Running bikeshare without a subcommand starts the interactive session.
City files are read from ./csv by default (see --data-dir).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runExploreCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON lines")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .bikeshare in current or home directory)")
	cmd.PersistentFlags().String("data-dir", "",
		"Directory holding the city CSV files (default \"./csv\")")
	cmd.PersistentFlags().String("encoding", "",
		"Text encoding of the city CSV files (default \"cp949\")")

	// Add subcommands
	cmd.AddCommand(NewExploreCmd())
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
