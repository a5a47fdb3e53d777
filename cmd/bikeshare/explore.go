package main

import (
	"github.com/spf13/cobra"

	"github.com/nao1215/bikeshare/internal/prompt"
	"github.com/nao1215/bikeshare/internal/session"
)

// NewExploreCmd creates the explore command.
func NewExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Interactively explore the trip statistics of a city",
		Long: `Explore asks for a city, a month and a day of the week, then prints:
- The most common month, day of the week and start hour
- The most popular start station, end station and trip
- The total and mean trip duration
- Counts per user type, gender and birth year details when available

After the statistics you can page through the raw rows, five at a time, and
restart with a new selection.

Examples:
  # Start the interactive session
  bikeshare explore

  # Read UTF-8 files from another directory
  bikeshare explore --data-dir ./data --encoding utf-8`,
		Args: cobra.NoArgs,
		RunE: runExploreCmd,
	}
}

// runExploreCmd executes the interactive session.
func runExploreCmd(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	colored := useColor(out)

	p := prompt.New(cmd.InOrStdin(), out, e.catalog, prompt.WithColor(colored))
	s := session.New(p, e.loader, out,
		session.WithLogger(e.logger),
		session.WithPageSize(e.cfg.PageSize),
		session.WithColor(colored),
	)

	return s.Run(ctx)
}
