package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/bikeshare/internal/model"
	"github.com/nao1215/bikeshare/internal/pipeline"
	"github.com/nao1215/bikeshare/internal/report"
)

// NewCompareCmd creates the compare command.
// This command analyses several cities concurrently and prints them side by side.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [city...]",
		Short: "Compare the statistics of several cities",
		Long: `Compare loads every requested city concurrently, applies the same month and
day filter to each, and prints one table with a column per city.

Without arguments all configured cities are compared. A city that cannot be
loaded is shown with its error and makes the command exit with status 1.

Examples:
  # Compare all cities
  bikeshare compare

  # Compare two cities in June
  bikeshare compare chicago washington --month june

  # Output comparison in Markdown format
  bikeshare compare --markdown

  # Output every city report as a JSON array
  bikeshare compare --json`,
		Args: cobra.ArbitraryArgs,
		RunE: runCompareCmd,
	}

	cmd.Flags().String("month", model.All, "Month to filter by, or \"all\"")
	cmd.Flags().String("day", model.All, "Day of the week to filter by, or \"all\"")
	cmd.Flags().IntP("concurrency", "n", pipeline.DefaultConcurrency,
		"Number of cities analysed at once")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output every city report in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	e.cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	e.cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	month, err := cmd.Flags().GetString("month")
	if err != nil {
		return err
	}
	day, err := cmd.Flags().GetString("day")
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	cities := args
	if len(cities) == 0 {
		cities = e.catalog.Cities()
	}

	// Validate every selection before loading anything.
	var f model.Filter
	normalized := make([]string, len(cities))
	for i, city := range cities {
		f, err = e.catalog.Filter(city, month, day)
		if err != nil {
			return err
		}
		normalized[i] = f.City
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	reports, err := compareCities(ctx, e, normalized, f, concurrency)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if e.cfg.JSONReport {
		_, err = report.NewJSONWriter(out, report.WithPrettyPrint()).WriteAll(reports)
	} else {
		_, err = report.NewComparisonWriter(out, report.WithMarkdownTable(e.cfg.MarkdownReport)).Write(reports)
	}
	if err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}

	failed := 0
	for _, r := range reports {
		if r.ErrorMessage != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cities could not be analysed", failed, len(reports))
	}

	return nil
}

// compareCities computes one report per city concurrently.
func compareCities(ctx context.Context, e *env, cities []string, f model.Filter, concurrency int) ([]*model.Report, error) {
	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline { return pipeline.Default(pipeline.WithLogger(e.logger)) },
		e.loader.Load,
		pipeline.WithConcurrency(concurrency),
		pipeline.WithBatchLogger(e.logger),
	)

	return bp.ProcessBatch(ctx, cities, f)
}
