package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/bikeshare/internal/config"
	"github.com/nao1215/bikeshare/internal/model"
	"github.com/nao1215/bikeshare/internal/pipeline"
	"github.com/nao1215/bikeshare/internal/report"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the statistics of a city without prompting",
		Long: `Summary computes the same statistics as the interactive session for the
city, month and day given as flags, and prints them once.

Examples:
  # All Chicago trips
  bikeshare summary --city chicago

  # Washington trips on Fridays in June
  bikeshare summary --city washington --month june --day friday

  # Output JSON report
  bikeshare summary --city "new york city" --json

  # Print the text report and also save a Markdown report
  bikeshare summary --city chicago --markdown -o reports/chicago.md`,
		Args: cobra.NoArgs,
		RunE: runSummaryCmd,
	}

	cmd.Flags().String("city", "", "City to analyse (required)")
	cmd.Flags().String("month", model.All, "Month to filter by, or \"all\"")
	cmd.Flags().String("day", model.All, "Day of the week to filter by, or \"all\"")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Also write the report to the specified file path (creates directories if needed)")

	_ = cmd.MarkFlagRequired("city") //nolint:errcheck // flag is defined above

	return cmd
}

// runSummaryCmd executes the summary command.
func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := readReportFlags(cmd, e.cfg); err != nil {
		return err
	}
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	city, _ := cmd.Flags().GetString("city")   //nolint:errcheck // flag is defined in NewSummaryCmd
	month, _ := cmd.Flags().GetString("month") //nolint:errcheck // flag is defined in NewSummaryCmd
	day, _ := cmd.Flags().GetString("day")     //nolint:errcheck // flag is defined in NewSummaryCmd

	f, err := e.catalog.Filter(city, month, day)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()

	ds, err := e.loader.Load(ctx, f.City)
	if err != nil {
		return err
	}

	filtered := ds.Filter(f)
	rep := model.NewReport(filtered, f)
	if err := pipeline.Default(pipeline.WithLogger(e.logger)).Execute(ctx, filtered, rep); err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	return outputReport(cmd.OutOrStdout(), e.cfg, rep)
}

// readReportFlags copies the output format flags into cfg.
func readReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	return nil
}

// outputReport writes the report in the requested format.
// Without an output file the selected format goes to stdout. With one, stdout
// gets the text report and the file gets the selected format.
func outputReport(stdout io.Writer, cfg *config.Config, rep *model.Report) error {
	console := report.NewSimpleWriter(stdout, report.WithSummary(true), report.WithColor(useColor(stdout)))

	if cfg.ReportFile == "" {
		var w report.Writer = console
		if cfg.JSONReport || cfg.MarkdownReport {
			w = formatWriter(stdout, cfg)
		}
		_, err := w.Write(rep)
		return err
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := report.NewMultiWriter(console, formatWriter(f, cfg)).Write(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(stdout, "\nReport written to: %s\n", cfg.ReportFile)
	return nil
}

// formatWriter returns the writer for the selected file format.
// Plain text is used when neither JSON nor Markdown was requested.
func formatWriter(w io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(w, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewSimpleWriter(w, report.WithSummary(true))
	}
}
