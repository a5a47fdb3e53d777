package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/nao1215/bikeshare/internal/model"
)

// NoTripsMessage replaces the statistics of a section when the filter matched nothing.
const NoTripsMessage = "No trips match the selected filters."

// SimpleWriter outputs human-readable console text, one section per
// statistics pass, each followed by its elapsed time and a separator.
type SimpleWriter struct {
	baseWriter

	// heading styles the section titles.
	heading *color.Color

	// showSummary prints a line naming the city, filter and trip count first.
	showSummary bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables coloured section headings.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if enabled {
			w.heading.EnableColor()
		} else {
			w.heading.DisableColor()
		}
	}
}

// WithSummary prints the analysed city, filter and trip count before the sections.
func WithSummary(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showSummary = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		heading:    color.New(color.FgCyan, color.Bold),
	}
	w.heading.DisableColor()

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	if w.showSummary {
		fmt.Fprintf(&sb, "\nStatistics for %s (%s trips).\n", report.Filter.String(), formatCount(report.Rows))
	}
	if report.ErrorMessage != "" {
		fmt.Fprintf(&sb, "\nStatistics could not be computed: %s\n", report.ErrorMessage)
	}

	w.writeTime(&sb, report)
	w.writeStation(&sb, report)
	w.writeDuration(&sb, report)
	w.writeUser(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// section writes a titled block when the step ran.
// body is skipped for empty reports.
func (w *SimpleWriter) section(sb *strings.Builder, report *model.Report, step, title string, body func()) {
	if !slices.Contains(report.PerformedSteps, step) {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(w.heading.Sprint(title))
	sb.WriteString("\n\n")

	if report.IsEmpty() {
		sb.WriteString(NoTripsMessage + "\n")
	} else {
		body()
	}

	fmt.Fprintf(sb, "\nThis operation took %s seconds.\n", formatSeconds(report.Elapsed(step)))
	sb.WriteString(Separator + "\n")
}

func (w *SimpleWriter) writeTime(sb *strings.Builder, report *model.Report) {
	w.section(sb, report, model.StepTimeStats, "Calculating the most frequent travel times...", func() {
		fmt.Fprintf(sb, "The most common month is: %s.\n", report.Time.CommonMonth)
		fmt.Fprintf(sb, "The most common day of the week is: %s.\n", report.Time.CommonDay)
		fmt.Fprintf(sb, "The most common start hour is: %d.\n", report.Time.CommonHour)
	})
}

func (w *SimpleWriter) writeStation(sb *strings.Builder, report *model.Report) {
	w.section(sb, report, model.StepStationStats, "Calculating the most popular stations and trips...", func() {
		fmt.Fprintf(sb, "The most commonly used start station is: %s\n", report.Station.CommonStartStation)
		fmt.Fprintf(sb, "The most commonly used end station is: %s\n", report.Station.CommonEndStation)
		fmt.Fprintf(sb, "The most frequent combination of start and end stations is: %s\n", report.Station.CommonTrip)
	})
}

func (w *SimpleWriter) writeDuration(sb *strings.Builder, report *model.Report) {
	w.section(sb, report, model.StepDurationStats, "Calculating trip duration...", func() {
		d := report.Duration
		fmt.Fprintf(sb, "Total travel time is: %s seconds\n", formatDuration(d.Total))
		fmt.Fprintf(sb, "Mean travel time is: %.2f seconds\n", d.Mean)
		fmt.Fprintf(sb, "Shortest trip is: %s seconds\n", formatDuration(d.Shortest))
		fmt.Fprintf(sb, "Longest trip is: %s seconds\n", formatDuration(d.Longest))
	})
}

func (w *SimpleWriter) writeUser(sb *strings.Builder, report *model.Report) {
	w.section(sb, report, model.StepUserStats, "Calculating user statistics...", func() {
		u := report.User
		fmt.Fprintf(sb, "Subscriber: %s, Customer: %s\n",
			formatCategory(u.UserTypes, model.UserTypeSubscriber),
			formatCategory(u.UserTypes, model.UserTypeCustomer),
		)
		for _, c := range u.OtherUserTypes() {
			fmt.Fprintf(sb, "%s: %s\n", c.Name, formatCount(c.Count))
		}

		if u.GenderAvailable {
			fmt.Fprintf(sb, "Male: %s, Female: %s\n",
				formatCategory(u.Genders, model.GenderMale),
				formatCategory(u.Genders, model.GenderFemale),
			)
		} else {
			sb.WriteString("\nGender information is not available in this dataset.\n")
		}

		if u.BirthYearAvailable {
			fmt.Fprintf(sb, "\nEarliest birth year is: %d\n", u.EarliestBirthYear)
			fmt.Fprintf(sb, "Most recent birth year is: %d\n", u.LatestBirthYear)
			fmt.Fprintf(sb, "Most common birth year is: %d\n", u.CommonBirthYear)
		} else {
			sb.WriteString("\nBirth year information is not available in this dataset.\n")
		}
	})
}
