package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/bikeshare/internal/model"
)

// RowTable renders raw trip rows as a text table with the source row index
// followed by every source column.
type RowTable struct {
	baseWriter
}

// NewRowTable creates a RowTable that outputs to the given writer.
func NewRowTable(output io.Writer) *RowTable {
	return &RowTable{baseWriter: newBaseWriter(output)}
}

// Write renders trips under the given column header.
// Nothing is written when trips is empty.
func (t *RowTable) Write(columns []string, trips []model.Trip) (int, error) {
	if len(trips) == 0 {
		return 0, nil
	}

	header := make([]string, 0, len(columns)+1)
	header = append(header, "")
	header = append(header, columns...)

	rows := make([][]string, len(trips))
	for i, trip := range trips {
		row := make([]string, len(header))
		row[0] = strconv.Itoa(trip.Index)
		copy(row[1:], trip.Fields)
		rows[i] = row
	}

	return renderTable(t.output, header, rows)
}

// ComparisonWriter outputs a side-by-side comparison of several city reports.
type ComparisonWriter struct {
	baseWriter

	// markdown switches the output from a text table to a Markdown table.
	markdown bool

	title cases.Caser
}

// ComparisonOption configures a ComparisonWriter.
type ComparisonOption func(*ComparisonWriter)

// WithMarkdownTable renders the comparison as a Markdown table.
func WithMarkdownTable(enabled bool) ComparisonOption {
	return func(w *ComparisonWriter) {
		w.markdown = enabled
	}
}

// NewComparisonWriter creates a ComparisonWriter that outputs to the given writer.
func NewComparisonWriter(output io.Writer, opts ...ComparisonOption) *ComparisonWriter {
	w := &ComparisonWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs one column per report and one row per statistic.
func (w *ComparisonWriter) Write(reports []*model.Report) (int, error) {
	header := make([]string, 0, len(reports)+1)
	header = append(header, "Statistic")
	for _, r := range reports {
		header = append(header, w.title.String(r.City))
	}

	metrics := comparisonMetrics()
	rows := make([][]string, len(metrics))
	for i, m := range metrics {
		row := make([]string, 0, len(reports)+1)
		row = append(row, m.name)
		for _, r := range reports {
			row = append(row, comparisonCell(r, m.value))
		}
		rows[i] = row
	}

	if w.markdown {
		md := markdown.NewMarkdown(w.output)
		md.H1("Bike Share City Comparison")
		md.PlainText("")
		if len(reports) > 0 {
			md.PlainTextf("Filter: month %s, day %s", reports[0].Filter.Month, reports[0].Filter.Day)
			md.PlainText("")
		}
		md.Table(markdown.TableSet{Header: header, Rows: rows})
		return len(md.String()), md.Build()
	}

	return renderTable(w.output, header, rows)
}

type comparisonMetric struct {
	name  string
	value func(r *model.Report) string
}

// comparisonCell evaluates a metric for one report, showing failures and
// empty selections in place of the value.
func comparisonCell(r *model.Report, value func(*model.Report) string) string {
	switch {
	case r.ErrorMessage != "":
		return "error: " + r.ErrorMessage
	case r.IsEmpty():
		return "-"
	default:
		return value(r)
	}
}

func comparisonMetrics() []comparisonMetric {
	return []comparisonMetric{
		{"Trips", func(r *model.Report) string { return formatCount(r.Rows) }},
		{"Most common month", func(r *model.Report) string { return r.Time.CommonMonth.String() }},
		{"Most common day", func(r *model.Report) string { return r.Time.CommonDay }},
		{"Most common hour", func(r *model.Report) string { return strconv.Itoa(r.Time.CommonHour) }},
		{"Start station", func(r *model.Report) string { return r.Station.CommonStartStation }},
		{"End station", func(r *model.Report) string { return r.Station.CommonEndStation }},
		{"Trip", func(r *model.Report) string { return r.Station.CommonTrip }},
		{"Total travel time (s)", func(r *model.Report) string { return formatDuration(r.Duration.Total) }},
		{"Mean travel time (s)", func(r *model.Report) string { return fmt.Sprintf("%.2f", r.Duration.Mean) }},
		{model.UserTypeSubscriber, func(r *model.Report) string {
			return formatCategory(r.User.UserTypes, model.UserTypeSubscriber)
		}},
		{model.UserTypeCustomer, func(r *model.Report) string {
			return formatCategory(r.User.UserTypes, model.UserTypeCustomer)
		}},
		{model.GenderMale, func(r *model.Report) string { return genderCell(r.User, model.GenderMale) }},
		{model.GenderFemale, func(r *model.Report) string { return genderCell(r.User, model.GenderFemale) }},
		{"Most common birth year", func(r *model.Report) string {
			if !r.User.BirthYearAvailable {
				return "n/a"
			}
			return strconv.Itoa(r.User.CommonBirthYear)
		}},
	}
}

func genderCell(u *model.UserStats, name string) string {
	if !u.GenderAvailable {
		return "n/a"
	}
	return formatCategory(u.Genders, name)
}

// renderTable writes a tablewriter table to output.
func renderTable(output io.Writer, header []string, rows [][]string) (int, error) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	table.Header(cells...)
	if err := table.Bulk(rows); err != nil {
		return 0, fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return 0, fmt.Errorf("failed to render table: %w", err)
	}

	return output.Write(buf.Bytes())
}
