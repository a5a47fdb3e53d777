package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/bikeshare/internal/model"
)

// MarkdownWriter outputs reports as a Markdown document with one table per
// statistics section and a pie chart of user types.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)

	if report.IsEmpty() {
		md.Note(NoTripsMessage)
		md.PlainText("")
	} else {
		w.writeTime(md, report)
		w.writeStation(md, report)
		w.writeDuration(md, report)
		w.writeUser(md, report)
	}

	w.writeTimings(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and the analysed selection.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Bike Share Statistics")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"City", report.City},
			{"Month", report.Filter.Month},
			{"Day", report.Filter.Day},
			{"Trips", formatCount(report.Rows)},
			{"Source", "`" + report.Source + "`"},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	if report.ErrorMessage != "" {
		md.Cautionf("Statistics could not be computed: %s", report.ErrorMessage)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeTime(md *markdown.Markdown, report *model.Report) {
	if report.Time == nil {
		return
	}
	md.H2("Most Frequent Travel Times")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Most common month", report.Time.CommonMonth.String()},
			{"Most common day of the week", report.Time.CommonDay},
			{"Most common start hour", strconv.Itoa(report.Time.CommonHour)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeStation(md *markdown.Markdown, report *model.Report) {
	if report.Station == nil {
		return
	}
	md.H2("Most Popular Stations and Trip")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Start station", report.Station.CommonStartStation},
			{"End station", report.Station.CommonEndStation},
			{"Trip", report.Station.CommonTrip},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeDuration(md *markdown.Markdown, report *model.Report) {
	if report.Duration == nil {
		return
	}
	d := report.Duration
	md.H2("Trip Duration")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Statistic", "Seconds"},
		Rows: [][]string{
			{"Total travel time", formatDuration(d.Total)},
			{"Mean travel time", strconv.FormatFloat(d.Mean, 'f', 2, 64)},
			{"Shortest trip", formatDuration(d.Shortest)},
			{"Longest trip", formatDuration(d.Longest)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeUser(md *markdown.Markdown, report *model.Report) {
	u := report.User
	if u == nil {
		return
	}

	md.H2("User Statistics")
	md.PlainText("")

	rows := make([][]string, 0, len(u.UserTypes))
	for _, c := range u.UserTypes {
		rows = append(rows, []string{c.Name, formatCount(c.Count)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"User type", "Trips"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeUserTypeChart(md, u)

	for _, name := range []string{model.UserTypeSubscriber, model.UserTypeCustomer} {
		if _, ok := u.UserTypeCount(name); !ok {
			md.Importantf("No %s trips in this selection.", name)
			md.PlainText("")
		}
	}

	if u.GenderAvailable {
		md.Table(markdown.TableSet{
			Header: []string{"Gender", "Trips"},
			Rows: [][]string{
				{model.GenderMale, formatCategory(u.Genders, model.GenderMale)},
				{model.GenderFemale, formatCategory(u.Genders, model.GenderFemale)},
			},
		})
		md.PlainText("")
	} else {
		md.Note("Gender information is not available in this dataset.")
		md.PlainText("")
	}

	if u.BirthYearAvailable {
		md.Table(markdown.TableSet{
			Header: []string{"Birth year", "Value"},
			Rows: [][]string{
				{"Earliest", strconv.Itoa(u.EarliestBirthYear)},
				{"Most recent", strconv.Itoa(u.LatestBirthYear)},
				{"Most common", strconv.Itoa(u.CommonBirthYear)},
			},
		})
		md.PlainText("")
	} else {
		md.Note("Birth year information is not available in this dataset.")
		md.PlainText("")
	}
}

// writeUserTypeChart writes a mermaid pie chart of trips per user type.
func (w *MarkdownWriter) writeUserTypeChart(md *markdown.Markdown, u *model.UserStats) {
	if len(u.UserTypes) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Trips by User Type"),
		piechart.WithShowData(true),
	)
	for _, c := range u.UserTypes {
		chart.LabelAndIntValue(c.Name, uint64(c.Count)) //nolint:gosec // counts are never negative
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeTimings writes the elapsed time of every executed step.
func (w *MarkdownWriter) writeTimings(md *markdown.Markdown, report *model.Report) {
	if len(report.Timings) == 0 {
		return
	}

	rows := make([][]string, 0, len(report.Timings))
	for _, t := range report.Timings {
		rows = append(rows, []string{t.Step, formatSeconds(t.Elapsed)})
	}

	md.H2("Timings")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Step", "Seconds"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by bikeshare*")
}
