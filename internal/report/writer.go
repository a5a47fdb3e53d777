package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nao1215/bikeshare/internal/model"
)

// Separator closes every console section.
var Separator = strings.Repeat("-", 40)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// MultiWriter writes to multiple Writers in order.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// formatSeconds renders an elapsed duration as a decimal number of seconds.
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

// formatDuration renders a trip duration total with thousands separators.
func formatDuration(seconds float64) string {
	return humanize.Commaf(seconds)
}

// formatCount renders a trip count with thousands separators.
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

// formatCategory renders a category count, marking categories that did not
// occur in the data.
func formatCategory(counts []model.CategoryCount, name string) string {
	n, ok := model.LookupCount(counts, name)
	if !ok {
		return "0 (absent)"
	}
	return formatCount(n)
}
