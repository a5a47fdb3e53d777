// Package report renders statistics reports and raw trip rows.
//
// This package contains writers for different output formats:
//   - SimpleWriter: console text, one section per statistics pass
//   - MarkdownWriter: Markdown document with tables and a user type chart
//   - JSONWriter: structured JSON output for tool integration
//   - ComparisonWriter: one table comparing several cities
//   - RowTable: raw trip rows for the pager
//
// Report data structures live in the model package; writers only format them.
package report
