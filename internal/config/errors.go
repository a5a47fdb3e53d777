package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and NewCatalog() and
// can be checked with errors.Is().
var (
	// ErrEmptyDataDir is returned when no data directory is configured.
	ErrEmptyDataDir = errors.New("invalid data directory: must not be empty")

	// ErrEmptyEncoding is returned when no source file encoding is configured.
	ErrEmptyEncoding = errors.New("invalid encoding: must not be empty")

	// ErrInvalidPageSize is returned when the raw data page size is not positive.
	ErrInvalidPageSize = errors.New("invalid page size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoCities is returned when the city catalog would be empty.
	ErrNoCities = errors.New("no cities configured")

	// ErrInvalidCity is returned when a catalog entry has an empty name or file.
	ErrInvalidCity = errors.New("invalid city entry: name and file must not be empty")
)
