package dataset

import "errors"

// Loading errors. They are wrapped with file, line and column context, so
// callers should test for them with errors.Is().
var (
	// ErrUnknownCity is returned when the city is not part of the catalog.
	ErrUnknownCity = errors.New("unknown city")

	// ErrUnsupportedEncoding is returned when the configured text encoding
	// name cannot be resolved.
	ErrUnsupportedEncoding = errors.New("unsupported text encoding")

	// ErrEncoding is returned when the source bytes are not valid in the
	// configured encoding.
	ErrEncoding = errors.New("invalid text for encoding")

	// ErrEmptyFile is returned when the source has no header row.
	ErrEmptyFile = errors.New("source file is empty")

	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformedRecord is returned when a cell cannot be parsed.
	ErrMalformedRecord = errors.New("malformed record")
)
