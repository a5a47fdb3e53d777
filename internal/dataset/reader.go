package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nao1215/bikeshare/internal/model"
)

// timeLayouts are the timestamp formats accepted for Start Time and End Time.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
}

// missingValues are the cell values read as a missing value, matching the
// default NA tokens of pandas read_csv.
var missingValues = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// cancelCheckInterval is how many rows are parsed between context checks.
const cancelCheckInterval = 10000

// columnIndex holds the positions of the known columns in a header row.
// Optional columns that are absent are -1.
type columnIndex struct {
	startTime    int
	endTime      int
	tripDuration int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// newColumnIndex locates the known columns in header.
func newColumnIndex(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	for _, required := range model.RequiredColumns {
		if _, ok := pos[required]; !ok {
			return columnIndex{}, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	lookup := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	return columnIndex{
		startTime:    lookup(model.ColumnStartTime),
		endTime:      lookup(model.ColumnEndTime),
		tripDuration: lookup(model.ColumnTripDuration),
		startStation: lookup(model.ColumnStartStation),
		endStation:   lookup(model.ColumnEndStation),
		userType:     lookup(model.ColumnUserType),
		gender:       lookup(model.ColumnGender),
		birthYear:    lookup(model.ColumnBirthYear),
	}, nil
}

// ReadTrips parses UTF-8 CSV text with a header row into trips.
// It returns the trimmed header and the trips in source order.
func ReadTrips(ctx context.Context, r io.Reader) ([]string, []model.Trip, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrEmptyFile
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if strings.ContainsRune(header[i], utf8.RuneError) {
			return nil, nil, fmt.Errorf("%w: header column %d", ErrEncoding, i+1)
		}
	}

	idx, err := newColumnIndex(header)
	if err != nil {
		return nil, nil, err
	}

	var trips []model.Trip
	for row := 0; ; row++ {
		if row%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}

		// The header is line 1.
		line := row + 2
		trip, err := parseTrip(record, header, idx, row, line)
		if err != nil {
			return nil, nil, err
		}
		trips = append(trips, trip)
	}

	return header, trips, nil
}

// parseTrip converts one CSV record into a Trip.
func parseTrip(record, header []string, idx columnIndex, row, line int) (model.Trip, error) {
	malformed := func(col int, format string, args ...any) error {
		return fmt.Errorf("%w: line %d, column %q: %s",
			ErrMalformedRecord, line, header[col], fmt.Sprintf(format, args...))
	}

	for i, field := range record {
		if strings.ContainsRune(field, utf8.RuneError) {
			return model.Trip{}, fmt.Errorf("%w: line %d, column %q", ErrEncoding, line, header[i])
		}
	}

	trip := model.Trip{
		Index:  row,
		Fields: record,
	}

	var err error
	trip.StartTime, err = parseTime(cell(record, idx.startTime))
	if err != nil {
		return model.Trip{}, malformed(idx.startTime, "%v", err)
	}

	if idx.endTime >= 0 {
		if v := cell(record, idx.endTime); v != "" {
			trip.EndTime, err = parseTime(v)
			if err != nil {
				return model.Trip{}, malformed(idx.endTime, "%v", err)
			}
		}
	}

	trip.Duration = math.NaN()
	if v := cell(record, idx.tripDuration); v != "" {
		trip.Duration, err = parseNumber(v)
		if err != nil {
			return model.Trip{}, malformed(idx.tripDuration, "%v", err)
		}
	}

	trip.StartStation = cell(record, idx.startStation)
	trip.EndStation = cell(record, idx.endStation)
	trip.UserType = cell(record, idx.userType)

	if idx.gender >= 0 {
		trip.Gender = cell(record, idx.gender)
	}

	if idx.birthYear >= 0 {
		if v := cell(record, idx.birthYear); v != "" {
			year, err := parseNumber(v)
			if err != nil {
				return model.Trip{}, malformed(idx.birthYear, "%v", err)
			}
			trip.BirthYear = int(year)
			trip.HasBirthYear = true
		}
	}

	return trip, nil
}

// cell returns the trimmed value at i. It returns "" when the record is too
// short or the value is a missing value token.
func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	v := strings.TrimSpace(record[i])
	if _, missing := missingValues[v]; missing {
		return ""
	}
	return v
}

// parseNumber parses a finite decimal number.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// parseTime parses s with the first matching layout in timeLayouts.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
