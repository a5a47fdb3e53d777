package model

import "time"

// Column names used by the city source files.
const (
	ColumnStartTime    = "Start Time"
	ColumnEndTime      = "End Time"
	ColumnTripDuration = "Trip Duration"
	ColumnStartStation = "Start Station"
	ColumnEndStation   = "End Station"
	ColumnUserType     = "User Type"
	ColumnGender       = "Gender"
	ColumnBirthYear    = "Birth Year"
)

// RequiredColumns lists the columns every city source file must contain.
var RequiredColumns = []string{
	ColumnStartTime,
	ColumnEndStation,
	ColumnStartStation,
	ColumnTripDuration,
	ColumnUserType,
}

// StationPairSeparator joins the start and end station of a trip.
const StationPairSeparator = " to "

// Trip is a single bike rental event.
type Trip struct {
	// Index is the zero-based position of the record in the source file.
	Index int `json:"index"`

	// StartTime is when the rental began.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the rental ended. Zero if the source has no End Time column.
	EndTime time.Time `json:"end_time,omitzero"`

	// Duration is the trip duration in seconds, NaN when the cell is missing.
	Duration float64 `json:"duration"`

	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`

	// UserType is the rider category, usually Subscriber or Customer.
	UserType string `json:"user_type"`

	// Gender is empty when the source has no Gender column or the cell is blank.
	Gender string `json:"gender,omitempty"`

	// BirthYear is only meaningful when HasBirthYear is true.
	BirthYear    int  `json:"birth_year,omitempty"`
	HasBirthYear bool `json:"-"`

	// Fields holds the raw cell values in source column order.
	Fields []string `json:"-"`
}

// StationPair returns the "<start> to <end>" combination of the trip.
func (t Trip) StationPair() string {
	return t.StartStation + StationPairSeparator + t.EndStation
}
