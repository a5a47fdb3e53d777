package model

import "time"

// Names of the statistics passes, used as pipeline step names and to look up
// their timings.
const (
	StepTimeStats     = "time_stats"
	StepStationStats  = "station_stats"
	StepDurationStats = "duration_stats"
	StepUserStats     = "user_stats"
)

// Well-known category values looked up by name in user statistics.
const (
	UserTypeSubscriber = "Subscriber"
	UserTypeCustomer   = "Customer"
	GenderMale         = "Male"
	GenderFemale       = "Female"
)

// Report is the result of running the statistics pipeline over one dataset.
type Report struct {
	// City is the catalog name of the analysed city.
	City string `json:"city"`

	// Source is the path of the file the trips were read from.
	Source string `json:"source"`

	// Filter is the selection that was applied before aggregation.
	Filter Filter `json:"filter"`

	// Rows is the number of trips that went into the statistics.
	Rows int `json:"rows"`

	// GeneratedAt is when the report was created.
	GeneratedAt time.Time `json:"generated_at"`

	Time     *TimeStats     `json:"time,omitempty"`
	Station  *StationStats  `json:"station,omitempty"`
	Duration *DurationStats `json:"duration,omitempty"`
	User     *UserStats     `json:"user,omitempty"`

	// Timings records how long each executed step took, in execution order.
	Timings []StepTiming `json:"timings,omitempty"`

	// PerformedSteps lists the names of the steps that were executed.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error is the last step error, if any. Not serialized; see ErrorMessage.
	Error        error  `json:"-"`
	ErrorMessage string `json:"error,omitempty"`
}

// NewReport creates an empty report for the given dataset and filter.
func NewReport(ds *Dataset, f Filter) *Report {
	r := &Report{
		Filter:      f,
		GeneratedAt: time.Now(),
	}
	if ds != nil {
		r.City = ds.City
		r.Source = ds.Source
		r.Rows = ds.Len()
	}
	return r
}

// IsEmpty reports whether no trips went into the statistics.
func (r *Report) IsEmpty() bool {
	return r.Rows == 0
}

// Elapsed returns the recorded duration of the named step, or zero if it did not run.
func (r *Report) Elapsed(step string) time.Duration {
	for _, t := range r.Timings {
		if t.Step == step {
			return t.Elapsed
		}
	}
	return 0
}

// StepTiming is the wall-clock time one pipeline step took.
type StepTiming struct {
	Step    string        `json:"step"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// TimeStats holds the most frequent travel times.
type TimeStats struct {
	// CommonMonth is the most frequent start month.
	CommonMonth time.Month `json:"common_month"`

	// CommonDay is the English name of the most frequent start weekday.
	CommonDay string `json:"common_day"`

	// CommonHour is the most frequent start hour (0-23).
	CommonHour int `json:"common_hour"`
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	CommonStartStation string `json:"common_start_station"`
	CommonEndStation   string `json:"common_end_station"`

	// CommonTrip is the most frequent "<start> to <end>" combination.
	CommonTrip string `json:"common_trip"`
}

// DurationStats holds trip duration aggregates, in seconds.
type DurationStats struct {
	Total    float64 `json:"total"`
	Mean     float64 `json:"mean"`
	Shortest float64 `json:"shortest"`
	Longest  float64 `json:"longest"`
}

// CategoryCount is the number of trips for one categorical value.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// LookupCount returns the count for name and whether the category was present.
// Absent categories report a zero count.
func LookupCount(counts []CategoryCount, name string) (int, bool) {
	for _, c := range counts {
		if c.Name == name {
			return c.Count, true
		}
	}
	return 0, false
}

// UserStats holds rider demographics.
type UserStats struct {
	// UserTypes is ordered by descending count, then by name.
	UserTypes []CategoryCount `json:"user_types"`

	// GenderAvailable is false when the source has no Gender column.
	GenderAvailable bool            `json:"gender_available"`
	Genders         []CategoryCount `json:"genders,omitempty"`

	// BirthYearAvailable is false when the source has no Birth Year column
	// or the column holds no values.
	BirthYearAvailable bool `json:"birth_year_available"`
	EarliestBirthYear  int  `json:"earliest_birth_year,omitempty"`
	LatestBirthYear    int  `json:"latest_birth_year,omitempty"`
	CommonBirthYear    int  `json:"common_birth_year,omitempty"`
}

// UserTypeCount returns the number of trips for a user type.
func (u *UserStats) UserTypeCount(name string) (int, bool) {
	return LookupCount(u.UserTypes, name)
}

// GenderCount returns the number of trips for a gender.
func (u *UserStats) GenderCount(name string) (int, bool) {
	return LookupCount(u.Genders, name)
}

// OtherUserTypes returns the user type categories other than Subscriber and Customer.
func (u *UserStats) OtherUserTypes() []CategoryCount {
	var out []CategoryCount
	for _, c := range u.UserTypes {
		if c.Name != UserTypeSubscriber && c.Name != UserTypeCustomer {
			out = append(out, c)
		}
	}
	return out
}
