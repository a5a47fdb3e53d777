// Package stats computes descriptive statistics over bike-share trips.
//
// Each statistics pass is available both as a pure function over a slice
// of trips and as a pipeline step that stores its result in a model.Report:
//
//	TimeStep     - most common month, weekday and start hour
//	StationStep  - most common start station, end station and trip
//	DurationStep - total and mean trip duration
//	UserStep     - user type, gender and birth year breakdowns
//
// Ties in the most frequent value are broken by taking the smallest value
// in natural sort order (numeric for months and hours, lexicographic for
// names), so results are deterministic regardless of row order.
package stats
