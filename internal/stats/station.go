package stats

import (
	"context"

	"github.com/nao1215/bikeshare/internal/model"
)

// ComputeStation returns the most popular start station, end station and trip.
// Blank stations are ignored, and a trip counts as a pair only when both
// stations are known.
func ComputeStation(trips []model.Trip) *model.StationStats {
	ss := &model.StationStats{}
	ss.CommonStartStation, _ = Mode(nonEmpty(collect(trips, func(t model.Trip) string { return t.StartStation })))
	ss.CommonEndStation, _ = Mode(nonEmpty(collect(trips, func(t model.Trip) string { return t.EndStation })))
	ss.CommonTrip, _ = Mode(nonEmpty(collect(trips, func(t model.Trip) string {
		if t.StartStation == "" || t.EndStation == "" {
			return ""
		}
		return t.StationPair()
	})))
	return ss
}

// StationStep computes the most popular stations and trip.
type StationStep struct{}

// NewStationStep creates a StationStep.
func NewStationStep() *StationStep {
	return &StationStep{}
}

// Name returns the step name.
func (s *StationStep) Name() string {
	return model.StepStationStats
}

// Do stores the station statistics of ds in report.
func (s *StationStep) Do(_ context.Context, ds *model.Dataset, report *model.Report) error {
	report.Station = ComputeStation(ds.Trips)
	return nil
}
