package stats

import (
	"context"
	"time"

	"github.com/nao1215/bikeshare/internal/model"
)

// ComputeTime returns the most common start month, weekday and hour.
func ComputeTime(trips []model.Trip) *model.TimeStats {
	ts := &model.TimeStats{}
	if month, ok := Mode(collect(trips, func(t model.Trip) time.Month { return t.StartTime.Month() })); ok {
		ts.CommonMonth = month
	}
	if day, ok := Mode(collect(trips, func(t model.Trip) string { return t.StartTime.Weekday().String() })); ok {
		ts.CommonDay = day
	}
	if hour, ok := Mode(collect(trips, func(t model.Trip) int { return t.StartTime.Hour() })); ok {
		ts.CommonHour = hour
	}
	return ts
}

// TimeStep computes the most frequent travel times.
type TimeStep struct{}

// NewTimeStep creates a TimeStep.
func NewTimeStep() *TimeStep {
	return &TimeStep{}
}

// Name returns the step name.
func (s *TimeStep) Name() string {
	return model.StepTimeStats
}

// Do stores the time statistics of ds in report.
func (s *TimeStep) Do(_ context.Context, ds *model.Dataset, report *model.Report) error {
	report.Time = ComputeTime(ds.Trips)
	return nil
}
