package stats

import (
	"context"
	"math"

	"github.com/nao1215/bikeshare/internal/model"
)

// ComputeDuration returns the total, mean, shortest and longest trip duration.
// Missing (NaN) durations are skipped. All values are zero when no trip has
// a duration.
func ComputeDuration(trips []model.Trip) *model.DurationStats {
	ds := &model.DurationStats{}

	n := 0
	for _, t := range trips {
		if math.IsNaN(t.Duration) {
			continue
		}
		if n == 0 {
			ds.Shortest, ds.Longest = t.Duration, t.Duration
		}
		ds.Total += t.Duration
		ds.Shortest = math.Min(ds.Shortest, t.Duration)
		ds.Longest = math.Max(ds.Longest, t.Duration)
		n++
	}
	if n > 0 {
		ds.Mean = ds.Total / float64(n)
	}

	return ds
}

// DurationStep computes trip duration aggregates.
type DurationStep struct{}

// NewDurationStep creates a DurationStep.
func NewDurationStep() *DurationStep {
	return &DurationStep{}
}

// Name returns the step name.
func (s *DurationStep) Name() string {
	return model.StepDurationStats
}

// Do stores the duration statistics of ds in report.
func (s *DurationStep) Do(_ context.Context, ds *model.Dataset, report *model.Report) error {
	report.Duration = ComputeDuration(ds.Trips)
	return nil
}
